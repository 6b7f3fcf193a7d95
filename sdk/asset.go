package sdk

type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetHive.String()
func (a Asset) String() string {
	return string(a)
}

// IsValid rejects empty tickers; project-launched tokens carry arbitrary
// tickers so anything non-empty is accepted here and resolved by the ledger.
// Example payload: sdk.Asset("tok:xyz").IsValid()
func (a Asset) IsValid() bool {
	return a != ""
}
