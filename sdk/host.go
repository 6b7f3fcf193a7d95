package sdk

// Host is the ledger-facing surface the contract runs against. The wasm build
// wires it to the chain's host imports; tests and local runs install the
// in-memory mock ledger from sdk/mockvm instead.
type Host interface {
	Log(msg string)
	Abort(msg string)
	Revert(msg string, symbol string)

	StateSet(key string, value string)
	StateGet(key string) *string
	StateDelete(key string)

	EnvJSON() string
	EnvKey(key string) *string

	Balance(address string, asset string) int64
	Draw(amount int64, asset string)
	Transfer(to string, amount int64, asset string)

	VaultOpen(seed string, asset string) string
	VaultAsset(seed string) string
	VaultTransfer(seed string, to string, amount int64, asset string)

	MintCreate(seed string) string
	MintIssue(mint string, to string, amount int64)
	MintRevoke(mint string)
	Burn(mint string, from string, amount int64)
	AccountFreeze(mint string, address string)
	AccountClose(mint string, address string)
	AccountBalance(mint string, address string) int64

	ContractCall(contractId string, method string, payload string, options string) *string
}

// active host, installed once at startup before any contract code runs.
var active Host

// SetHost installs the host implementation. The wasm build does this in an
// init func; tests install a mockvm.VM.
func SetHost(h Host) {
	active = h
}

func host() Host {
	if active == nil {
		panic("sdk: no host installed")
	}
	return active
}
