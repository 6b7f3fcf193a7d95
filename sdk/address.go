package sdk

import (
	"strings"

	"github.com/mr-tron/base58"
	"lukechampine.com/blake3"
)

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainVault    AddressDomain = "vault"
	AddressDomainMint     AddressDomain = "mint"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to tell user/contract/vault/mint/system addresses apart.
// Example payload: sdk.Address("contract:launchpad").Domain()
func (a Address) Domain() AddressDomain {
	switch {
	case strings.HasPrefix(a.String(), "system:"):
		return AddressDomainSystem
	case strings.HasPrefix(a.String(), "contract:"):
		return AddressDomainContract
	case strings.HasPrefix(a.String(), "vault:"):
		return AddressDomainVault
	case strings.HasPrefix(a.String(), "mint:"):
		return AddressDomainMint
	default:
		return AddressDomainUser
	}
}

// IsValid is a light sanity check used before persisting caller-supplied addresses.
// Example payload: sdk.Address("hive:alice").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	if s == "" {
		return false
	}
	i := strings.IndexByte(s, ':')
	return i > 0 && i < len(s)-1
}

// Derive computes a deterministic program-controlled identity from a domain
// tag and an ordered list of seeds. Same derivation on every node, so records
// and custody balances can be located without an external registry. No key
// material exists for these addresses; authority is proven by the deriving
// contract naming its own seeds.
// Example payload: sdk.Derive(sdk.AddressDomainVault, "contract:launchpad", "campaign:7:raised")
func Derive(domain AddressDomain, seeds ...string) Address {
	h := blake3.New(32, nil)
	h.Write([]byte(domain))
	for _, s := range seeds {
		h.Write([]byte{0x1f})
		h.Write([]byte(s))
	}
	sum := h.Sum(nil)
	return Address(string(domain) + ":" + base58.Encode(sum[:20]))
}
