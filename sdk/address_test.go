package sdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIsDeterministic(t *testing.T) {
	a := Derive(AddressDomainVault, "contract:launchpad", "campaign:7:raised")
	b := Derive(AddressDomainVault, "contract:launchpad", "campaign:7:raised")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a.String(), "vault:"))
	assert.Equal(t, AddressDomainVault, a.Domain())
}

func TestDeriveSeparatesSeeds(t *testing.T) {
	// the separator keeps ("ab","c") distinct from ("a","bc")
	a := Derive(AddressDomainMint, "ab", "c")
	b := Derive(AddressDomainMint, "a", "bc")
	assert.NotEqual(t, a, b)

	// different domains never collide either
	c := Derive(AddressDomainVault, "ab", "c")
	assert.NotEqual(t, a.String()[strings.Index(a.String(), ":"):], c.String()[strings.Index(c.String(), ":"):])
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:pool").Domain())
	assert.Equal(t, AddressDomainVault, Address("vault:abc").Domain())
	assert.Equal(t, AddressDomainMint, Address("mint:abc").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:dao").Domain())
}

func TestAddressIsValid(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("").IsValid())
	assert.False(t, Address("noseparator").IsValid())
	assert.False(t, Address("hive:").IsValid())
	assert.False(t, Address(":alice").IsValid())
}
