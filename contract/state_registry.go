package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"launchpad/sdk"
)

// loadRegistry returns the singleton authority record or nil before init.
func loadRegistry() *Registry {
	ptr := sdk.StateGetObject(registryKey)
	if ptr == nil {
		return nil
	}
	var reg Registry
	if err := tinyjson.Unmarshal([]byte(*ptr), &reg); err != nil {
		sdk.Abort("corrupt registry record")
	}
	return &reg
}

// saveRegistry persists the authority record back to kv storage.
func saveRegistry(reg *Registry) {
	blob, err := tinyjson.Marshal(reg)
	if err != nil {
		sdk.Abort("could not encode registry")
	}
	sdk.StateSetObject(registryKey, string(blob))
}

// isContractInitialized is true once contract_init has written the registry.
func isContractInitialized() bool {
	return sdk.StateGetObject(registryKey) != nil
}

// mustLoadRegistry aborts when the contract has not been initialized yet.
func mustLoadRegistry() *Registry {
	reg := loadRegistry()
	if reg == nil {
		sdk.Abort("contract not initialized")
	}
	return reg
}

// requireAdmin loads the registry and reverts unless the sender is the
// current admin authority.
func requireAdmin() *Registry {
	reg := mustLoadRegistry()
	if getSenderAddress() != reg.AdminAuthority {
		failUnauthorized("sender is not the admin authority")
	}
	return reg
}
