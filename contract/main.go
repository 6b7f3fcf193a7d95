////////////////////////////////////////////////////////////////////////////////
// Launchpad: capped fundraising escrow with claim credentials for vsc
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"strings"

	"launchpad/sdk"
)

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit writes the singleton authority registry. Only the contract
// owner recorded by the ledger may call it, and only once.
// Payload: "adminAuthority|whitelistAuthority"
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	env := getEnv()
	if env.Sender.Address != env.ContractOwner {
		failUnauthorized("only the contract owner may initialize")
	}

	raw := unwrapPayload(payload, "init payload requires admin|whitelist")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("init payload requires admin|whitelist")
	}

	reg := Registry{
		AdminAuthority:     parseAddressField(parts[0], "admin authority"),
		WhitelistAuthority: parseAddressField(parts[1], "whitelist authority"),
	}
	saveRegistry(&reg)

	emitInitEvent(reg.AdminAuthority.String(), reg.WhitelistAuthority.String())
	return strptr("initialized")
}
