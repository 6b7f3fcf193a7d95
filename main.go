////////////////////////////////////////////////////////////////////////////////
// Launchpad: capped fundraising escrow with claim credentials for vsc
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"launchpad/sdk"
	"launchpad/sdk/mockvm"
)

// main runs a tiny local smoke scenario against the in-memory mock ledger.
// The real entrypoints live in contract/ and are exercised by its tests;
// this just proves the sdk plumbing end to end without a chain.
func main() {
	vm := mockvm.New("contract:launchpad", "hive:deployer")
	sdk.SetHost(vm)
	vm.Deposit("hive:alice", 1_000, sdk.AssetHbd.String())

	res := vm.Call(mockvm.Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents: []sdk.Intent{{
			Type: "transfer.allow",
			Args: map[string]string{"token": sdk.AssetHbd.String(), "limit": "300"},
		}},
	}, func() *string {
		vault := sdk.VaultOpen("demo:raised", sdk.AssetHbd)
		sdk.TokenDraw(300, sdk.AssetHbd)
		sdk.TokenTransfer(vault, 300, sdk.AssetHbd)
		sdk.Log("demo|escrowed:300|vault:" + vault.String())
		return nil
	})

	fmt.Printf("ok=%v logs=%v\n", res.Ok, res.Logs)
	fmt.Printf("alice hbd balance: %d\n", vm.BalanceOf("hive:alice", sdk.AssetHbd.String()))
}
