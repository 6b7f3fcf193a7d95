package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"launchpad/sdk"
	"launchpad/sdk/mockvm"
)

const ContractID = "contract:launchpad"
const ownerAddress = "hive:deployer"
const adminAddress = "hive:admin"
const whitelistAddress = "hive:whitelist"
const projectAddress = "hive:project"
const defaultTimestamp = "2026-01-10T00:00:00"

// Default campaign terms used across tests: raise 400..600 hbd for a
// 1000-unit token launch with half the supply earmarked for the pool.
const testUID = uint64(7)
const testLaunchedAsset = "tok:launch"
const testLaunchedCap = int64(1000)
const testLPDistribution = int64(500)
const testMinCap = int64(400)
const testMaxCap = int64(600)
const testWindowStart = int64(1767225600) // 2026-01-01T00:00:00Z
const testWindowEnd = int64(1769904000)   // 2026-02-01T00:00:00Z

var txCounter uint64

// setupContractTest builds a fresh mock ledger, installs it as the sdk host
// and funds the usual suspects.
func setupContractTest() *mockvm.VM {
	vm := mockvm.New(ContractID, ownerAddress)
	sdk.SetHost(vm)
	vm.Deposit("hive:someone", 200000, sdk.AssetHbd.String())
	vm.Deposit("hive:someoneelse", 200000, sdk.AssetHbd.String())
	vm.Deposit("hive:member2", 200000, sdk.AssetHbd.String())
	vm.Deposit("hive:outsider", 200000, sdk.AssetHbd.String())
	vm.Deposit(projectAddress, 200000, testLaunchedAsset)
	return vm
}

// callContract executes an entrypoint as one transaction and asserts the outcome.
func callContract(t *testing.T, vm *mockvm.VM, entry func(*string) *string, action string, payload string, intents []sdk.Intent, authUser string, expectedResult bool) mockvm.Result {
	return callContractCosigned(t, vm, entry, action, payload, intents, authUser, nil, expectedResult, defaultTimestamp)
}

// callContractAt lets tests override the block timestamp for window checks.
func callContractAt(t *testing.T, vm *mockvm.VM, entry func(*string) *string, action string, payload string, intents []sdk.Intent, authUser string, expectedResult bool, timestamp string) mockvm.Result {
	return callContractCosigned(t, vm, entry, action, payload, intents, authUser, nil, expectedResult, timestamp)
}

// callContractCosigned performs the real invocation with an optional extra
// co-signer in required_auths, logging result details on the way.
func callContractCosigned(t *testing.T, vm *mockvm.VM, entry func(*string) *string, action string, payload string, intents []sdk.Intent, authUser string, cosigners []string, expectedResult bool, timestamp string) mockvm.Result {
	if timestamp == "" {
		timestamp = defaultTimestamp
	}
	txCounter++
	result := vm.Call(mockvm.Tx{
		Sender:        authUser,
		RequiredAuths: append([]string{authUser}, cosigners...),
		Timestamp:     timestamp,
		TxId:          fmt.Sprintf("%s-tx-%d", action, txCounter),
		Intents:       intents,
	}, func() *string {
		return entry(&payload)
	})

	for _, line := range result.Logs {
		fmt.Printf("[%s] %s\n", action, line)
	}
	if !result.Ok {
		fmt.Printf("error: %s (%s)\n", result.ErrMsg, result.ErrSymbol)
	}
	if result.Ret != nil {
		fmt.Printf("return msg: %s\n", *result.Ret)
	}

	if expectedResult {
		assert.True(t, result.Ok, "contract action failed with "+result.ErrMsg)
	} else {
		assert.False(t, result.Ok, "contract action did not fail (as expected)")
	}
	return result
}

// transferAllow builds the intent deposits need.
func transferAllow(asset string, limit int64) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": asset, "limit": fmt.Sprintf("%d", limit)},
	}}
}

// initLaunchpad runs contract_init with the default authorities.
func initLaunchpad(t *testing.T, vm *mockvm.VM) {
	payload := adminAddress + "|" + whitelistAddress
	callContract(t, vm, ContractInit, "contract_init", payload, nil, ownerAddress, true)
}

// createDefaultCampaign creates campaign 7 with the shared test terms.
func createDefaultCampaign(t *testing.T, vm *mockvm.VM) {
	callContract(t, vm, CreateCampaign, "create_campaign", defaultCampaignPayload(), nil, adminAddress, true)
}

// defaultCampaignPayload renders the create_campaign payload for the test terms.
func defaultCampaignPayload() string {
	return fmt.Sprintf("%d|%s|%s|%d|%d|%s|%d|%d|%d|%d|%d|%d",
		testUID, projectAddress,
		testLaunchedAsset, testLaunchedCap, testLPDistribution,
		sdk.AssetHbd.String(), testMinCap, testMaxCap,
		testWindowStart, testWindowEnd,
		86400, 2592000,
	)
}

// userDeposit performs a whitelisted deposit and returns the credential.
func userDeposit(t *testing.T, vm *mockvm.VM, user string, amount int64) string {
	payload := fmt.Sprintf("%d|%d", testUID, amount)
	res := callContractCosigned(t, vm, UserDeposit, "user_deposit", payload,
		transferAllow(sdk.AssetHbd.String(), amount), user, []string{whitelistAddress}, true, defaultTimestamp)
	if res.Ret == nil {
		t.Fatal("user_deposit returned no credential")
	}
	return *res.Ret
}

// projectDeposit escrows the full launched supply and returns the credential.
func projectDeposit(t *testing.T, vm *mockvm.VM) string {
	payload := fmt.Sprintf("%d|%d", testUID, testLaunchedCap)
	res := callContract(t, vm, ProjectDeposit, "project_deposit", payload,
		transferAllow(testLaunchedAsset, testLaunchedCap), projectAddress, true)
	if res.Ret == nil {
		t.Fatal("project_deposit returned no credential")
	}
	return *res.Ret
}

// raisedVaultAddr derives the raised custody address the way the contract does.
func raisedVaultAddr() string {
	return sdk.Derive(sdk.AddressDomainVault, ContractID, raisedVaultSeed(testUID)).String()
}

// launchedVaultAddr derives the launched custody address.
func launchedVaultAddr() string {
	return sdk.Derive(sdk.AddressDomainVault, ContractID, launchedVaultSeed(testUID)).String()
}
