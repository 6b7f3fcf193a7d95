package mockvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/sdk"
)

func newTestVM() *VM {
	vm := New("contract:test", "hive:owner")
	sdk.SetHost(vm)
	return vm
}

func allowIntent(token string, limit string) sdk.Intent {
	return sdk.Intent{Type: "transfer.allow", Args: map[string]string{"token": token, "limit": limit}}
}

func TestCallCommitsOnSuccess(t *testing.T) {
	vm := newTestVM()
	vm.Deposit("hive:alice", 1000, "hbd")

	res := vm.Call(Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents:   []sdk.Intent{allowIntent("hbd", "400")},
	}, func() *string {
		sdk.StateSetObject("k", "v")
		sdk.TokenDraw(400, sdk.AssetHbd)
		sdk.Log("drawn")
		return nil
	})

	require.True(t, res.Ok)
	assert.Equal(t, []string{"drawn"}, res.Logs)
	assert.Equal(t, int64(600), vm.BalanceOf("hive:alice", "hbd"))
	assert.Equal(t, int64(400), vm.BalanceOf("contract:test", "hbd"))
	require.NotNil(t, vm.StateGet("k"))
	assert.Equal(t, "v", *vm.StateGet("k"))
}

func TestCallRollsBackOnRevert(t *testing.T) {
	vm := newTestVM()
	vm.Deposit("hive:alice", 1000, "hbd")
	vm.StateSet("k", "before")

	res := vm.Call(Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents:   []sdk.Intent{allowIntent("hbd", "400")},
	}, func() *string {
		sdk.StateSetObject("k", "after")
		sdk.TokenDraw(400, sdk.AssetHbd)
		sdk.Revert("nope", "some_error")
		return nil
	})

	require.False(t, res.Ok)
	assert.Equal(t, "some_error", res.ErrSymbol)
	assert.Equal(t, "nope", res.ErrMsg)
	// every effect unwound
	assert.Equal(t, int64(1000), vm.BalanceOf("hive:alice", "hbd"))
	assert.Equal(t, int64(0), vm.BalanceOf("contract:test", "hbd"))
	assert.Equal(t, "before", *vm.StateGet("k"))
	// logs survive for debugging even on failure
	assert.NotNil(t, res.Logs)
}

func TestDrawEnforcesAllowance(t *testing.T) {
	vm := newTestVM()
	vm.Deposit("hive:alice", 1000, "hbd")

	// no intent at all
	res := vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.TokenDraw(10, sdk.AssetHbd)
		return nil
	})
	assert.False(t, res.Ok)

	// limit is cumulative across draws in one call
	res = vm.Call(Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents:   []sdk.Intent{allowIntent("hbd", "100")},
	}, func() *string {
		sdk.TokenDraw(60, sdk.AssetHbd)
		sdk.TokenDraw(60, sdk.AssetHbd)
		return nil
	})
	assert.False(t, res.Ok)
	assert.Equal(t, int64(1000), vm.BalanceOf("hive:alice", "hbd"))
}

func TestCreditOverflowFailsTransaction(t *testing.T) {
	vm := newTestVM()
	vm.Deposit("hive:alice", 1000, "hbd")
	vm.Deposit("hive:rich", math.MaxInt64-5, "hbd")

	res := vm.Call(Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents:   []sdk.Intent{allowIntent("hbd", "100")},
	}, func() *string {
		sdk.TokenDraw(100, sdk.AssetHbd)
		sdk.TokenTransfer(sdk.Address("hive:rich"), 100, sdk.AssetHbd)
		return nil
	})

	// a credit that would overflow the recipient sinks the whole call
	require.False(t, res.Ok)
	assert.Equal(t, int64(math.MaxInt64-5), vm.BalanceOf("hive:rich", "hbd"))
	assert.Equal(t, int64(1000), vm.BalanceOf("hive:alice", "hbd"))
}

func TestVaultOwnershipAndAsset(t *testing.T) {
	vm := newTestVM()
	vm.Deposit("hive:alice", 1000, "hbd")

	res := vm.Call(Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents:   []sdk.Intent{allowIntent("hbd", "500")},
	}, func() *string {
		vault := sdk.VaultOpen("stash", sdk.AssetHbd)
		sdk.TokenDraw(500, sdk.AssetHbd)
		sdk.TokenTransfer(vault, 500, sdk.AssetHbd)
		// debit back out through the seed we own
		sdk.VaultTransfer("stash", sdk.Address("hive:bob"), 200, sdk.AssetHbd)
		return nil
	})
	require.True(t, res.Ok)
	assert.Equal(t, int64(200), vm.BalanceOf("hive:bob", "hbd"))

	// reopening with another asset is rejected
	res = vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.VaultOpen("stash", sdk.AssetHive)
		return nil
	})
	assert.False(t, res.Ok)

	// transferring an asset the vault does not hold is rejected
	res = vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.VaultTransfer("stash", sdk.Address("hive:bob"), 1, sdk.AssetHive)
		return nil
	})
	assert.False(t, res.Ok)
}

func TestMintLifecycle(t *testing.T) {
	vm := newTestVM()

	res := vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		credential := sdk.MintCreate("cred:1")
		sdk.MintIssue(credential, sdk.Address("hive:alice"), 1)
		sdk.MintRevoke(credential)
		return sdkStrPtr(credential.String())
	})
	require.True(t, res.Ok)
	credential := *res.Ret
	assert.Equal(t, int64(1), vm.MintBalanceOf(credential, "hive:alice"))

	// issuing after revoke fails and rolls back
	res = vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.MintIssue(sdk.Address(credential), sdk.Address("hive:alice"), 1)
		return nil
	})
	assert.False(t, res.Ok)
	assert.Equal(t, int64(1), vm.MintBalanceOf(credential, "hive:alice"))

	// burn and close empty the account
	res = vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.TokenBurn(sdk.Address(credential), sdk.Address("hive:alice"), 1)
		sdk.AccountClose(sdk.Address(credential), sdk.Address("hive:alice"))
		return nil
	})
	require.True(t, res.Ok)
	assert.Equal(t, int64(0), vm.MintBalanceOf(credential, "hive:alice"))

	// duplicate mint seeds are rejected
	res = vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.MintCreate("cred:1")
		return nil
	})
	assert.False(t, res.Ok)
}

func TestContractCallGrants(t *testing.T) {
	vm := newTestVM()
	vm.Deposit("hive:alice", 1000, "hbd")

	vm.RegisterContract("contract:sink", func(ctx *CallCtx, method string, payload string) *string {
		assert.Equal(t, "contract:test", ctx.Caller())
		ctx.DrawVault("hbd", 300, "contract:sink")
		return nil
	})

	res := vm.Call(Tx{
		Sender:    "hive:alice",
		Timestamp: "2026-01-01T00:00:00",
		Intents:   []sdk.Intent{allowIntent("hbd", "1000")},
	}, func() *string {
		vault := sdk.VaultOpen("stash", sdk.AssetHbd)
		sdk.TokenDraw(1000, sdk.AssetHbd)
		sdk.TokenTransfer(vault, 1000, sdk.AssetHbd)
		sdk.ContractCall("contract:sink", "take", "", &sdk.ContractCallOptions{
			Intents: []sdk.Intent{{
				Type: "vault.allow",
				Args: map[string]string{"seed": "stash", "token": "hbd", "limit": "300"},
			}},
		})
		return nil
	})
	require.True(t, res.Ok)
	assert.Equal(t, int64(300), vm.BalanceOf("contract:sink", "hbd"))

	// a callee overdrawing its grant sinks the whole transaction
	vm.RegisterContract("contract:greedy", func(ctx *CallCtx, method string, payload string) *string {
		ctx.DrawVault("hbd", 9999, "contract:greedy")
		return nil
	})
	res = vm.Call(Tx{Sender: "hive:alice", Timestamp: "2026-01-01T00:00:00"}, func() *string {
		sdk.ContractCall("contract:greedy", "take", "", &sdk.ContractCallOptions{
			Intents: []sdk.Intent{{
				Type: "vault.allow",
				Args: map[string]string{"seed": "stash", "token": "hbd", "limit": "100"},
			}},
		})
		return nil
	})
	assert.False(t, res.Ok)
	assert.Equal(t, int64(0), vm.BalanceOf("contract:greedy", "hbd"))
}

func sdkStrPtr(s string) *string { return &s }
