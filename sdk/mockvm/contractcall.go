package mockvm

import (
	"encoding/json"
	"fmt"
	"strconv"

	"launchpad/sdk"
)

// vaultGrant is one vault.allow intent delegated to a callee, scoped to the
// duration of that call and spendable at most up to its limit.
type vaultGrant struct {
	seed      string
	addr      string
	asset     string
	remaining int64
}

// CallCtx is what a registered foreign-contract handler sees: who called it
// and which vault grants it may spend.
type CallCtx struct {
	vm     *VM
	caller string
	grants []*vaultGrant
}

// Caller returns the contract id that initiated this cross-contract call.
func (ctx *CallCtx) Caller() string {
	return ctx.caller
}

// DrawVault moves funds out of a granted vault into a destination address.
// Fails the whole transaction if no grant covers the asset or the limit is
// exceeded, same as the chain host would.
func (ctx *CallCtx) DrawVault(asset string, amount int64, to string) {
	var grant *vaultGrant
	for _, g := range ctx.grants {
		if g.asset == asset {
			grant = g
			break
		}
	}
	if grant == nil {
		Fail("no vault.allow grant for asset " + asset)
	}
	if grant.remaining < amount {
		Fail(fmt.Sprintf("vault.allow limit exceeded: %d remaining, %d requested", grant.remaining, amount))
	}
	grant.remaining -= amount
	ctx.vm.debit(grant.addr, asset, amount)
	ctx.vm.credit(to, asset, amount)
}

// Credit deposits funds into an address from the callee side, test doubles
// use it to simulate the callee contract paying something out.
func (ctx *CallCtx) Credit(address string, amount int64, asset string) {
	ctx.vm.credit(address, asset, amount)
}

func (vm *VM) ContractCall(contractId string, method string, payload string, options string) *string {
	h, ok := vm.handlers[contractId]
	if !ok {
		vm.Abort("contract " + contractId + " not found")
	}
	ctx := &CallCtx{vm: vm, caller: vm.ContractId}
	if options != "" {
		var opts sdk.ContractCallOptions
		if err := json.Unmarshal([]byte(options), &opts); err != nil {
			vm.Abort("invalid contract call options: " + err.Error())
		}
		for _, intent := range opts.Intents {
			if intent.Type != "vault.allow" {
				continue
			}
			seed := intent.Args["seed"]
			addr := vm.vaultAddress(seed)
			v, okV := vm.vaults[addr]
			if !okV || v.contract != vm.ContractId {
				vm.Abort("vault.allow names a vault the caller does not own: " + seed)
			}
			limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
			if err != nil {
				vm.Abort("vault.allow has no parseable limit")
			}
			if v.asset != intent.Args["token"] {
				vm.Abort("vault.allow token does not match vault asset")
			}
			ctx.grants = append(ctx.grants, &vaultGrant{seed: seed, addr: addr, asset: v.asset, remaining: limit})
		}
	}
	return h(ctx, method, payload)
}
