package mockvm

import (
	"encoding/json"
	"fmt"

	"launchpad/sdk"
)

// sdk.Host implementation. Semantics match the chain host: draws honor
// transfer.allow limits, vault debits require the calling contract to own the
// seed, mints accept issuance only from their creating contract.

func (vm *VM) Log(msg string) {
	vm.logs = append(vm.logs, msg)
}

func (vm *VM) Abort(msg string) {
	panic(&txFailure{msg: msg, symbol: "abort"})
}

func (vm *VM) Revert(msg string, symbol string) {
	panic(&txFailure{msg: msg, symbol: symbol})
}

func (vm *VM) StateSet(key string, value string) {
	vm.state[key] = value
}

func (vm *VM) StateGet(key string) *string {
	v, ok := vm.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (vm *VM) StateDelete(key string) {
	delete(vm.state, key)
}

func (vm *VM) EnvJSON() string {
	return vm.envJSON
}

func (vm *VM) EnvKey(key string) *string {
	var wire map[string]interface{}
	if err := json.Unmarshal([]byte(vm.envJSON), &wire); err != nil {
		return nil
	}
	v, ok := wire[key]
	if !ok {
		return nil
	}
	s := fmt.Sprintf("%v", v)
	return &s
}

func (vm *VM) Balance(address string, asset string) int64 {
	return vm.balances[address][asset]
}

func (vm *VM) Draw(amount int64, asset string) {
	if amount <= 0 {
		vm.Abort("draw amount must be positive")
	}
	var grant *allowance
	for _, a := range vm.allowances {
		if a.token == asset {
			grant = a
			break
		}
	}
	if grant == nil {
		vm.Abort("no transfer.allow intent for asset " + asset)
	}
	if grant.remaining < amount {
		vm.Abort(fmt.Sprintf("transfer.allow limit exceeded: %d remaining, %d drawn", grant.remaining, amount))
	}
	grant.remaining -= amount
	sender := vm.env.Sender.Address.String()
	vm.debit(sender, asset, amount)
	vm.credit(vm.contractAccount(), asset, amount)
}

func (vm *VM) Transfer(to string, amount int64, asset string) {
	if amount <= 0 {
		vm.Abort("transfer amount must be positive")
	}
	vm.debit(vm.contractAccount(), asset, amount)
	vm.credit(to, asset, amount)
}

func (vm *VM) VaultOpen(seed string, asset string) string {
	addr := vm.vaultAddress(seed)
	if v, ok := vm.vaults[addr]; ok {
		if v.asset != asset {
			vm.Abort(fmt.Sprintf("vault %s already bound to asset %s", seed, v.asset))
		}
		return addr
	}
	vm.vaults[addr] = &vault{contract: vm.ContractId, seed: seed, asset: asset}
	return addr
}

func (vm *VM) VaultAsset(seed string) string {
	v, ok := vm.vaults[vm.vaultAddress(seed)]
	if !ok {
		return ""
	}
	return v.asset
}

func (vm *VM) VaultTransfer(seed string, to string, amount int64, asset string) {
	if amount <= 0 {
		vm.Abort("vault transfer amount must be positive")
	}
	addr := vm.vaultAddress(seed)
	v, ok := vm.vaults[addr]
	if !ok {
		vm.Abort("vault " + seed + " does not exist")
	}
	if v.contract != vm.ContractId {
		vm.Abort("vault " + seed + " is not owned by the calling contract")
	}
	if v.asset != asset {
		vm.Abort(fmt.Sprintf("vault %s holds %s, not %s", seed, v.asset, asset))
	}
	vm.debit(addr, asset, amount)
	vm.credit(to, asset, amount)
}

func (vm *VM) MintCreate(seed string) string {
	addr := vm.mintAddress(seed)
	if _, ok := vm.mints[addr]; ok {
		vm.Abort("mint " + seed + " already exists")
	}
	vm.mints[addr] = &mint{contract: vm.ContractId, accounts: map[string]*mintAccount{}}
	return addr
}

func (vm *VM) MintIssue(mintAddr string, to string, amount int64) {
	m := vm.requireMint(mintAddr)
	if m.revoked {
		vm.Abort("mint authority has been revoked")
	}
	if amount <= 0 {
		vm.Abort("issue amount must be positive")
	}
	acc, ok := m.accounts[to]
	if !ok {
		acc = &mintAccount{}
		m.accounts[to] = acc
	}
	acc.balance += amount
	m.supply += amount
}

func (vm *VM) MintRevoke(mintAddr string) {
	m := vm.requireMint(mintAddr)
	m.revoked = true
}

func (vm *VM) Burn(mintAddr string, from string, amount int64) {
	m := vm.requireMint(mintAddr)
	acc, ok := m.accounts[from]
	if !ok || acc.balance < amount {
		vm.Abort("burn exceeds held balance")
	}
	acc.balance -= amount
	m.supply -= amount
}

func (vm *VM) AccountFreeze(mintAddr string, address string) {
	m := vm.requireMint(mintAddr)
	acc, ok := m.accounts[address]
	if !ok {
		vm.Abort("no account to freeze for " + address)
	}
	acc.frozen = true
}

func (vm *VM) AccountClose(mintAddr string, address string) {
	m := vm.requireMint(mintAddr)
	acc, ok := m.accounts[address]
	if !ok {
		vm.Abort("no account to close for " + address)
	}
	if acc.balance != 0 {
		vm.Abort("cannot close account with non-zero balance")
	}
	delete(m.accounts, address)
}

func (vm *VM) AccountBalance(mintAddr string, address string) int64 {
	m, ok := vm.mints[mintAddr]
	if !ok {
		return 0
	}
	acc, ok := m.accounts[address]
	if !ok {
		return 0
	}
	return acc.balance
}

func (vm *VM) requireMint(mintAddr string) *mint {
	m, ok := vm.mints[mintAddr]
	if !ok {
		vm.Abort("mint " + mintAddr + " does not exist")
	}
	if m.contract != vm.ContractId {
		vm.Abort("mint " + mintAddr + " is not controlled by the calling contract")
	}
	return m
}

func (vm *VM) vaultAddress(seed string) string {
	return sdk.Derive(sdk.AddressDomainVault, vm.ContractId, seed).String()
}

func (vm *VM) mintAddress(seed string) string {
	return sdk.Derive(sdk.AddressDomainMint, vm.ContractId, seed).String()
}

func (vm *VM) contractAccount() string {
	return vm.ContractId
}
