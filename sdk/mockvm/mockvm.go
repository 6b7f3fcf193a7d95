// Package mockvm is an in-memory stand-in for the chain host: a kv store,
// fungible balances, derived custody vaults, single-purpose mints and
// cross-contract dispatch, executed with all-or-nothing call semantics.
// Contract tests run entirely against it.
package mockvm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"launchpad/sdk"
)

// Handler is a registered foreign contract. It may panic with Fail/Abort to
// fail the whole surrounding transaction.
type Handler func(ctx *CallCtx, method string, payload string) *string

type vault struct {
	contract string
	seed     string
	asset    string
}

type mintAccount struct {
	balance int64
	frozen  bool
}

type mint struct {
	contract string
	revoked  bool
	supply   int64
	accounts map[string]*mintAccount
}

type allowance struct {
	token     string
	remaining int64
}

// txFailure carries an abort/revert out of contract code; Call recovers it.
type txFailure struct {
	msg    string
	symbol string
}

// VM implements sdk.Host over in-memory ledger structures.
type VM struct {
	ContractId string
	Owner      string

	state    map[string]string
	balances map[string]map[string]int64
	vaults   map[string]*vault
	mints    map[string]*mint
	handlers map[string]Handler

	env        sdk.Env
	envJSON    string
	allowances []*allowance
	logs       []string
}

// New creates an empty ledger hosting one contract with the given owner.
func New(contractId string, owner string) *VM {
	return &VM{
		ContractId: contractId,
		Owner:      owner,
		state:      map[string]string{},
		balances:   map[string]map[string]int64{},
		vaults:     map[string]*vault{},
		mints:      map[string]*mint{},
		handlers:   map[string]Handler{},
	}
}

// RegisterContract wires a foreign contract id to a Go handler so
// cross-contract calls have somewhere to land.
func (vm *VM) RegisterContract(contractId string, h Handler) {
	vm.handlers[contractId] = h
}

// Deposit credits an address out of thin air, test setup only.
func (vm *VM) Deposit(address string, amount int64, asset string) {
	vm.credit(address, asset, amount)
}

// BalanceOf reads a ledger balance without going through a call.
func (vm *VM) BalanceOf(address string, asset string) int64 {
	return vm.balances[address][asset]
}

// MintBalanceOf reads a mint account balance without going through a call.
func (vm *VM) MintBalanceOf(mintAddr string, address string) int64 {
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

// MintExists reports whether a mint identity has been created.
func (vm *VM) MintExists(mintAddr string) bool {
	_, ok := vm.mints[mintAddr]
	return ok
}

// -----------------------------------------------------------------------------
// Transaction execution
// -----------------------------------------------------------------------------

// Tx describes one inbound transaction for Call.
type Tx struct {
	Sender        string
	RequiredAuths []string
	Timestamp     string
	TxId          string
	Intents       []sdk.Intent
}

// Result mirrors the chain's per-transaction outcome: either everything the
// call did is visible, or nothing is.
type Result struct {
	Ok        bool
	Ret       *string
	ErrMsg    string
	ErrSymbol string
	Logs      []string
}

// Call runs fn as one atomic transaction: env installed, every write staged
// against a snapshot, aborts and reverts unwinding the lot.
func (vm *VM) Call(tx Tx, fn func() *string) (res Result) {
	vm.installEnv(tx)
	snapState, snapBalances, snapVaults, snapMints := vm.snapshot()
	defer func() {
		res.Logs = vm.logs
		vm.logs = nil
		vm.allowances = nil
		if r := recover(); r != nil {
			vm.state, vm.balances, vm.vaults, vm.mints = snapState, snapBalances, snapVaults, snapMints
			if f, ok := r.(*txFailure); ok {
				res.Ok = false
				res.ErrMsg = f.msg
				res.ErrSymbol = f.symbol
				return
			}
			panic(r)
		}
	}()
	res.Ret = fn()
	res.Ok = true
	return res
}

func (vm *VM) installEnv(tx Tx) {
	auths := tx.RequiredAuths
	if len(auths) == 0 {
		auths = []string{tx.Sender}
	}
	txId := tx.TxId
	if txId == "" {
		txId = fmt.Sprintf("tx-%s-%s", tx.Sender, tx.Timestamp)
	}
	wire := map[string]interface{}{
		"contract.id":                vm.ContractId,
		"contract.owner":             vm.Owner,
		"tx.id":                      txId,
		"tx.index":                   0,
		"tx.op_index":                0,
		"block.id":                   "block-1",
		"block.height":               1,
		"block.timestamp":            tx.Timestamp,
		"msg.sender":                 tx.Sender,
		"msg.required_auths":         auths,
		"msg.required_posting_auths": []string{},
		"msg.payer":                  tx.Sender,
		"intents":                    tx.Intents,
	}
	blob, err := json.Marshal(wire)
	if err != nil {
		panic(err)
	}
	vm.envJSON = string(blob)
	vm.env = sdk.Env{
		ContractId:    vm.ContractId,
		ContractOwner: sdk.Address(vm.Owner),
		TxId:          txId,
		Timestamp:     tx.Timestamp,
		Sender:        sdk.Sender{Address: sdk.Address(tx.Sender)},
	}
	vm.allowances = nil
	for _, intent := range tx.Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
		if err != nil {
			continue
		}
		vm.allowances = append(vm.allowances, &allowance{token: intent.Args["token"], remaining: limit})
	}
}

func (vm *VM) snapshot() (map[string]string, map[string]map[string]int64, map[string]*vault, map[string]*mint) {
	state := make(map[string]string, len(vm.state))
	for k, v := range vm.state {
		state[k] = v
	}
	balances := make(map[string]map[string]int64, len(vm.balances))
	for addr, assets := range vm.balances {
		cp := make(map[string]int64, len(assets))
		for a, v := range assets {
			cp[a] = v
		}
		balances[addr] = cp
	}
	vaults := make(map[string]*vault, len(vm.vaults))
	for k, v := range vm.vaults {
		cp := *v
		vaults[k] = &cp
	}
	mints := make(map[string]*mint, len(vm.mints))
	for k, m := range vm.mints {
		cp := &mint{contract: m.contract, revoked: m.revoked, supply: m.supply, accounts: map[string]*mintAccount{}}
		for addr, acc := range m.accounts {
			accCp := *acc
			cp.accounts[addr] = &accCp
		}
		mints[k] = cp
	}
	return state, balances, vaults, mints
}

// Fail aborts the surrounding transaction from handler code.
func Fail(msg string) {
	panic(&txFailure{msg: msg, symbol: "abort"})
}

func (vm *VM) credit(address string, asset string, amount int64) {
	if vm.balances[address] == nil {
		vm.balances[address] = map[string]int64{}
	}
	if amount > 0 && vm.balances[address][asset] > math.MaxInt64-amount {
		Fail(fmt.Sprintf("balance overflow for %s in %s", address, asset))
	}
	vm.balances[address][asset] += amount
}

func (vm *VM) debit(address string, asset string, amount int64) {
	if vm.balances[address][asset] < amount {
		Fail(fmt.Sprintf("insufficient funds: %s has %d %s, needs %d", address, vm.balances[address][asset], asset, amount))
	}
	vm.balances[address][asset] -= amount
}
