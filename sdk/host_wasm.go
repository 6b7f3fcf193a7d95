//go:build tinygo.wasm

package sdk

import "strconv"

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDelete(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func hostGetEnvKey(arg *string) *string

//go:wasmimport sdk token.get_balance
func hostGetBalance(address *string, asset *string) *string

//go:wasmimport sdk token.draw
func hostDraw(amount *string, asset *string) *string

//go:wasmimport sdk token.transfer
func hostTransfer(to *string, amount *string, asset *string) *string

//go:wasmimport sdk token.vault_open
func hostVaultOpen(seed *string, asset *string) *string

//go:wasmimport sdk token.vault_asset
func hostVaultAsset(seed *string) *string

//go:wasmimport sdk token.vault_transfer
func hostVaultTransfer(seed *string, to *string, amount *string, asset *string) *string

//go:wasmimport sdk token.mint_create
func hostMintCreate(seed *string) *string

//go:wasmimport sdk token.mint_issue
func hostMintIssue(mint *string, to *string, amount *string) *string

//go:wasmimport sdk token.mint_revoke
func hostMintRevoke(mint *string) *string

//go:wasmimport sdk token.burn
func hostBurn(mint *string, from *string, amount *string) *string

//go:wasmimport sdk token.account_freeze
func hostAccountFreeze(mint *string, address *string) *string

//go:wasmimport sdk token.account_close
func hostAccountClose(mint *string, address *string) *string

//go:wasmimport sdk token.account_balance
func hostAccountBalance(mint *string, address *string) *string

//go:wasmimport sdk contracts.call
func hostContractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

// wasmHost forwards every Host method to the chain's wasm imports.
type wasmHost struct{}

func init() {
	SetHost(wasmHost{})
}

func (wasmHost) Log(msg string) {
	hostLog(&msg)
}

func (wasmHost) Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
}

func (wasmHost) Revert(msg string, symbol string) {
	hostRevert(&msg, &symbol)
}

func (wasmHost) StateSet(key string, value string) {
	hostStateSet(&key, &value)
}

func (wasmHost) StateGet(key string) *string {
	return hostStateGet(&key)
}

func (wasmHost) StateDelete(key string) {
	hostStateDelete(&key)
}

func (wasmHost) EnvJSON() string {
	return *hostGetEnv(nil)
}

func (wasmHost) EnvKey(key string) *string {
	return hostGetEnvKey(&key)
}

func (wasmHost) Balance(address string, asset string) int64 {
	return parseHostInt(hostGetBalance(&address, &asset))
}

func (wasmHost) Draw(amount int64, asset string) {
	amt := strconv.FormatInt(amount, 10)
	hostDraw(&amt, &asset)
}

func (wasmHost) Transfer(to string, amount int64, asset string) {
	amt := strconv.FormatInt(amount, 10)
	hostTransfer(&to, &amt, &asset)
}

func (wasmHost) VaultOpen(seed string, asset string) string {
	return *hostVaultOpen(&seed, &asset)
}

func (wasmHost) VaultAsset(seed string) string {
	ptr := hostVaultAsset(&seed)
	if ptr == nil {
		return ""
	}
	return *ptr
}

func (wasmHost) VaultTransfer(seed string, to string, amount int64, asset string) {
	amt := strconv.FormatInt(amount, 10)
	hostVaultTransfer(&seed, &to, &amt, &asset)
}

func (wasmHost) MintCreate(seed string) string {
	return *hostMintCreate(&seed)
}

func (wasmHost) MintIssue(mint string, to string, amount int64) {
	amt := strconv.FormatInt(amount, 10)
	hostMintIssue(&mint, &to, &amt)
}

func (wasmHost) MintRevoke(mint string) {
	hostMintRevoke(&mint)
}

func (wasmHost) Burn(mint string, from string, amount int64) {
	amt := strconv.FormatInt(amount, 10)
	hostBurn(&mint, &from, &amt)
}

func (wasmHost) AccountFreeze(mint string, address string) {
	hostAccountFreeze(&mint, &address)
}

func (wasmHost) AccountClose(mint string, address string) {
	hostAccountClose(&mint, &address)
}

func (wasmHost) AccountBalance(mint string, address string) int64 {
	return parseHostInt(hostAccountBalance(&mint, &address))
}

func (wasmHost) ContractCall(contractId string, method string, payload string, options string) *string {
	return hostContractCall(&contractId, &method, &payload, &options)
}

func parseHostInt(ptr *string) int64 {
	if ptr == nil {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}
