package sdk

import (
	"encoding/json"
)

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("deposit accepted")
func Log(s string) {
	host().Log(s)
}

// Abort stops execution immediately and surfaces the message to the chain.
// Used for malformed input; domain failures go through Revert with a symbol.
// Example payload: sdk.Abort("payload missing")
func Abort(msg string) {
	host().Abort(msg)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity)
// with a short symbol the caller can match on. The whole transaction unwinds,
// including any transfers performed earlier in the same call.
// Example payload: sdk.Revert("cap exceeded", "cap_exceeded")
func Revert(msg string, symbol string) {
	host().Revert(msg, symbol)
	panic(symbol + ": " + msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	host().StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return host().StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	host().StateDelete(key)
}

// envWire mirrors the flat JSON env blob the chain hands us.
type envWire struct {
	ContractId           string   `json:"contract.id"`
	ContractOwner        string   `json:"contract.owner"`
	TxId                 string   `json:"tx.id"`
	Index                int64    `json:"tx.index"`
	OpIndex              int64    `json:"tx.op_index"`
	BlockId              string   `json:"block.id"`
	BlockHeight          uint64   `json:"block.height"`
	Timestamp            string   `json:"block.timestamp"`
	Sender               string   `json:"msg.sender"`
	RequiredAuths        []string `json:"msg.required_auths"`
	RequiredPostingAuths []string `json:"msg.required_posting_auths"`
	Payer                string   `json:"msg.payer"`
	Intents              []Intent `json:"intents"`
}

// GetEnv pulls the JSON env blob from the host and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	var wire envWire
	if err := json.Unmarshal([]byte(host().EnvJSON()), &wire); err != nil {
		Abort("invalid env blob: " + err.Error())
	}

	requiredAuths := make([]Address, 0, len(wire.RequiredAuths))
	for _, auth := range wire.RequiredAuths {
		requiredAuths = append(requiredAuths, Address(auth))
	}
	requiredPostingAuths := make([]Address, 0, len(wire.RequiredPostingAuths))
	for _, auth := range wire.RequiredPostingAuths {
		requiredPostingAuths = append(requiredPostingAuths, Address(auth))
	}

	return Env{
		ContractId:    wire.ContractId,
		ContractOwner: Address(wire.ContractOwner),
		TxId:          wire.TxId,
		Index:         wire.Index,
		OpIndex:       wire.OpIndex,
		BlockId:       wire.BlockId,
		BlockHeight:   wire.BlockHeight,
		Timestamp:     wire.Timestamp,
		Sender: Sender{
			Address:              Address(wire.Sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		},
		Payer:   Address(wire.Payer),
		Intents: wire.Intents,
	}
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return host().EnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	return host().Balance(address.String(), asset.String())
}

// TokenDraw pulls tokens from the caller into the contract's own account,
// within the limit of a transfer.allow intent attached to the transaction.
// Example payload: sdk.TokenDraw(1000, sdk.AssetHive)
func TokenDraw(amount int64, asset Asset) {
	host().Draw(amount, asset.String())
}

// TokenTransfer sends tokens from the contract's own account to an address.
// Example payload: sdk.TokenTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHbd)
func TokenTransfer(to Address, amount int64, asset Asset) {
	host().Transfer(to.String(), amount, asset.String())
}

// VaultOpen provisions (or finds) a custody balance at the derived authority
// address for the given seed, bound to one asset. Only the opening contract
// can ever debit it.
// Example payload: sdk.VaultOpen("campaign:7:raised", sdk.AssetHbd)
func VaultOpen(seed string, asset Asset) Address {
	return Address(host().VaultOpen(seed, asset.String()))
}

// VaultAsset returns the asset a vault was opened with, or "" when the seed
// has never been opened. Used to detect asset identity mismatches up front.
// Example payload: sdk.VaultAsset("campaign:7:raised")
func VaultAsset(seed string) Asset {
	return Asset(host().VaultAsset(seed))
}

// VaultTransfer debits a vault owned by this contract. The host re-derives
// the vault address from (contract id, seed), which is what proves authority;
// no key material is involved.
// Example payload: sdk.VaultTransfer("campaign:7:raised", sdk.Address("hive:foo"), 300, sdk.AssetHbd)
func VaultTransfer(seed string, to Address, amount int64, asset Asset) {
	host().VaultTransfer(seed, to.String(), amount, asset.String())
}

// MintCreate creates a fresh single-purpose token mint at a derived identity,
// with this contract as its only issuing authority.
// Example payload: sdk.MintCreate("credential:7:0")
func MintCreate(seed string) Address {
	return Address(host().MintCreate(seed))
}

// MintIssue issues units of a mint this contract controls to an address.
// Example payload: sdk.MintIssue(credential, sdk.Address("hive:foo"), 1)
func MintIssue(mint Address, to Address, amount int64) {
	host().MintIssue(mint.String(), to.String(), amount)
}

// MintRevoke permanently strips issuing authority from a mint. Nothing can
// ever be issued from it again; burns remain possible.
// Example payload: sdk.MintRevoke(credential)
func MintRevoke(mint Address) {
	host().MintRevoke(mint.String())
}

// TokenBurn destroys units of a mint this contract controls, held at from.
// Example payload: sdk.TokenBurn(credential, sdk.Address("hive:foo"), 1)
func TokenBurn(mint Address, from Address, amount int64) {
	host().Burn(mint.String(), from.String(), amount)
}

// AccountFreeze blocks transfers out of a holder's account for this mint.
// Example payload: sdk.AccountFreeze(credential, sdk.Address("hive:proj"))
func AccountFreeze(mint Address, address Address) {
	host().AccountFreeze(mint.String(), address.String())
}

// AccountClose removes an emptied holder account, returning its storage cost.
// Example payload: sdk.AccountClose(credential, sdk.Address("hive:foo"))
func AccountClose(mint Address, address Address) {
	host().AccountClose(mint.String(), address.String())
}

// AccountBalance reads how many units of a mint an address holds.
// Example payload: sdk.AccountBalance(credential, sdk.Address("hive:foo"))
func AccountBalance(mint Address, address Address) int64 {
	return host().AccountBalance(mint.String(), address.String())
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Example payload: sdk.ContractCall("contract:pool", "initialize_pool", "...", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(options)
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return host().ContractCall(contractId, method, payload, optStr)
}
