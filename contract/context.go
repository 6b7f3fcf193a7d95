package main

import (
	"strconv"
	"time"

	"launchpad/sdk"
)

// cachedEnv keeps the parsed env for the current transaction so repeated
// lookups within one call do not re-parse the host blob.
var (
	cachedEnv   *sdk.Env
	cachedEnvTx string
)

// getEnv returns the env for the running transaction, re-reading it only
// when the tx id changed since the last call.
func getEnv() sdk.Env {
	txPtr := sdk.GetEnvKey("tx.id")
	if cachedEnv != nil && txPtr != nil && cachedEnvTx == *txPtr {
		return *cachedEnv
	}
	env := sdk.GetEnv()
	cachedEnv = &env
	cachedEnvTx = env.TxId
	return env
}

// getSenderAddress shortcuts to the signer address of the current call.
func getSenderAddress() sdk.Address {
	return getEnv().Sender.Address
}

// hasRequiredAuth reports whether addr actively signed this transaction,
// either as the sender itself or via the required_auths co-signature list.
func hasRequiredAuth(addr sdk.Address) bool {
	env := getEnv()
	if env.Sender.Address == addr {
		return true
	}
	for _, auth := range env.Sender.RequiredAuths {
		if auth == addr {
			return true
		}
	}
	return false
}

// getFirstTransferAllow finds the first transfer.allow intent matching the
// asset and returns its limit. Deposits must attach one so the contract can
// draw the caller's tokens.
func getFirstTransferAllow(asset sdk.Asset) (int64, bool) {
	for _, intent := range getEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseInt(intent.Args["limit"], 10, 64)
		if err != nil {
			continue
		}
		return limit, true
	}
	return 0, false
}

// nowUnix resolves the block timestamp into unix seconds. The host has
// shipped both raw unix numbers and RFC3339 strings over time, so we accept
// either.
func nowUnix() int64 {
	ts := getEnv().Timestamp
	if ts == "" {
		sdk.Abort("block timestamp missing")
	}
	if n, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return n
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Unix()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", ts); err == nil {
		return t.Unix()
	}
	sdk.Abort("unparseable block timestamp: " + ts)
	return 0
}

// getContractId returns this contract's own ledger identity.
func getContractId() string {
	return getEnv().ContractId
}
