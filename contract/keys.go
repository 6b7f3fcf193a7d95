package main

import (
	"fmt"

	"launchpad/sdk"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// campaignKey builds a storage key string for a campaign by uid.
func campaignKey(uid uint64) string {
	var buf [9]byte
	buf[0] = kCampaign
	packU64LEInline(uid, buf[1:])
	return string(buf[:])
}

// positionKey mixes the prefix with the credential address, which is unique
// per deposit since every credential is a fresh derived mint.
func positionKey(credential sdk.Address) string {
	cred := credential.String()
	buf := make([]byte, 0, 1+len(cred))
	buf = append(buf, kPosition)
	buf = append(buf, cred...)
	return string(buf)
}

// raisedVaultSeed names the custody vault holding contributed raised tokens.
func raisedVaultSeed(uid uint64) string {
	return fmt.Sprintf("campaign:%d:raised", uid)
}

// launchedVaultSeed names the custody vault holding the project's token supply.
func launchedVaultSeed(uid uint64) string {
	return fmt.Sprintf("campaign:%d:launched", uid)
}

// credentialSeed names the claim credential mint for one deposit. The per
// campaign sequence number makes each deposit's credential unique.
func credentialSeed(uid uint64, seq uint64) string {
	return fmt.Sprintf("credential:%d:%d", uid, seq)
}
