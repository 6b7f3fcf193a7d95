package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"

	"launchpad/sdk"
)

// loadCampaign fetches a campaign by uid, nil when it does not exist.
func loadCampaign(uid uint64) *Campaign {
	ptr := sdk.StateGetObject(campaignKey(uid))
	if ptr == nil {
		return nil
	}
	var c Campaign
	if err := tinyjson.Unmarshal([]byte(*ptr), &c); err != nil {
		sdk.Abort("corrupt campaign record")
	}
	return &c
}

// mustLoadCampaign aborts when the uid names no campaign.
func mustLoadCampaign(uid uint64) *Campaign {
	c := loadCampaign(uid)
	if c == nil {
		sdk.Abort("campaign not found")
	}
	return c
}

// saveCampaign persists the campaign under its uid key.
func saveCampaign(c *Campaign) {
	blob, err := tinyjson.Marshal(c)
	if err != nil {
		sdk.Abort("could not encode campaign")
	}
	sdk.StateSetObject(campaignKey(c.Terms.UID), string(blob))
}

// raisedVaultBalance reads the live custody balance of contributed tokens.
func raisedVaultBalance(c *Campaign) int64 {
	addr := sdk.Derive(sdk.AddressDomainVault, getContractId(), raisedVaultSeed(c.Terms.UID))
	return sdk.GetBalance(addr, c.Terms.RaisedAsset)
}

// launchedVaultBalance reads the custody balance of the project token supply.
func launchedVaultBalance(c *Campaign) int64 {
	addr := sdk.Derive(sdk.AddressDomainVault, getContractId(), launchedVaultSeed(c.Terms.UID))
	return sdk.GetBalance(addr, c.Terms.LaunchedAsset)
}
