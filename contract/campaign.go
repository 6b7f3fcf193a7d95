package main

import (
	"fmt"

	"launchpad/sdk"
)

// -----------------------------------------------------------------------------
// Campaign lifecycle
// -----------------------------------------------------------------------------

// CreateCampaign opens a new fundraising campaign in the FundCollection
// phase and provisions its two custody vaults at derived addresses.
// Payload: "uid|project|launchedAsset|launchedCap|lpDist|raisedAsset|minCap|maxCap|start|end|cliff|vesting"
//
//go:wasmexport create_campaign
func CreateCampaign(payload *string) *string {
	requireAdmin()
	args := decodeCreateCampaignArgs(payload)
	terms := args.Terms

	if loadCampaign(terms.UID) != nil {
		sdk.Abort(fmt.Sprintf("campaign %d already exists", terms.UID))
	}
	validateTerms(&terms)

	// The vault seeds are deterministic per uid; a seed already bound to a
	// different asset means the terms disagree with the ledger.
	raisedSeed := raisedVaultSeed(terms.UID)
	launchedSeed := launchedVaultSeed(terms.UID)
	if a := sdk.VaultAsset(raisedSeed); a != "" && a != terms.RaisedAsset {
		sdk.Revert("raised vault bound to a different asset", ErrInvalidMint)
	}
	if a := sdk.VaultAsset(launchedSeed); a != "" && a != terms.LaunchedAsset {
		sdk.Revert("launched vault bound to a different asset", ErrInvalidMint)
	}
	sdk.VaultOpen(raisedSeed, terms.RaisedAsset)
	sdk.VaultOpen(launchedSeed, terms.LaunchedAsset)

	campaign := Campaign{
		Terms:            terms,
		Phase:            PhaseFundCollection,
		RaisedTokenCap:   0,
		VestingStartTime: VestingStartSentinel,
	}
	saveCampaign(&campaign)

	emitCampaignCreatedEvent(terms.UID, terms.Project.String())
	return strptr(fmt.Sprintf("campaign %d created", terms.UID))
}

// validateTerms rejects terms no campaign could honor.
func validateTerms(terms *CampaignTerms) {
	if terms.LaunchedTokenCap <= 0 {
		sdk.Revert("launched token cap must be positive", ErrInvalidAmount)
	}
	if terms.RaisedTokenMinCap <= 0 || terms.RaisedTokenMaxCap <= 0 {
		sdk.Revert("raised caps must be positive", ErrInvalidAmount)
	}
	if terms.RaisedTokenMinCap > terms.RaisedTokenMaxCap {
		sdk.Revert("raised min cap exceeds max cap", ErrInvalidAmount)
	}
	if terms.LaunchedTokenLPDistribution < 0 || terms.LaunchedTokenLPDistribution > terms.LaunchedTokenCap {
		sdk.Revert("lp distribution exceeds launched cap", ErrInvalidAmount)
	}
	if terms.FundCollectionStartTime >= terms.FundCollectionEndTime {
		sdk.Abort("fund collection window is empty")
	}
	if terms.CliffDuration < 0 || terms.VestingDuration < 0 {
		sdk.Abort("durations must not be negative")
	}
	if terms.LaunchedAsset == terms.RaisedAsset {
		sdk.Revert("launched and raised asset must differ", ErrInvalidMint)
	}
}

// MoveToRefund flips a campaign that missed its minimum into the Refund
// phase so depositors can pull their tokens back out.
// Payload: "uid"
//
//go:wasmexport move_to_refund
func MoveToRefund(payload *string) *string {
	requireAdmin()
	uid := decodeUidArg(payload)
	campaign := mustLoadCampaign(uid)

	if campaign.Phase != PhaseFundCollection {
		failPhase("refund is only reachable from fund collection")
	}
	raised := raisedVaultBalance(campaign)
	if raised >= campaign.Terms.RaisedTokenMinCap {
		failPhase(fmt.Sprintf("minimum was reached (%d raised), refund not allowed", raised))
	}

	campaign.Phase = PhaseRefund
	saveCampaign(campaign)

	emitPhaseChangedEvent(uid, PhaseRefund)
	return strptr("campaign moved to refund")
}

// MoveToVesting locks in a successful raise: freezes the raised amount from
// the observed vault balance, stamps the vesting clock and seeds the external
// liquidity pool. Any failure in the pool call unwinds the whole transition.
// Payload: "uid|poolContract"
//
//go:wasmexport move_to_vesting
func MoveToVesting(payload *string) *string {
	requireAdmin()
	args := decodeMoveToVestingArgs(payload)
	campaign := mustLoadCampaign(args.CampaignUID)

	if campaign.Phase != PhaseFundCollection {
		failPhase("vesting is only reachable from fund collection")
	}
	raised := raisedVaultBalance(campaign)
	if raised < campaign.Terms.RaisedTokenMinCap {
		failPhase(fmt.Sprintf("minimum not reached: %d of %d", raised, campaign.Terms.RaisedTokenMinCap))
	}
	launched := launchedVaultBalance(campaign)
	if launched != campaign.Terms.LaunchedTokenCap {
		failPhase(fmt.Sprintf("launched supply not deposited: %d of %d", launched, campaign.Terms.LaunchedTokenCap))
	}

	campaign.Phase = PhaseVesting
	campaign.RaisedTokenCap = raised
	campaign.VestingStartTime = nowUnix()
	saveCampaign(campaign)

	initializePool(campaign, args.PoolContract)

	emitPhaseChangedEvent(args.CampaignUID, PhaseVesting)
	return strptr("campaign moved to vesting")
}

// GetCampaign returns the stored campaign record as JSON for frontends.
// Payload: "uid"
//
//go:wasmexport get_campaign
func GetCampaign(payload *string) *string {
	uid := decodeUidArg(payload)
	campaign := mustLoadCampaign(uid)
	blob, err := campaign.MarshalJSON()
	if err != nil {
		sdk.Abort("could not encode campaign")
	}
	return strptr(string(blob))
}
