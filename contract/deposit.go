package main

import (
	"fmt"

	"launchpad/sdk"
)

// -----------------------------------------------------------------------------
// Deposits
// -----------------------------------------------------------------------------

// UserDeposit contributes raised tokens to an open campaign. Requires the
// whitelist authority as co-signer and a transfer.allow intent covering the
// amount. On success the caller holds a fresh single-supply claim credential
// whose mint authority is revoked immediately, so exactly one unit can ever
// exist.
// Payload: "uid|amount"
//
//go:wasmexport user_deposit
func UserDeposit(payload *string) *string {
	args := decodeDepositArgs(payload)
	reg := mustLoadRegistry()
	campaign := mustLoadCampaign(args.CampaignUID)

	if campaign.Phase != PhaseFundCollection {
		failPhase("deposits only accepted during fund collection")
	}
	requireWhitelistCosign(reg)
	requireOpenWindow(campaign)
	if args.Amount <= 0 {
		sdk.Revert("deposit amount must be positive", ErrInvalidAmount)
	}
	requireTransferAllow(campaign.Terms.RaisedAsset, args.Amount)

	// Cap check against the live vault balance. Filling the cap exactly is
	// allowed; one token over is not. Compared as headroom, never as a sum,
	// so an amount near MaxInt64 cannot wrap past the cap.
	vaultBalance := raisedVaultBalance(campaign)
	if args.Amount > campaign.Terms.RaisedTokenMaxCap-vaultBalance {
		sdk.Revert(
			fmt.Sprintf("deposit of %d would exceed max cap (%d of %d filled)",
				args.Amount, vaultBalance, campaign.Terms.RaisedTokenMaxCap),
			ErrCapExceeded,
		)
	}

	sender := getSenderAddress()
	escrowDeposit(campaign, raisedVaultSeed(campaign.Terms.UID), campaign.Terms.RaisedAsset, args.Amount)
	credential := issueCredential(campaign, sender, args.Amount, RoleUser)
	saveCampaign(campaign)

	emitDepositEvent(campaign.Terms.UID, sender.String(), args.Amount, RoleUser, credential.String())
	return strptr(credential.String())
}

// ProjectDeposit escrows the full launched token supply in one shot. Only
// the project may call it, only with the exact cap amount, and only once.
// The credential account is frozen so the project cannot pass it around.
// Payload: "uid|amount"
//
//go:wasmexport project_deposit
func ProjectDeposit(payload *string) *string {
	args := decodeDepositArgs(payload)
	campaign := mustLoadCampaign(args.CampaignUID)

	if campaign.Phase != PhaseFundCollection {
		failPhase("deposits only accepted during fund collection")
	}
	sender := getSenderAddress()
	if sender != campaign.Terms.Project {
		failUnauthorized("only the project may deposit the launched supply")
	}
	requireOpenWindow(campaign)
	if args.Amount != campaign.Terms.LaunchedTokenCap {
		sdk.Revert(
			fmt.Sprintf("launched deposit must be exactly %d", campaign.Terms.LaunchedTokenCap),
			ErrInvalidAmount,
		)
	}
	if launchedVaultBalance(campaign) != 0 {
		sdk.Revert("launched supply already deposited", ErrCapExceeded)
	}
	requireTransferAllow(campaign.Terms.LaunchedAsset, args.Amount)

	escrowDeposit(campaign, launchedVaultSeed(campaign.Terms.UID), campaign.Terms.LaunchedAsset, args.Amount)
	credential := issueCredential(campaign, sender, args.Amount, RoleProject)
	sdk.AccountFreeze(credential, sender)
	saveCampaign(campaign)

	emitDepositEvent(campaign.Terms.UID, sender.String(), args.Amount, RoleProject, credential.String())
	return strptr(credential.String())
}

// requireOpenWindow reverts outside the [start, end] collection window.
func requireOpenWindow(campaign *Campaign) {
	now := nowUnix()
	if now < campaign.Terms.FundCollectionStartTime {
		sdk.Revert("fund collection has not started", ErrFundCollectionNotBegun)
	}
	if now > campaign.Terms.FundCollectionEndTime {
		sdk.Revert("fund collection has ended", ErrFundCollectionCompleted)
	}
}

// requireTransferAllow aborts unless the caller attached a transfer.allow
// intent covering the asset and amount. Without it the draw below would
// fail anyway; checking first gives a clearer message.
func requireTransferAllow(asset sdk.Asset, amount int64) {
	limit, ok := getFirstTransferAllow(asset)
	if !ok {
		sdk.Abort(fmt.Sprintf("transfer.allow intent for %s required", asset.String()))
	}
	if limit < amount {
		sdk.Abort(fmt.Sprintf("transfer.allow limit %d below deposit amount %d", limit, amount))
	}
}

// escrowDeposit draws the tokens from the caller and parks them in the
// campaign's custody vault.
func escrowDeposit(campaign *Campaign, vaultSeed string, asset sdk.Asset, amount int64) {
	vaultAddr := sdk.Derive(sdk.AddressDomainVault, getContractId(), vaultSeed)
	sdk.TokenDraw(amount, asset)
	sdk.TokenTransfer(vaultAddr, amount, asset)
}

// issueCredential mints the single-supply claim credential to the depositor,
// revokes the mint authority and writes the position record. The revocation
// is what makes the credential a bearer proof of exactly this deposit.
func issueCredential(campaign *Campaign, to sdk.Address, amount int64, role PositionRole) sdk.Address {
	seq := campaign.PositionSeq
	campaign.PositionSeq++

	credential := sdk.MintCreate(credentialSeed(campaign.Terms.UID, seq))
	sdk.MintIssue(credential, to, 1)
	sdk.MintRevoke(credential)

	savePosition(&Position{
		Credential:  credential,
		CampaignUID: campaign.Terms.UID,
		Amount:      amount,
		Role:        role,
		CreatedAt:   nowUnix(),
	})
	return credential
}
