package main

import (
	"fmt"

	"launchpad/sdk"
)

// -----------------------------------------------------------------------------
// Refunds
// -----------------------------------------------------------------------------

// UserRefund returns a depositor's raised tokens once a campaign is in the
// Refund phase. Proving the claim means holding the one credential unit; the
// refund burns it and deletes the position, so a second attempt has nothing
// left to present.
// Payload: "credential"
//
//go:wasmexport user_refund
func UserRefund(payload *string) *string {
	credential := decodeCredentialArg(payload)
	return settleRefund(credential, RoleUser)
}

// ProjectRefund returns the escrowed launched supply to the project after a
// failed raise. Same credential proof as user refunds; the frozen account
// does not block burning.
// Payload: "credential"
//
//go:wasmexport project_refund
func ProjectRefund(payload *string) *string {
	credential := decodeCredentialArg(payload)
	return settleRefund(credential, RoleProject)
}

// settleRefund is the shared exactly-once refund path for both roles.
func settleRefund(credential sdk.Address, role PositionRole) *string {
	position := loadPosition(credential)
	if position == nil {
		sdk.Revert("no position for this credential", ErrAlreadyProcessed)
	}
	if position.Role != role {
		sdk.Revert("credential belongs to a different deposit kind", ErrDoesNotHoldPosition)
	}

	campaign := mustLoadCampaign(position.CampaignUID)
	if campaign.Phase != PhaseRefund {
		failPhase("refunds only allowed in the refund phase")
	}

	sender := getSenderAddress()
	if sdk.AccountBalance(credential, sender) != 1 {
		sdk.Revert("sender does not hold the claim credential", ErrDoesNotHoldPosition)
	}

	vaultSeed := raisedVaultSeed(campaign.Terms.UID)
	asset := campaign.Terms.RaisedAsset
	if role == RoleProject {
		vaultSeed = launchedVaultSeed(campaign.Terms.UID)
		asset = campaign.Terms.LaunchedAsset
	}

	sdk.VaultTransfer(vaultSeed, sender, position.Amount, asset)
	sdk.TokenBurn(credential, sender, 1)
	sdk.AccountClose(credential, sender)
	deletePosition(credential)

	emitRefundEvent(campaign.Terms.UID, sender.String(), position.Amount, credential.String())
	return strptr(fmt.Sprintf("refunded %d %s", position.Amount, asset.String()))
}

// GetPosition returns the stored position record as JSON for frontends.
// Payload: "credential"
//
//go:wasmexport get_position
func GetPosition(payload *string) *string {
	credential := decodeCredentialArg(payload)
	position := loadPosition(credential)
	if position == nil {
		sdk.Abort("position not found")
	}
	blob, err := position.MarshalJSON()
	if err != nil {
		sdk.Abort("could not encode position")
	}
	return strptr(string(blob))
}
