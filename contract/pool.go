package main

import (
	"fmt"

	"launchpad/sdk"
)

// -----------------------------------------------------------------------------
// Liquidity pool bridge
// -----------------------------------------------------------------------------

// poolLeg is one side of the pool seeding: which custody vault funds it and
// with how much.
type poolLeg struct {
	asset     sdk.Asset
	amount    int64
	vaultSeed string
}

// initializePool seeds the external pool contract with the campaign's two
// assets. The call carries single-use vault.allow intents scoped to exactly
// the two amounts, so the pool can pull its legs and nothing else. The pool
// contract failing throws, which unwinds the whole vesting transition.
func initializePool(campaign *Campaign, poolContract string) {
	uid := campaign.Terms.UID

	// The launched leg seeds only the lp distribution share; the remainder
	// of the supply stays in custody for later payouts.
	launchedAmount := campaign.Terms.LaunchedTokenLPDistribution
	raisedAmount := campaign.RaisedTokenCap

	legA := poolLeg{
		asset:     campaign.Terms.LaunchedAsset,
		amount:    launchedAmount,
		vaultSeed: launchedVaultSeed(uid),
	}
	legB := poolLeg{
		asset:     campaign.Terms.RaisedAsset,
		amount:    raisedAmount,
		vaultSeed: raisedVaultSeed(uid),
	}
	// Pools identify pairs by sorted asset identity, lower first.
	if legB.asset < legA.asset {
		legA, legB = legB, legA
	}

	payload := fmt.Sprintf("%s|%d|%s|%d",
		legA.asset.String(), legA.amount,
		legB.asset.String(), legB.amount,
	)
	options := &sdk.ContractCallOptions{
		Intents: []sdk.Intent{
			vaultAllowIntent(legA),
			vaultAllowIntent(legB),
		},
	}

	sdk.ContractCall(poolContract, PoolInitializeMethod, payload, options)
	emitPoolInitializedEvent(uid, poolContract, launchedAmount, raisedAmount)
}

// vaultAllowIntent builds the capability granting the pool one scoped debit.
func vaultAllowIntent(leg poolLeg) sdk.Intent {
	return sdk.Intent{
		Type: "vault.allow",
		Args: map[string]string{
			"seed":  leg.vaultSeed,
			"token": leg.asset.String(),
			"limit": fmt.Sprintf("%d", leg.amount),
		},
	}
}
