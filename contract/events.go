package main

import (
	"fmt"

	"launchpad/sdk"
)

// emitInitEvent pings watchers once when the authority registry is written.
func emitInitEvent(admin string, whitelist string) {
	sdk.Log(fmt.Sprintf(
		"init|admin:%s|wl:%s",
		admin,
		whitelist,
	))
}

// emitAdminNominatedEvent records who proposed the handover and to whom.
func emitAdminNominatedEvent(newAdmin string, byAdmin string) {
	sdk.Log(fmt.Sprintf(
		"an|new:%s|by:%s",
		newAdmin,
		byAdmin,
	))
}

// emitAdminAcceptedEvent marks the moment the pending admin took over.
func emitAdminAcceptedEvent(admin string) {
	sdk.Log(fmt.Sprintf(
		"aa|admin:%s",
		admin,
	))
}

// emitWhitelistAuthorityEvent logs rotations of the deposit co-signer.
func emitWhitelistAuthorityEvent(newAuthority string, byAdmin string) {
	sdk.Log(fmt.Sprintf(
		"wa|new:%s|by:%s",
		newAuthority,
		byAdmin,
	))
}

// emitCampaignCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func emitCampaignCreatedEvent(uid uint64, project string) {
	sdk.Log(fmt.Sprintf(
		"cc|uid:%d|proj:%s",
		uid,
		project,
	))
}

// emitPhaseChangedEvent is the single log line for any lifecycle flip.
func emitPhaseChangedEvent(uid uint64, phase Phase) {
	sdk.Log(fmt.Sprintf(
		"cp|uid:%d|p:%s",
		uid,
		phase.String(),
	))
}

// emitDepositEvent includes the credential so indexers can link refunds back.
func emitDepositEvent(uid uint64, by string, amount int64, role PositionRole, credential string) {
	sdk.Log(fmt.Sprintf(
		"dp|uid:%d|by:%s|am:%d|role:%s|cred:%s",
		uid,
		by,
		amount,
		role.String(),
		credential,
	))
}

// emitRefundEvent mirrors the deposit line so flows can be replayed from logs only.
func emitRefundEvent(uid uint64, to string, amount int64, credential string) {
	sdk.Log(fmt.Sprintf(
		"rf|uid:%d|to:%s|am:%d|cred:%s",
		uid,
		to,
		amount,
		credential,
	))
}

// emitPoolInitializedEvent leaves a trace of the bridge call and its amounts.
func emitPoolInitializedEvent(uid uint64, pool string, launchedAmount int64, raisedAmount int64) {
	sdk.Log(fmt.Sprintf(
		"lp|uid:%d|pool:%s|la:%d|ra:%d",
		uid,
		pool,
		launchedAmount,
		raisedAmount,
	))
}
