package main

import "launchpad/sdk"

// Error symbols surfaced through sdk.Revert. Callers and indexers match on
// these instead of parsing message text. Malformed payloads and missing
// intents go through sdk.Abort instead.
const (
	ErrAuthorization           = "authorization_error"
	ErrInvalidPhaseChange      = "invalid_phase_change"
	ErrCapExceeded             = "cap_exceeded"
	ErrInvalidAmount           = "invalid_amount"
	ErrInvalidMint             = "invalid_mint"
	ErrFundCollectionNotBegun  = "fund_collection_not_started"
	ErrFundCollectionCompleted = "fund_collection_completed"
	ErrDoesNotHoldPosition     = "does_not_hold_position"
	ErrAlreadyProcessed        = "already_processed"
)

// failUnauthorized reverts with the shared authorization symbol.
func failUnauthorized(msg string) {
	sdk.Revert(msg, ErrAuthorization)
}

// failPhase reverts any transition or operation attempted in the wrong phase.
func failPhase(msg string) {
	sdk.Revert(msg, ErrInvalidPhaseChange)
}
