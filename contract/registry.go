package main

// -----------------------------------------------------------------------------
// Authority management
// -----------------------------------------------------------------------------

// NominateAdmin stages an admin handover. The nominee gains nothing until
// they accept, so a typo here is recoverable by nominating again.
// Payload: "newAdminAddress"
//
//go:wasmexport nominate_admin
func NominateAdmin(payload *string) *string {
	reg := requireAdmin()
	nominee := decodeAddressArg(payload, "new admin authority")

	reg.PendingAdminAuthority = &nominee
	saveRegistry(reg)

	emitAdminNominatedEvent(nominee.String(), getSenderAddress().String())
	return strptr("admin nominated")
}

// AcceptAdmin completes the handover. Only the pending nominee may call it;
// the pending slot is cleared so the handover is exactly-once.
// Payload: ignored
//
//go:wasmexport accept_admin
func AcceptAdmin(_ *string) *string {
	reg := mustLoadRegistry()
	if reg.PendingAdminAuthority == nil {
		failUnauthorized("no admin handover pending")
	}
	sender := getSenderAddress()
	if sender != *reg.PendingAdminAuthority {
		failUnauthorized("sender is not the pending admin")
	}

	reg.AdminAuthority = sender
	reg.PendingAdminAuthority = nil
	saveRegistry(reg)

	emitAdminAcceptedEvent(sender.String())
	return strptr("admin accepted")
}

// SetWhitelistAuthority rotates the co-signer every user deposit requires.
// Payload: "newWhitelistAddress"
//
//go:wasmexport set_whitelist_authority
func SetWhitelistAuthority(payload *string) *string {
	reg := requireAdmin()
	authority := decodeAddressArg(payload, "whitelist authority")

	reg.WhitelistAuthority = authority
	saveRegistry(reg)

	emitWhitelistAuthorityEvent(authority.String(), getSenderAddress().String())
	return strptr("whitelist authority updated")
}

// requireWhitelistCosign reverts unless the configured whitelist authority
// co-signed the current transaction.
func requireWhitelistCosign(reg *Registry) {
	if !hasRequiredAuth(reg.WhitelistAuthority) {
		failUnauthorized("whitelist authority signature missing")
	}
}
