package main

import "launchpad/sdk"

// -----------------------------------------------------------------------------
// Phases
// -----------------------------------------------------------------------------

// Phase is the campaign lifecycle stage. Transitions only ever move forward:
// FundCollection -> Refund or FundCollection -> Vesting, never back.
type Phase uint8

const (
	PhaseFundCollection Phase = iota
	PhaseRefund
	PhaseVesting
)

// String renders the phase for event lines and JSON views.
func (p Phase) String() string {
	switch p {
	case PhaseFundCollection:
		return "fund_collection"
	case PhaseRefund:
		return "refund"
	case PhaseVesting:
		return "vesting"
	default:
		return "unknown"
	}
}

// PositionRole tells user deposits and the project's token deposit apart.
type PositionRole uint8

const (
	RoleUser PositionRole = iota
	RoleProject
)

// String renders the role for event lines.
func (r PositionRole) String() string {
	if r == RoleProject {
		return "project"
	}
	return "user"
}

// -----------------------------------------------------------------------------
// Records
// -----------------------------------------------------------------------------

// Registry is the singleton authority record, written once by contract_init
// and loaded explicitly by every privileged entrypoint.
//
//tinyjson:json
type Registry struct {
	AdminAuthority        sdk.Address  `json:"admin_authority"`
	PendingAdminAuthority *sdk.Address `json:"pending_admin_authority"`
	WhitelistAuthority    sdk.Address  `json:"whitelist_authority"`
}

// CampaignTerms is the immutable half of a campaign, fixed at creation.
// Amounts are raw integer token units.
//
//tinyjson:json
type CampaignTerms struct {
	UID                         uint64      `json:"uid"`
	Project                     sdk.Address `json:"project"`
	LaunchedAsset               sdk.Asset   `json:"launched_asset"`
	LaunchedTokenCap            int64       `json:"launched_token_cap"`
	LaunchedTokenLPDistribution int64       `json:"launched_token_lp_distribution"`
	RaisedAsset                 sdk.Asset   `json:"raised_asset"`
	RaisedTokenMinCap           int64       `json:"raised_token_min_cap"`
	RaisedTokenMaxCap           int64       `json:"raised_token_max_cap"`
	FundCollectionStartTime     int64       `json:"fund_collection_start_time"`
	FundCollectionEndTime       int64       `json:"fund_collection_end_time"`
	CliffDuration               int64       `json:"cliff_duration"`
	VestingDuration             int64       `json:"vesting_duration"`
}

// Campaign is the mutable campaign state. RaisedTokenCap stays zero during
// fund collection and freezes to the observed vault balance on the move to
// vesting. VestingStartTime holds the sentinel until that same moment.
//
//tinyjson:json
type Campaign struct {
	Terms            CampaignTerms `json:"terms"`
	Phase            Phase         `json:"phase"`
	RaisedTokenCap   int64         `json:"raised_token_cap"`
	VestingStartTime int64         `json:"vesting_start_time"`
	PositionSeq      uint64        `json:"position_seq"`
}

// Position records one accepted deposit. Ownership is not stored here; it is
// proven at refund time by holding the single-supply claim credential.
//
//tinyjson:json
type Position struct {
	Credential  sdk.Address  `json:"credential"`
	CampaignUID uint64       `json:"campaign_uid"`
	Amount      int64        `json:"amount"`
	Role        PositionRole `json:"role"`
	CreatedAt   int64        `json:"created_at"`
}

// -----------------------------------------------------------------------------
// Decoded payloads
// -----------------------------------------------------------------------------

// CreateCampaignArgs carries the parsed create_campaign payload.
type CreateCampaignArgs struct {
	Terms CampaignTerms
}

// DepositArgs carries the parsed user_deposit / project_deposit payload.
type DepositArgs struct {
	CampaignUID uint64
	Amount      int64
}

// MoveToVestingArgs carries the parsed move_to_vesting payload.
type MoveToVestingArgs struct {
	CampaignUID  uint64
	PoolContract string
}
