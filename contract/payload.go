package main

import (
	"fmt"
	"strconv"
	"strings"

	"launchpad/sdk"
)

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseUintField is used for uids and sequence values.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("missing %s", field))
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAmountField parses raw integer token amounts. Zero and negatives pass
// through here; domain checks decide whether they are acceptable.
func parseAmountField(val string, field string) int64 {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("missing %s", field))
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAddressField validates the protocol:name shape before use.
func parseAddressField(val string, field string) sdk.Address {
	addr := sdk.Address(strings.TrimSpace(val))
	if !addr.IsValid() {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return addr
}

// parseAssetField rejects empty tickers up front.
func parseAssetField(val string, field string) sdk.Asset {
	asset := sdk.Asset(strings.TrimSpace(val))
	if !asset.IsValid() {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return asset
}

// decodeCreateCampaignArgs unpacks the create_campaign payload:
// uid|project|launchedAsset|launchedCap|lpDistribution|raisedAsset|minCap|maxCap|start|end|cliff|vesting
func decodeCreateCampaignArgs(payload *string) *CreateCampaignArgs {
	raw := unwrapPayload(payload, "campaign payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 12 {
		sdk.Abort("campaign payload requires 12 fields")
	}

	terms := CampaignTerms{
		UID:                         parseUintField(parts[0], "campaign uid"),
		Project:                     parseAddressField(parts[1], "project address"),
		LaunchedAsset:               parseAssetField(parts[2], "launched asset"),
		LaunchedTokenCap:            parseAmountField(parts[3], "launched token cap"),
		LaunchedTokenLPDistribution: parseAmountField(parts[4], "lp distribution"),
		RaisedAsset:                 parseAssetField(parts[5], "raised asset"),
		RaisedTokenMinCap:           parseAmountField(parts[6], "raised min cap"),
		RaisedTokenMaxCap:           parseAmountField(parts[7], "raised max cap"),
		FundCollectionStartTime:     parseAmountField(parts[8], "fund collection start"),
		FundCollectionEndTime:       parseAmountField(parts[9], "fund collection end"),
		CliffDuration:               parseAmountField(parts[10], "cliff duration"),
		VestingDuration:             parseAmountField(parts[11], "vesting duration"),
	}
	return &CreateCampaignArgs{Terms: terms}
}

// decodeDepositArgs expects `uid|amount` for both deposit entrypoints.
func decodeDepositArgs(payload *string) *DepositArgs {
	raw := unwrapPayload(payload, "deposit payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("deposit payload requires uid|amount")
	}
	return &DepositArgs{
		CampaignUID: parseUintField(parts[0], "campaign uid"),
		Amount:      parseAmountField(parts[1], "deposit amount"),
	}
}

// decodeUidArg reads a single campaign uid payload.
func decodeUidArg(payload *string) uint64 {
	raw := unwrapPayload(payload, "campaign uid missing")
	return parseUintField(raw, "campaign uid")
}

// decodeMoveToVestingArgs expects `uid|poolContract`.
func decodeMoveToVestingArgs(payload *string) *MoveToVestingArgs {
	raw := unwrapPayload(payload, "vesting payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("vesting payload requires uid|poolContract")
	}
	pool := strings.TrimSpace(parts[1])
	if sdk.Address(pool).Domain() != sdk.AddressDomainContract {
		sdk.Abort("pool must be a contract address")
	}
	return &MoveToVestingArgs{
		CampaignUID:  parseUintField(parts[0], "campaign uid"),
		PoolContract: pool,
	}
}

// decodeCredentialArg reads the claim credential address payload used by the
// refund and lookup entrypoints.
func decodeCredentialArg(payload *string) sdk.Address {
	raw := unwrapPayload(payload, "credential missing")
	return parseAddressField(raw, "credential address")
}

// decodeAddressArg reads a single address payload for authority changes.
func decodeAddressArg(payload *string, field string) sdk.Address {
	raw := unwrapPayload(payload, field+" missing")
	return parseAddressField(raw, field)
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }
