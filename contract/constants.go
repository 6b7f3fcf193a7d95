package main

import "math"

// Storage key prefixes. Single bytes keep keys compact in host kv storage.
const (
	kCampaign byte = 0x01
	kPosition byte = 0x02
)

// registryKey is the fixed key of the singleton authority record.
const registryKey = "registry"

// VestingStartSentinel marks a campaign that has not reached vesting yet.
const VestingStartSentinel = int64(math.MaxInt64)

// Method name the liquidity pool contract must export for the bridge call.
const PoolInitializeMethod = "initialize_pool"
