package main

import "crowdfund_vault/sdk"

// AmountScale is the fixed-point factor between human floats and Amount.
const AmountScale = 1000

// Circuit breaker defaults, applied when a campaign is created and
// changeable per campaign by its owner afterwards.
const (
	DefaultMaxSingleTx Amount = 1_000_000
	DefaultMaxHourly   Amount = 5_000_000
	DefaultMaxDaily    Amount = 20_000_000
)

// Rolling window lengths for the breaker and the harvest cadence.
const (
	HourWindowSecs       int64 = 60 * 60
	DayWindowSecs        int64 = 24 * 60 * 60
	SettlementPeriodSecs int64 = 24 * 60 * 60
)

// Yield split in whole percent. Leftover rounding dust stays in the venue
// and rolls into the next harvest delta.
const (
	BeneficiarySharePct Amount = 79
	StakerSharePct      Amount = 19
	PlatformSharePct    Amount = 2
)

// Input size guards, same ballpark the chain indexer tolerates.
const (
	MaxTitleLength    = 200
	MaxMetadataLength = 2000
)

// ValidAssets are the deposit tickers accepted without a converter hop.
var ValidAssets = []sdk.Asset{sdk.AssetHive, sdk.AssetHbd}
