package main

import (
	"math"

	"crowdfund_vault/sdk"
)

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// CampaignMeta stores the immutable identity of a fundraising campaign.
// Goal, deadline and beneficiary are fixed at creation time.
type CampaignMeta struct {
	ID          uint64
	Owner       sdk.Address
	Beneficiary sdk.Address
	Title       string
	Metadata    string
	Asset       sdk.Asset
	Goal        Amount
	Deadline    int64
	CreatedAt   int64
	Tx          string
}

// CampaignFinance keeps the mutating balances separate from the meta blob so
// donation-path writes touch fewer bytes.
type CampaignFinance struct {
	// Balance is the held treasury, zeroed by withdrawal or drained by refunds.
	Balance Amount
	// TotalDonations only ever increases; goalReached derives from it.
	TotalDonations Amount
	DonationCount  uint64
	DonorCount     uint64
	RefundsEnabled bool
	Paused         bool
	Withdrawn      bool
}

// GoalReached derives goal status; it is never stored.
func (f *CampaignFinance) GoalReached(goal Amount) bool {
	return f.TotalDonations >= goal
}

// DonorRecord tracks one donor inside one campaign.
type DonorRecord struct {
	// VotingPower is the cumulative credited donation amount, monotonic.
	VotingPower Amount
	// Refundable is the outstanding contribution a refund claim pays back.
	Refundable Amount
}

// BreakerState is the per-campaign circuit breaker: a single-transaction cap
// plus sliding hourly/daily volume windows that roll lazily at call time.
type BreakerState struct {
	MaxSingleTx Amount
	MaxHourly   Amount
	MaxDaily    Amount
	HourUsed    Amount
	DayUsed     Amount
	HourStart   int64
	DayStart    int64
	Triggered   bool
}

// StakingPool aggregates one campaign's staking side.
type StakingPool struct {
	TotalPrincipal Amount
	ReceiptSupply  Amount
	LastHarvest    int64
}

// StakingPosition is one staker's slice of a campaign pool. Earned holds
// yield credited at harvest time, claimable later.
type StakingPosition struct {
	Principal     Amount
	Receipts      Amount
	Earned        Amount
	LastSettledAt int64
}

// Proposal is a governance item scoped to one campaign. Executed is terminal.
type Proposal struct {
	ID            uint64
	CampaignID    uint64
	Creator       sdk.Address
	Title         string
	Description   string
	RequiredVotes Amount
	Upvotes       Amount
	Downvotes     Amount
	Executed      bool
	CreatedAt     int64
	Tx            string
}

// VoteReceipt pins a voter's choice and the voting-power snapshot taken at
// vote time. Later donations do not change a cast vote's weight.
type VoteReceipt struct {
	InFavor bool
	Weight  Amount
	VotedAt int64
}

// ContractConfig is the contract-level wiring set once at init.
type ContractConfig struct {
	Owner             sdk.Address
	PlatformTreasury  sdk.Address
	VenueContract     string
	ConverterContract string
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
// Example payload: AssetToString(AssetFromString("hbd"))
func AssetToString(a sdk.Asset) string { return a.String() }
