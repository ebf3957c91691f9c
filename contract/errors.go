package main

import "crowdfund_vault/sdk"

// Revert symbols thrown back to callers. Keep them short and stable, the
// frontend matches on them.
const (
	errInvalidPayload      = "invalid_payload"
	errInvalidAmount       = "invalid_amount"
	errInvalidAsset        = "invalid_asset"
	errInvalidCampaign     = "invalid_campaign"
	errNotFound            = "not_found"
	errCampaignEnded       = "campaign_ended"
	errPaused              = "paused"
	errRateLimited         = "rate_limited"
	errUnauthorized        = "unauthorized"
	errRefundsEnabled      = "refunds_enabled"
	errRefundsDisabled     = "refunds_disabled"
	errInsufficientBalance = "insufficient_balance"
	errTooEarly            = "too_early"
	errIntentLimit         = "intent_limit"
	errAlreadyVoted        = "already_voted"
	errNoVotingPower       = "no_voting_power"
	errAlreadyExecuted     = "already_executed"
	errThresholdNotMet     = "threshold_not_met"
	errNoStakingPool       = "no_staking_pool"
	errReentrancy          = "reentrancy"
)

// fail reverts the whole transaction with a symbol plus human message.
func fail(symbol string, msg string) {
	sdk.Revert(msg, symbol)
}
