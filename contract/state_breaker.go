package main

import "crowdfund_vault/sdk"

func saveBreakerState(campaignID uint64, b *BreakerState) {
	sdk.StateSetObject(breakerKey(campaignID), encodeBreakerState(b))
}

func loadBreakerState(campaignID uint64) *BreakerState {
	raw := sdk.StateGetObject(breakerKey(campaignID))
	if raw == nil {
		return nil
	}
	b, err := decodeBreakerState(*raw)
	if err != nil {
		sdk.Abort("corrupt breaker record")
	}
	return b
}

func mustLoadBreakerState(campaignID uint64) *BreakerState {
	b := loadBreakerState(campaignID)
	if b == nil {
		sdk.Abort("breaker record missing")
	}
	return b
}
