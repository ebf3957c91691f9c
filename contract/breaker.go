package main

func newBreakerState(now int64) *BreakerState {
	return &BreakerState{
		MaxSingleTx: DefaultMaxSingleTx,
		MaxHourly:   DefaultMaxHourly,
		MaxDaily:    DefaultMaxDaily,
		HourStart:   now,
		DayStart:    now,
	}
}

// rollWindows lazily resets expired volume windows at call time.
func (b *BreakerState) rollWindows(now int64) {
	if now-b.HourStart >= HourWindowSecs {
		b.HourStart = now
		b.HourUsed = 0
	}
	if now-b.DayStart >= DayWindowSecs {
		b.DayStart = now
		b.DayUsed = 0
	}
}

// breakerAdmit checks a deposit against all three caps and commits the
// outcome in one step. A non-empty reason means the deposit is blocked and
// the Triggered flag is already persisted; the caller must NOT revert or the
// trip would roll back with it.
func breakerAdmit(campaignID uint64, amount Amount, now int64) string {
	b := mustLoadBreakerState(campaignID)
	b.rollWindows(now)
	if b.Triggered {
		saveBreakerState(campaignID, b)
		return "breaker already triggered"
	}
	reason := ""
	switch {
	case amount > b.MaxSingleTx:
		reason = "single transaction cap exceeded"
	case b.HourUsed+amount > b.MaxHourly:
		reason = "hourly volume cap exceeded"
	case b.DayUsed+amount > b.MaxDaily:
		reason = "daily volume cap exceeded"
	}
	if reason != "" {
		b.Triggered = true
		saveBreakerState(campaignID, b)
		emitBreakerTripped(campaignID, reason)
		return reason
	}
	b.HourUsed += amount
	b.DayUsed += amount
	saveBreakerState(campaignID, b)
	return ""
}

// BreakerStatus returns the full breaker snapshot for a campaign. The
// window roll happens on the in-memory copy only, reads never write.
//
//go:wasmexport breaker_status
func BreakerStatus(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "campaign id")
	if loadCampaignMeta(id) == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	b := mustLoadBreakerState(id)
	b.rollWindows(nowUnix())
	return strptr(breakerJSON(b))
}

// BreakerTriggered answers just the tripped flag. The flag sticks across
// window rolls until the owner resets it.
//
//go:wasmexport breaker_triggered
func BreakerTriggered(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "campaign id")
	if loadCampaignMeta(id) == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	b := mustLoadBreakerState(id)
	if b.Triggered {
		return strptr("true")
	}
	return strptr("false")
}

// BreakerReset clears the trip and zeroes both windows. Campaign owner only.
//
//go:wasmexport breaker_reset
func BreakerReset(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta := loadCampaignMeta(id)
	if meta == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	now := nowUnix()
	b := mustLoadBreakerState(id)
	b.Triggered = false
	b.HourUsed = 0
	b.DayUsed = 0
	b.HourStart = now
	b.DayStart = now
	saveBreakerState(id, b)
	emitBreakerReset(id, sender)
	return strptr("breaker reset")
}

// BreakerUpdateLimits sets new caps. Campaign owner only, all caps must be
// positive, usage counters carry over unchanged.
//
//go:wasmexport breaker_update_limits
func BreakerUpdateLimits(payload *string) *string {
	fields := splitFields(unwrapPayload(payload), 4)
	id := parseUintField(fields[0], "campaign id")
	single := parseAmountField(fields[1], "single tx cap")
	hourly := parseAmountField(fields[2], "hourly cap")
	daily := parseAmountField(fields[3], "daily cap")
	if single <= 0 || hourly <= 0 || daily <= 0 {
		fail(errInvalidAmount, "caps must be positive")
	}
	meta := loadCampaignMeta(id)
	if meta == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	b := mustLoadBreakerState(id)
	b.rollWindows(nowUnix())
	b.MaxSingleTx = single
	b.MaxHourly = hourly
	b.MaxDaily = daily
	saveBreakerState(id, b)
	emitBreakerLimits(id, single, hourly, daily)
	return strptr("limits updated")
}
