package main

import "crowdfund_vault/sdk"

// Stake supplies principal into the campaign's yield venue and mints
// receipts 1:1. Deposits run through the same breaker as donations.
//
//go:wasmexport stake
func Stake(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "campaign id")
	amount := parseAmountField(fields[1], "amount")
	if amount <= 0 {
		fail(errInvalidAmount, "amount must be positive")
	}
	meta, fin := mustLoadCampaign(id)
	cfg := mustLoadContractConfig()
	venue := activeVenue(cfg)
	pool := loadStakingPool(id)
	if pool == nil {
		fail(errNoStakingPool, "no staking pool for campaign")
	}
	if fin.Paused {
		fail(errPaused, "campaign is paused")
	}

	now := nowUnix()
	dep := resolveDeposit(amount, meta.Asset)
	if reason := breakerAdmit(id, dep.Credit, now); reason != "" {
		return strptr(errResponse(errRateLimited, reason))
	}

	staker := getSenderAddress()
	pos := loadStakingPosition(id, staker)
	if pos == nil {
		pos = &StakingPosition{LastSettledAt: now}
		indexAppend(stakerIndexBase(id), staker)
	}
	pos.Principal += dep.Credit
	pos.Receipts += dep.Credit
	pool.TotalPrincipal += dep.Credit
	pool.ReceiptSupply += dep.Credit
	saveStakingPosition(id, staker, pos)
	saveStakingPool(id, pool)

	collectDeposit(dep, meta.Asset)
	venue.supply(meta.Asset, dep.Credit)
	emitStaked(id, staker, dep.Credit)
	return strptr(okResponse("staked"))
}

// settlePool realizes venue yield accrued since the last harvest: 79%
// straight to the beneficiary, 2% to the platform treasury, 19% credited
// pro rata onto staker positions. Rounding dust stays in the venue and
// rolls into the next delta.
func settlePool(campaignID uint64, meta *CampaignMeta, cfg *ContractConfig, pool *StakingPool, now int64) Amount {
	venue := activeVenue(cfg)
	venueBal := venue.receiptBalance(meta.Asset)
	delta := venueBal - pool.TotalPrincipal
	if delta <= 0 {
		pool.LastHarvest = now
		saveStakingPool(campaignID, pool)
		return 0
	}

	benefCut := delta * BeneficiarySharePct / 100
	platCut := delta * PlatformSharePct / 100
	stakerCut := delta * StakerSharePct / 100

	var credited Amount
	total := pool.TotalPrincipal
	if total > 0 {
		indexWalk(stakerIndexBase(campaignID), func(addr sdk.Address) {
			pos := loadStakingPosition(campaignID, addr)
			if pos == nil || pos.Principal == 0 {
				return
			}
			cut := stakerCut * pos.Principal / total
			pos.Earned += cut
			pos.LastSettledAt = now
			saveStakingPosition(campaignID, addr, pos)
			credited += cut
		})
	}
	pool.LastHarvest = now
	saveStakingPool(campaignID, pool)

	// Staker credits move onto the contract account now and leave it at
	// claim time.
	venue.withdraw(meta.Asset, benefCut+platCut+credited)
	sdk.HiveTransfer(meta.Beneficiary, AmountToInt64(benefCut), meta.Asset)
	sdk.HiveTransfer(cfg.PlatformTreasury, AmountToInt64(platCut), meta.Asset)
	emitHarvest(campaignID, delta, benefCut, credited, platCut)
	return delta
}

// Unstake settles the pool first so pending yield lands on the position,
// then returns principal. Receipts burn 1:1 with principal.
//
//go:wasmexport unstake
func Unstake(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "campaign id")
	amount := parseAmountField(fields[1], "amount")
	if amount <= 0 {
		fail(errInvalidAmount, "amount must be positive")
	}
	meta, _ := mustLoadCampaign(id)
	cfg := mustLoadContractConfig()
	venue := activeVenue(cfg)
	pool := loadStakingPool(id)
	if pool == nil {
		fail(errNoStakingPool, "no staking pool for campaign")
	}
	staker := getSenderAddress()
	pos := loadStakingPosition(id, staker)
	if pos == nil || amount > pos.Principal {
		fail(errInsufficientBalance, "unstake exceeds staked principal")
	}

	now := nowUnix()
	settlePool(id, meta, cfg, pool, now)

	// settle rewrote the position, reload before mutating
	pos = loadStakingPosition(id, staker)
	if pos == nil {
		sdk.Abort("position missing after settle")
	}
	pos.Principal -= amount
	pos.Receipts -= amount
	pool.TotalPrincipal -= amount
	pool.ReceiptSupply -= amount
	if pos.Principal == 0 && pos.Earned == 0 {
		deleteStakingPosition(id, staker)
		indexRemove(stakerIndexBase(id), staker)
	} else {
		saveStakingPosition(id, staker, pos)
	}
	saveStakingPool(id, pool)

	venue.withdraw(meta.Asset, amount)
	sdk.HiveTransfer(staker, AmountToInt64(amount), meta.Asset)
	emitUnstaked(id, staker, amount)
	return strptr("unstaked|" + amountToString(amount))
}

// PoolHarvest settles the pool once per settlement period. Anyone may call
// it; an early call is a harmless no-op.
//
//go:wasmexport pool_harvest
func PoolHarvest(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, _ := mustLoadCampaign(id)
	cfg := mustLoadContractConfig()
	pool := loadStakingPool(id)
	if pool == nil {
		fail(errNoStakingPool, "no staking pool for campaign")
	}
	now := nowUnix()
	if now-pool.LastHarvest < SettlementPeriodSecs {
		return strptr(okResponse("settlement window not elapsed"))
	}
	delta := settlePool(id, meta, cfg, pool, now)
	return strptr(okResponse("harvested|" + amountToString(delta)))
}

// RewardsClaim pays out the caller's accumulated yield credits.
//
//go:wasmexport rewards_claim
func RewardsClaim(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, _ := mustLoadCampaign(id)
	staker := getSenderAddress()
	pos := loadStakingPosition(id, staker)
	if pos == nil || pos.Earned <= 0 {
		fail(errInsufficientBalance, "nothing to claim")
	}
	amount := pos.Earned
	pos.Earned = 0
	if pos.Principal == 0 {
		deleteStakingPosition(id, staker)
		indexRemove(stakerIndexBase(id), staker)
	} else {
		saveStakingPosition(id, staker, pos)
	}

	sdk.HiveTransfer(staker, AmountToInt64(amount), meta.Asset)
	emitRewardsClaimed(id, staker, amount)
	return strptr("claimed|" + amountToString(amount))
}

// PoolGet returns the pool snapshot plus the live venue balance as JSON.
//
//go:wasmexport pool_get
func PoolGet(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, _ := mustLoadCampaign(id)
	cfg := mustLoadContractConfig()
	pool := loadStakingPool(id)
	if pool == nil {
		fail(errNoStakingPool, "no staking pool for campaign")
	}
	venueBal := Amount(0)
	if cfg.VenueContract != "" {
		venueBal = activeVenue(cfg).receiptBalance(meta.Asset)
	}
	return strptr(poolJSON(pool, venueBal))
}

// PositionGet returns one staker's position as a pipe row
// (principal|receipts|earned), nil-safe for indexers.
//
//go:wasmexport position_get
func PositionGet(payload *string) *string {
	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "campaign id")
	addr := sdk.Address(fields[1])
	if loadCampaignMeta(id) == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	pos := loadStakingPosition(id, addr)
	if pos == nil {
		fail(errNotFound, "no staking position")
	}
	return strptr(amountToString(pos.Principal) + "|" + amountToString(pos.Receipts) + "|" + amountToString(pos.Earned))
}
