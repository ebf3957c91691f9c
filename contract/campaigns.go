package main

import "crowdfund_vault/sdk"

// CampaignCreate opens a new campaign with fixed goal, deadline and
// beneficiary. Breaker and staking pool records are initialized alongside so
// every later path can assume they exist.
//
//go:wasmexport campaign_create
func CampaignCreate(payload *string) *string {
	mustLoadContractConfig()
	args := decodeCampaignCreateArgs(unwrapPayload(payload))
	sender := getSenderAddress()
	now := nowUnix()

	if args.Title == "" || len(args.Title) > MaxTitleLength {
		fail(errInvalidPayload, "title length out of range")
	}
	if len(args.Metadata) > MaxMetadataLength {
		fail(errInvalidPayload, "metadata too long")
	}
	beneficiary := sdk.Address(args.Beneficiary)
	if !beneficiary.IsValid() {
		fail(errInvalidPayload, "invalid beneficiary address")
	}
	asset := sdk.AssetHbd
	if args.Asset != "" {
		asset = sdk.Asset(args.Asset)
		if !isValidAsset(asset) {
			fail(errInvalidAsset, "unsupported campaign asset")
		}
	}
	if args.Goal <= 0 {
		fail(errInvalidAmount, "goal must be positive")
	}
	if args.Deadline <= now {
		fail(errInvalidPayload, "deadline must be in the future")
	}

	id := nextID(kCampaignCount)
	saveCampaignMeta(&CampaignMeta{
		ID:          id,
		Owner:       sender,
		Beneficiary: beneficiary,
		Title:       args.Title,
		Metadata:    args.Metadata,
		Asset:       asset,
		Goal:        Amount(args.Goal),
		Deadline:    args.Deadline,
		CreatedAt:   now,
		Tx:          currentTxID(),
	})
	saveCampaignFinance(id, &CampaignFinance{})
	saveBreakerState(id, newBreakerState(now))
	saveStakingPool(id, &StakingPool{LastHarvest: now})
	emitCampaignCreated(id, sender)
	return strptr(uintToString(id))
}

// Donate credits a contribution onto the campaign ledger. A breaker block
// does not revert: the trip must persist, so it comes back as an error
// response instead.
//
//go:wasmexport donate
func Donate(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "campaign id")
	amount := parseAmountField(fields[1], "amount")
	if amount <= 0 {
		fail(errInvalidAmount, "amount must be positive")
	}
	meta, fin := mustLoadCampaign(id)
	now := nowUnix()
	if now >= meta.Deadline {
		fail(errCampaignEnded, "campaign deadline passed")
	}
	if fin.Paused {
		fail(errPaused, "campaign is paused")
	}
	if fin.RefundsEnabled {
		fail(errRefundsEnabled, "campaign is in refund mode")
	}

	dep := resolveDeposit(amount, meta.Asset)
	if reason := breakerAdmit(id, dep.Credit, now); reason != "" {
		return strptr(errResponse(errRateLimited, reason))
	}

	donor := getSenderAddress()
	rec := loadDonorRecord(id, donor)
	if rec == nil {
		rec = &DonorRecord{}
		fin.DonorCount++
		indexAppend(donorIndexBase(id), donor)
	}
	rec.VotingPower += dep.Credit
	rec.Refundable += dep.Credit
	fin.Balance += dep.Credit
	fin.TotalDonations += dep.Credit
	fin.DonationCount++
	saveDonorRecord(id, donor, rec)
	saveCampaignFinance(id, fin)

	collectDeposit(dep, meta.Asset)
	emitDonationCredited(id, donor, dep.Credit, dep.DrawAsset)
	return strptr(okResponse("donation credited"))
}

// CampaignWithdraw pays the whole held balance out to the beneficiary. Only
// the owner may call it, and only once the deadline passed or the goal is
// reached.
//
//go:wasmexport campaign_withdraw
func CampaignWithdraw(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, fin := mustLoadCampaign(id)
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	if fin.RefundsEnabled {
		fail(errRefundsEnabled, "refund mode blocks withdrawal")
	}
	now := nowUnix()
	if now < meta.Deadline && !fin.GoalReached(meta.Goal) {
		fail(errTooEarly, "campaign still running and goal not reached")
	}
	if fin.Balance <= 0 {
		fail(errInsufficientBalance, "nothing to withdraw")
	}

	amount := fin.Balance
	fin.Balance = 0
	fin.Withdrawn = true
	saveCampaignFinance(id, fin)

	sdk.HiveTransfer(meta.Beneficiary, AmountToInt64(amount), meta.Asset)
	emitWithdrawal(id, amount)
	return strptr("withdrawn|" + amountToString(amount))
}

// CampaignRefundsEnable flips the campaign into refund mode. One-way: once
// donors can claim back, the beneficiary payout stays blocked for good.
//
//go:wasmexport campaign_refunds_enable
func CampaignRefundsEnable(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, fin := mustLoadCampaign(id)
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	if fin.Withdrawn {
		fail(errCampaignEnded, "funds already withdrawn")
	}
	if fin.RefundsEnabled {
		return strptr("refunds already enabled")
	}
	fin.RefundsEnabled = true
	saveCampaignFinance(id, fin)
	emitRefundsEnabled(id)
	return strptr("refunds enabled")
}

// RefundClaim pays a donor back their outstanding contribution. Voting
// power earned from the donation stays untouched.
//
//go:wasmexport refund_claim
func RefundClaim(payload *string) *string {
	acquireGuard()
	defer releaseGuard()

	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, fin := mustLoadCampaign(id)
	if !fin.RefundsEnabled {
		fail(errRefundsDisabled, "refunds not enabled")
	}
	donor := getSenderAddress()
	rec := loadDonorRecord(id, donor)
	if rec == nil || rec.Refundable <= 0 {
		fail(errInsufficientBalance, "nothing to refund")
	}
	amount := rec.Refundable
	if amount > fin.Balance {
		sdk.Abort("refund exceeds held balance")
	}
	rec.Refundable = 0
	fin.Balance -= amount
	saveDonorRecord(id, donor, rec)
	saveCampaignFinance(id, fin)

	sdk.HiveTransfer(donor, AmountToInt64(amount), meta.Asset)
	emitRefundClaimed(id, donor, amount)
	return strptr("refunded|" + amountToString(amount))
}

// CampaignPause toggles the deposit gate. Owner only; queries, withdrawals
// and refunds keep working while paused.
//
//go:wasmexport campaign_pause
func CampaignPause(payload *string) *string {
	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "campaign id")
	paused := parseBoolField(fields[1], "pause flag")
	meta, fin := mustLoadCampaign(id)
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	fin.Paused = paused
	saveCampaignFinance(id, fin)
	emitPauseToggled(id, paused)
	return strptr("pause updated")
}

// CampaignGet returns the full campaign snapshot as JSON.
//
//go:wasmexport campaign_get
func CampaignGet(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "campaign id")
	meta, fin := mustLoadCampaign(id)
	return strptr(campaignJSON(meta, fin))
}

// DonorGet returns one donor's record for a campaign as a pipe row
// (votingPower|refundable), cheap enough for indexers to poll.
//
//go:wasmexport donor_get
func DonorGet(payload *string) *string {
	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "campaign id")
	addr := sdk.Address(fields[1])
	if loadCampaignMeta(id) == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	rec := loadDonorRecord(id, addr)
	if rec == nil {
		fail(errNotFound, "no donor record")
	}
	return strptr(amountToString(rec.VotingPower) + "|" + amountToString(rec.Refundable))
}
