package main

// Governance rides on donation history: voting power is the cumulative
// credited donation amount per campaign, snapshotted at vote time.

// ProposalCreate opens a proposal scoped to one campaign. Campaign owner
// only, threshold fixed at creation.
//
//go:wasmexport proposal_create
func ProposalCreate(payload *string) *string {
	args := decodeProposalCreateArgs(unwrapPayload(payload))
	meta := loadCampaignMeta(args.CampaignID)
	if meta == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	if args.Title == "" || len(args.Title) > MaxTitleLength {
		fail(errInvalidPayload, "title length out of range")
	}
	if len(args.Description) > MaxMetadataLength {
		fail(errInvalidPayload, "description too long")
	}
	if args.RequiredVotes <= 0 {
		fail(errInvalidAmount, "required votes must be positive")
	}

	id := nextID(kProposalCount)
	saveProposal(&Proposal{
		ID:            id,
		CampaignID:    args.CampaignID,
		Creator:       sender,
		Title:         args.Title,
		Description:   args.Description,
		RequiredVotes: Amount(args.RequiredVotes),
		CreatedAt:     nowUnix(),
		Tx:            currentTxID(),
	})
	emitProposalCreated(id, args.CampaignID, sender)
	return strptr(uintToString(id))
}

// ProposalVote casts one vote per donor per proposal, weighted by the
// donor's voting power at this moment. Later donations never retrofit a
// cast vote.
//
//go:wasmexport proposal_vote
func ProposalVote(payload *string) *string {
	fields := splitFields(unwrapPayload(payload), 2)
	id := parseUintField(fields[0], "proposal id")
	inFavor := parseBoolField(fields[1], "vote direction")
	prpsl := mustLoadProposal(id)
	if prpsl.Executed {
		fail(errAlreadyExecuted, "proposal already executed")
	}
	voter := getSenderAddress()
	rec := loadDonorRecord(prpsl.CampaignID, voter)
	if rec == nil || rec.VotingPower <= 0 {
		fail(errNoVotingPower, "no donations on this campaign")
	}
	if loadVoteReceipt(id, voter) != nil {
		fail(errAlreadyVoted, "vote already cast")
	}

	weight := rec.VotingPower
	saveVoteReceipt(id, voter, &VoteReceipt{
		InFavor: inFavor,
		Weight:  weight,
		VotedAt: nowUnix(),
	})
	if inFavor {
		prpsl.Upvotes += weight
	} else {
		prpsl.Downvotes += weight
	}
	saveProposal(prpsl)
	emitVoteCast(id, voter, inFavor, weight)
	return strptr("vote cast")
}

// ProposalExecute marks a passed proposal as executed. Campaign owner only,
// terminal, needs upvotes at or above the threshold.
//
//go:wasmexport proposal_execute
func ProposalExecute(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "proposal id")
	prpsl := mustLoadProposal(id)
	meta := loadCampaignMeta(prpsl.CampaignID)
	if meta == nil {
		fail(errInvalidCampaign, "campaign record missing")
	}
	sender := getSenderAddress()
	if sender != meta.Owner {
		fail(errUnauthorized, "campaign owner only")
	}
	if prpsl.Executed {
		fail(errAlreadyExecuted, "proposal already executed")
	}
	if prpsl.Upvotes < prpsl.RequiredVotes {
		fail(errThresholdNotMet, "upvotes below required threshold")
	}
	prpsl.Executed = true
	saveProposal(prpsl)
	emitProposalExecuted(id)
	return strptr("executed")
}

// ProposalGet returns the proposal snapshot as JSON.
//
//go:wasmexport proposal_get
func ProposalGet(payload *string) *string {
	id := parseUintField(unwrapPayload(payload), "proposal id")
	return strptr(proposalJSON(mustLoadProposal(id)))
}
