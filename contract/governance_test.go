package main

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProposal(t *testing.T, campaignID uint64, required int64) uint64 {
	t.Helper()
	beginTx(t, tsAt(10*time.Minute), ownerAddr, nil)
	ret := ProposalCreate(strptr(fmt.Sprintf(
		`{"campaignId":%d,"title":"Extend milestone two","description":"shift funds to drilling","requiredVotes":%d}`,
		campaignID, required)))
	require.NotNil(t, ret)
	id, err := strconv.ParseUint(*ret, 10, 64)
	require.NoError(t, err)
	return id
}

func TestProposalLifecycle(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	donateAt(t, id, donorAddr, 600, time.Minute)
	donateAt(t, id, donor2Addr, 300, 2*time.Minute)

	pid := createProposal(t, id, 500)

	beginTx(t, tsAt(11*time.Minute), donorAddr, nil)
	ret := ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))
	assert.Equal(t, "vote cast", *ret)

	beginTx(t, tsAt(12*time.Minute), donor2Addr, nil)
	ProposalVote(strptr(fmt.Sprintf("%d|false", pid)))

	snap := ProposalGet(strptr(fmt.Sprintf("%d", pid)))
	assert.Contains(t, *snap, `"upvotes":600`)
	assert.Contains(t, *snap, `"downvotes":300`)
	assert.Contains(t, *snap, `"executed":false`)

	beginTx(t, tsAt(13*time.Minute), ownerAddr, nil)
	exec := ProposalExecute(strptr(fmt.Sprintf("%d", pid)))
	assert.Equal(t, "executed", *exec)

	snap = ProposalGet(strptr(fmt.Sprintf("%d", pid)))
	assert.Contains(t, *snap, `"executed":true`)
}

func TestProposalCreateGuards(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	beginTx(t, tsAt(time.Minute), donorAddr, nil)
	expectRevert(t, errUnauthorized, func() {
		ProposalCreate(strptr(fmt.Sprintf(
			`{"campaignId":%d,"title":"x","requiredVotes":10}`, id)))
	})

	beginTx(t, tsAt(time.Minute), ownerAddr, nil)
	expectRevert(t, errInvalidCampaign, func() {
		ProposalCreate(strptr(`{"campaignId":55,"title":"x","requiredVotes":10}`))
	})

	beginTx(t, tsAt(time.Minute), ownerAddr, nil)
	expectRevert(t, errInvalidAmount, func() {
		ProposalCreate(strptr(fmt.Sprintf(
			`{"campaignId":%d,"title":"x","requiredVotes":0}`, id)))
	})
}

func TestVoteWeightSnapshots(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	donateAt(t, id, donorAddr, 300, time.Minute)

	pid := createProposal(t, id, 1_000)
	beginTx(t, tsAt(11*time.Minute), donorAddr, nil)
	ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))

	// a later donation raises voting power but not the cast vote
	donateAt(t, id, donorAddr, 700, 12*time.Minute)

	snap := ProposalGet(strptr(fmt.Sprintf("%d", pid)))
	assert.Contains(t, *snap, `"upvotes":300`)
}

func TestVoteGuards(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	donateAt(t, id, donorAddr, 600, time.Minute)
	pid := createProposal(t, id, 500)

	// stakers and strangers hold no voting power
	beginTx(t, tsAt(11*time.Minute), stakerAddr, nil)
	expectRevert(t, errNoVotingPower, func() {
		ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))
	})

	beginTx(t, tsAt(12*time.Minute), donorAddr, nil)
	ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))
	beginTx(t, tsAt(13*time.Minute), donorAddr, nil)
	expectRevert(t, errAlreadyVoted, func() {
		ProposalVote(strptr(fmt.Sprintf("%d|false", pid)))
	})

	expectRevert(t, errNotFound, func() {
		ProposalVote(strptr("99|true"))
	})
}

func TestExecuteGuards(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	donateAt(t, id, donorAddr, 400, time.Minute)
	pid := createProposal(t, id, 500)

	beginTx(t, tsAt(11*time.Minute), donorAddr, nil)
	ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))

	// 400 upvotes against a 500 threshold
	beginTx(t, tsAt(12*time.Minute), ownerAddr, nil)
	expectRevert(t, errThresholdNotMet, func() {
		ProposalExecute(strptr(fmt.Sprintf("%d", pid)))
	})

	donateAt(t, id, donor2Addr, 600, 13*time.Minute)
	beginTx(t, tsAt(14*time.Minute), donor2Addr, nil)
	ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))

	beginTx(t, tsAt(15*time.Minute), donor2Addr, nil)
	expectRevert(t, errUnauthorized, func() {
		ProposalExecute(strptr(fmt.Sprintf("%d", pid)))
	})

	beginTx(t, tsAt(16*time.Minute), ownerAddr, nil)
	ProposalExecute(strptr(fmt.Sprintf("%d", pid)))

	beginTx(t, tsAt(17*time.Minute), ownerAddr, nil)
	expectRevert(t, errAlreadyExecuted, func() {
		ProposalExecute(strptr(fmt.Sprintf("%d", pid)))
	})

	// executed proposals accept no further votes
	beginTx(t, tsAt(18*time.Minute), donorAddr, nil)
	expectRevert(t, errAlreadyExecuted, func() {
		ProposalVote(strptr(fmt.Sprintf("%d|false", pid)))
	})
}

func TestRefundKeepsVotingPower(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	donateAt(t, id, donorAddr, 600, time.Minute)

	beginTx(t, tsAt(2*time.Minute), ownerAddr, nil)
	CampaignRefundsEnable(strptr(fmt.Sprintf("%d", id)))
	beginTx(t, tsAt(3*time.Minute), donorAddr, nil)
	RefundClaim(strptr(fmt.Sprintf("%d", id)))

	pid := createProposal(t, id, 500)
	beginTx(t, tsAt(11*time.Minute), donorAddr, nil)
	ProposalVote(strptr(fmt.Sprintf("%d|true", pid)))

	snap := ProposalGet(strptr(fmt.Sprintf("%d", pid)))
	require.Contains(t, *snap, `"upvotes":600`)
}
