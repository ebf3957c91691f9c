package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund_vault/sdk"
)

func TestStakeSuppliesVenue(t *testing.T) {
	setupContract(t)
	venue := installVenue(t)
	id := createCampaign(t, 100_000, unixAt(30*24*time.Hour))

	ret := stakeAt(t, id, stakerAddr, 10_000, time.Minute)
	assert.Contains(t, ret, `"ok":true`)
	assert.EqualValues(t, 10_000, venue.balances["hbd"])

	pool := PoolGet(strptr(fmt.Sprintf("%d", id)))
	assert.Contains(t, *pool, `"totalPrincipal":10000`)
	assert.Contains(t, *pool, `"receiptSupply":10000`)
	assert.Contains(t, *pool, `"venueBalance":10000`)

	pos := PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	assert.Equal(t, "10000|10000|0", *pos)
}

func TestStakeGuards(t *testing.T) {
	setupContract(t)
	installVenue(t)
	id := createCampaign(t, 100_000, unixAt(30*24*time.Hour))

	fund(stakerAddr, sdk.AssetHbd, 100)
	beginTx(t, tsAt(time.Minute), stakerAddr, allowIntent("0.100", sdk.AssetHbd))
	expectRevert(t, errInvalidAmount, func() {
		Stake(strptr(fmt.Sprintf("%d|0", id)))
	})

	beginTx(t, tsAt(time.Minute), stakerAddr, allowIntent("0.100", sdk.AssetHbd))
	expectRevert(t, errInvalidCampaign, func() {
		Stake(strptr("42|100"))
	})

	beginTx(t, tsAt(2*time.Minute), ownerAddr, nil)
	CampaignPause(strptr(fmt.Sprintf("%d|true", id)))
	beginTx(t, tsAt(3*time.Minute), stakerAddr, allowIntent("0.100", sdk.AssetHbd))
	expectRevert(t, errPaused, func() {
		Stake(strptr(fmt.Sprintf("%d|100", id)))
	})
}

func TestStakeWithoutVenue(t *testing.T) {
	setupContractWithVenue(t, "")
	id := createCampaign(t, 100_000, unixAt(30*24*time.Hour))

	fund(stakerAddr, sdk.AssetHbd, 100)
	beginTx(t, tsAt(time.Minute), stakerAddr, allowIntent("0.100", sdk.AssetHbd))
	expectRevert(t, errNoStakingPool, func() {
		Stake(strptr(fmt.Sprintf("%d|100", id)))
	})
}

func TestStakeRunsThroughBreaker(t *testing.T) {
	setupContract(t)
	installVenue(t)
	id := createCampaign(t, 100_000, unixAt(30*24*time.Hour))

	ret := stakeAt(t, id, stakerAddr, 1_000_001, time.Minute)
	assert.Contains(t, ret, "rate_limited")

	flag := BreakerTriggered(strptr(fmt.Sprintf("%d", id)))
	assert.Equal(t, "true", *flag)
}

func TestHarvestSplitsYield(t *testing.T) {
	setupContract(t)
	venue := installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	stakeAt(t, id, stakerAddr, 10_000, time.Minute)
	venue.accrue(sdk.AssetHbd, 1_000)

	beginTx(t, tsAt(25*time.Hour), donorAddr, nil)
	ret := PoolHarvest(strptr(fmt.Sprintf("%d", id)))
	assert.Contains(t, *ret, "harvested|1000")

	assert.EqualValues(t, 790, transferTo(benefAddr))
	assert.EqualValues(t, 20, transferTo(treasuryAddr))

	pos := PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	assert.Equal(t, "10000|10000|190", *pos)

	// principal stays in the venue, the yield delta left it
	assert.EqualValues(t, 10_000, venue.balances["hbd"])

	beginTx(t, tsAt(26*time.Hour), stakerAddr, nil)
	claimed := RewardsClaim(strptr(fmt.Sprintf("%d", id)))
	assert.Equal(t, "claimed|190", *claimed)
	assert.EqualValues(t, 190, transferTo(stakerAddr))
}

func TestHarvestBeforeWindowIsNoop(t *testing.T) {
	setupContract(t)
	venue := installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	stakeAt(t, id, stakerAddr, 10_000, time.Minute)
	venue.accrue(sdk.AssetHbd, 1_000)

	beginTx(t, tsAt(12*time.Hour), donorAddr, nil)
	ret := PoolHarvest(strptr(fmt.Sprintf("%d", id)))
	assert.Contains(t, *ret, "settlement window not elapsed")
	assert.Empty(t, sdk.MockTransfers())
	assert.EqualValues(t, 11_000, venue.balances["hbd"])
}

func TestHarvestProRata(t *testing.T) {
	setupContract(t)
	venue := installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	stakeAt(t, id, stakerAddr, 7_500, time.Minute)
	stakeAt(t, id, staker2Addr, 2_500, 2*time.Minute)
	venue.accrue(sdk.AssetHbd, 1_000)

	beginTx(t, tsAt(25*time.Hour), donorAddr, nil)
	PoolHarvest(strptr(fmt.Sprintf("%d", id)))

	// 190 staker cut splits 142/47, the rounding dust stays in the venue
	pos1 := PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	assert.Equal(t, "7500|7500|142", *pos1)
	pos2 := PositionGet(strptr(fmt.Sprintf("%d|%s", id, staker2Addr)))
	assert.Equal(t, "2500|2500|47", *pos2)
	assert.EqualValues(t, 10_001, venue.balances["hbd"])
}

func TestHarvestWithoutYield(t *testing.T) {
	setupContract(t)
	installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	stakeAt(t, id, stakerAddr, 10_000, time.Minute)

	beginTx(t, tsAt(25*time.Hour), donorAddr, nil)
	ret := PoolHarvest(strptr(fmt.Sprintf("%d", id)))
	assert.Contains(t, *ret, "harvested|0")
	assert.Empty(t, sdk.MockTransfers())
}

func TestUnstakeSettlesPendingYield(t *testing.T) {
	setupContract(t)
	venue := installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	stakeAt(t, id, stakerAddr, 10_000, time.Minute)
	venue.accrue(sdk.AssetHbd, 1_000)

	// unstaking inside the settlement window still settles first
	beginTx(t, tsAt(time.Hour), stakerAddr, nil)
	ret := Unstake(strptr(fmt.Sprintf("%d|10000", id)))
	assert.Equal(t, "unstaked|10000", *ret)

	assert.EqualValues(t, 790, transferTo(benefAddr))
	assert.EqualValues(t, 20, transferTo(treasuryAddr))
	assert.EqualValues(t, 10_000, transferTo(stakerAddr))
	assert.EqualValues(t, 0, venue.balances["hbd"])

	// earned yield survives the position emptying out
	pos := PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	assert.Equal(t, "0|0|190", *pos)

	beginTx(t, tsAt(2*time.Hour), stakerAddr, nil)
	claimed := RewardsClaim(strptr(fmt.Sprintf("%d", id)))
	assert.Equal(t, "claimed|190", *claimed)

	// everything paid out, the position record is gone
	expectRevert(t, errNotFound, func() {
		PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	})
}

func TestUnstakeGuards(t *testing.T) {
	setupContract(t)
	installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	stakeAt(t, id, stakerAddr, 5_000, time.Minute)

	beginTx(t, tsAt(time.Hour), stakerAddr, nil)
	expectRevert(t, errInsufficientBalance, func() {
		Unstake(strptr(fmt.Sprintf("%d|5001", id)))
	})

	beginTx(t, tsAt(time.Hour), staker2Addr, nil)
	expectRevert(t, errInsufficientBalance, func() {
		Unstake(strptr(fmt.Sprintf("%d|100", id)))
	})

	beginTx(t, tsAt(time.Hour), stakerAddr, nil)
	expectRevert(t, errInvalidAmount, func() {
		Unstake(strptr(fmt.Sprintf("%d|0", id)))
	})
}

func TestClaimWithoutEarnings(t *testing.T) {
	setupContract(t)
	installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))
	stakeAt(t, id, stakerAddr, 5_000, time.Minute)

	beginTx(t, tsAt(time.Hour), stakerAddr, nil)
	expectRevert(t, errInsufficientBalance, func() {
		RewardsClaim(strptr(fmt.Sprintf("%d", id)))
	})
}

func TestReentrantVenueIsRejected(t *testing.T) {
	setupContract(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	// a hostile venue that re-enters the contract during supply
	sdk.MockRegisterContract(venueID, func(method, payload string) string {
		if method == "supply" {
			Donate(strptr(fmt.Sprintf("%d|100", id)))
		}
		return "0"
	})

	fund(stakerAddr, sdk.AssetHbd, 1_000)
	beginTx(t, tsAt(time.Minute), stakerAddr, allowIntent("1.000", sdk.AssetHbd))
	expectRevert(t, errReentrancy, func() {
		Stake(strptr(fmt.Sprintf("%d|1000", id)))
	})
}

func TestPartialUnstakeKeepsShare(t *testing.T) {
	setupContract(t)
	venue := installVenue(t)
	id := createCampaign(t, 100_000, unixAt(90*24*time.Hour))

	stakeAt(t, id, stakerAddr, 10_000, time.Minute)
	beginTx(t, tsAt(time.Hour), stakerAddr, nil)
	Unstake(strptr(fmt.Sprintf("%d|4000", id)))

	pos := PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	assert.Equal(t, "6000|6000|0", *pos)
	assert.EqualValues(t, 6_000, venue.balances["hbd"])

	venue.accrue(sdk.AssetHbd, 600)
	beginTx(t, tsAt(26*time.Hour), donorAddr, nil)
	PoolHarvest(strptr(fmt.Sprintf("%d", id)))

	// 19% of 600 lands fully on the only remaining staker
	pos = PositionGet(strptr(fmt.Sprintf("%d|%s", id, stakerAddr)))
	require.Equal(t, "6000|6000|114", *pos)
}
