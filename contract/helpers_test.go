package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund_vault/sdk"
)

const (
	ownerAddr    = "hive:campaign-owner"
	benefAddr    = "hive:beneficiary"
	treasuryAddr = "hive:platform"
	donorAddr    = "hive:donor-1"
	donor2Addr   = "hive:donor-2"
	stakerAddr   = "hive:staker-1"
	staker2Addr  = "hive:staker-2"
	venueID      = "contract:venue"
)

var baseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func tsAt(offset time.Duration) string {
	return baseTime.Add(offset).Format(blockTimeLayout)
}

func unixAt(offset time.Duration) int64 {
	return baseTime.Add(offset).Unix()
}

var txSeq int

func beginTx(t *testing.T, timestamp, sender string, intents []sdk.Intent) {
	t.Helper()
	txSeq++
	sdk.MockBeginTx("tx-"+strconv.Itoa(txSeq), timestamp, sender, intents)
}

func allowIntent(limit string, token sdk.Asset) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token.String()},
	}}
}

// amountLimit renders an Amount as the float string a transfer.allow
// intent carries.
func amountLimit(amount int64) string {
	return strconv.FormatFloat(float64(amount)/AmountScale, 'f', 3, 64)
}

func setupContract(t *testing.T) {
	t.Helper()
	setupContractWith(t, venueID, "")
}

func setupContractWithVenue(t *testing.T, venue string) {
	t.Helper()
	setupContractWith(t, venue, "")
}

func setupContractWith(t *testing.T, venue, converter string) {
	t.Helper()
	sdk.MockReset()
	opInProgress = false
	cachedEnv = nil
	cachedEnvTx = ""
	beginTx(t, tsAt(0), ownerAddr, nil)
	ret := ContractInit(strptr(
		`{"treasury":"` + treasuryAddr + `","venue":"` + venue + `","converter":"` + converter + `"}`))
	require.Equal(t, "initialized", *ret)
}

// venueStub plays the external yield pool: supply/withdraw book receipt
// balances, accrue simulates yield by minting both the receipt delta and
// the matching funds onto the contract account.
type venueStub struct {
	balances map[string]int64
}

func installVenue(t *testing.T) *venueStub {
	t.Helper()
	v := &venueStub{balances: map[string]int64{}}
	sdk.MockRegisterContract(venueID, func(method, payload string) string {
		switch method {
		case "supply":
			asset, amt := splitAssetAmount(t, payload)
			v.balances[asset] += amt
			return "ok"
		case "withdraw":
			asset, amt := splitAssetAmount(t, payload)
			v.balances[asset] -= amt
			return "ok"
		case "balance_of":
			return strconv.FormatInt(v.balances[payload], 10)
		}
		t.Fatalf("unexpected venue method %s", method)
		return ""
	})
	return v
}

func splitAssetAmount(t *testing.T, payload string) (string, int64) {
	t.Helper()
	parts := strings.SplitN(payload, "|", 2)
	require.Len(t, parts, 2)
	amt, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	return parts[0], amt
}

func (v *venueStub) accrue(asset sdk.Asset, amount int64) {
	v.balances[asset.String()] += amount
	cur := sdk.MockBalance(sdk.Address(sdk.MockContractAddress), asset)
	sdk.MockSetBalance(sdk.Address(sdk.MockContractAddress), asset, cur+amount)
}

func createCampaign(t *testing.T, goal int64, deadline int64) uint64 {
	t.Helper()
	beginTx(t, tsAt(0), ownerAddr, nil)
	ret := CampaignCreate(strptr(fmt.Sprintf(
		`{"title":"Clean water for Okinoko","metadata":"ipfs://meta","beneficiary":"%s","asset":"hbd","goal":%d,"deadline":%d}`,
		benefAddr, goal, deadline)))
	require.NotNil(t, ret)
	id, err := strconv.ParseUint(*ret, 10, 64)
	require.NoError(t, err)
	return id
}

func fund(addr string, asset sdk.Asset, amount int64) {
	cur := sdk.MockBalance(sdk.Address(addr), asset)
	sdk.MockSetBalance(sdk.Address(addr), asset, cur+amount)
}

func donateAt(t *testing.T, id uint64, donor string, amount int64, at time.Duration) string {
	t.Helper()
	fund(donor, sdk.AssetHbd, amount)
	beginTx(t, tsAt(at), donor, allowIntent(amountLimit(amount), sdk.AssetHbd))
	ret := Donate(strptr(fmt.Sprintf("%d|%d", id, amount)))
	require.NotNil(t, ret)
	return *ret
}

func stakeAt(t *testing.T, id uint64, staker string, amount int64, at time.Duration) string {
	t.Helper()
	fund(staker, sdk.AssetHbd, amount)
	beginTx(t, tsAt(at), staker, allowIntent(amountLimit(amount), sdk.AssetHbd))
	ret := Stake(strptr(fmt.Sprintf("%d|%d", id, amount)))
	require.NotNil(t, ret)
	return *ret
}

func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %s", symbol)
		he, ok := r.(*sdk.HostError)
		require.True(t, ok, "unexpected panic value: %v", r)
		assert.Equal(t, symbol, he.Symbol)
	}()
	fn()
}

// transferTo sums recorded outgoing transfers towards one address.
func transferTo(addr string) int64 {
	var total int64
	for _, tr := range sdk.MockTransfers() {
		if tr.To.String() == addr {
			total += tr.Amount
		}
	}
	return total
}
