package main

import (
	"strconv"
	"time"

	"crowdfund_vault/sdk"
)

// blockTimeLayout matches the chain's block.timestamp format (UTC, no zone).
const blockTimeLayout = "2006-01-02T15:04:05"

// parseTimestamp turns a block timestamp into unix seconds, aborting on
// garbage since a malformed timestamp means a broken host.
func parseTimestamp(ts string) int64 {
	t, err := time.Parse(blockTimeLayout, ts)
	if err != nil {
		sdk.Abort("invalid block timestamp")
	}
	return t.Unix()
}

func getCount(key string) uint64 {
	raw := sdk.StateGetObject(key)
	if raw == nil {
		return 0
	}
	n, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt counter " + key)
	}
	return n
}

func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextID hands out 1-based sequential ids per counter key.
func nextID(key string) uint64 {
	n := getCount(key) + 1
	setCount(key, n)
	return n
}

func strptr(s string) *string {
	return &s
}

func uintToString(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func amountToString(v Amount) string {
	return strconv.FormatInt(int64(v), 10)
}
