package main

import (
	"strconv"

	"crowdfund_vault/sdk"
)

// The env snapshot is fetched once per transaction and cached. A wasm
// instance only serves one call, but the mock host reuses the process across
// test transactions, so the cache keys off tx.id.

var (
	cachedEnv   *sdk.Env
	cachedEnvTx string
)

func currentEnv() *sdk.Env {
	txID := sdk.GetEnvKey("tx.id")
	if txID == nil {
		sdk.Abort("missing tx id")
	}
	if cachedEnv == nil || cachedEnvTx != *txID {
		env := sdk.GetEnv()
		cachedEnv = &env
		cachedEnvTx = *txID
	}
	return cachedEnv
}

func getSenderAddress() sdk.Address {
	addr := currentEnv().Sender.Address
	if !addr.IsValid() {
		fail(errUnauthorized, "invalid sender address")
	}
	return addr
}

func currentTxID() string {
	return currentEnv().TxId
}

// nowUnix is the block time in unix seconds. All windows and deadlines
// compare against block time, never wall clock.
func nowUnix() int64 {
	return parseTimestamp(currentEnv().Timestamp)
}

// transferAllow is the deposit permission decoded out of the tx intents.
type transferAllow struct {
	Limit float64
	Token sdk.Asset
}

// firstTransferAllow finds the first transfer.allow intent, nil when the tx
// carries none.
func firstTransferAllow() *transferAllow {
	for _, intent := range currentEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		limitStr, ok := intent.Args["limit"]
		if !ok {
			continue
		}
		limit, err := strconv.ParseFloat(limitStr, 64)
		if err != nil || limit <= 0 {
			fail(errInvalidPayload, "invalid transfer.allow limit")
		}
		token, ok := intent.Args["token"]
		if !ok {
			fail(errInvalidPayload, "transfer.allow intent without token")
		}
		return &transferAllow{Limit: limit, Token: sdk.Asset(token)}
	}
	return nil
}

func isValidAsset(a sdk.Asset) bool {
	for _, v := range ValidAssets {
		if v == a {
			return true
		}
	}
	return false
}
