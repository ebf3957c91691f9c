package sdk

import "strconv"

// The lowercase host functions are provided by host_wasm.go on the wasm
// target and by host_mock.go everywhere else, so contract code and tests
// share the exact same call surface.

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("donation credited")
func Log(s string) {
	hostLog(s)
}

// Abort stops execution immediately and surfaces the message to the chain.
// Reserved for internal invariant violations; user-facing failures go
// through Revert with a symbol.
// Example payload: sdk.Abort("corrupt pool record")
func Abort(msg string) {
	hostAbort(msg)
}

// Revert throws a named error back to the caller (like revert in solidity)
// with a short machine-checkable symbol.
// Example payload: sdk.Revert("amount must be positive", "invalid_amount")
func Revert(msg string, symbol string) {
	hostRevert(msg, symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	hostStateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return hostStateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	hostStateDelete(key)
}

// GetEnv pulls the execution environment snapshot from the host.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	return hostGetEnv()
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return hostGetEnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	balStr := hostGetBalance(address.String(), asset.String())
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	hostDraw(strconv.FormatInt(amount, 10), asset.String())
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHbd)
func HiveTransfer(to Address, amount int64, asset Asset) {
	hostTransfer(to.String(), strconv.FormatInt(amount, 10), asset.String())
}

// HiveWithdraw unwraps contract-held funds into the Hive layer (savings etc.).
// Example payload: sdk.HiveWithdraw(sdk.Address("hive:foo"), 50, sdk.AssetHive)
func HiveWithdraw(to Address, amount int64, asset Asset) {
	hostWithdraw(to.String(), strconv.FormatInt(amount, 10), asset.String())
}

// ContractStateGet reads another contract's state key (view-only).
// Example payload: sdk.ContractStateGet("contract:venue", "cfg")
func ContractStateGet(contractId string, key string) *string {
	return hostContractRead(contractId, key)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Example payload: sdk.ContractCall("contract:venue", "supply", "hbd|500", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	return hostContractCall(contractId, method, payload, options)
}
