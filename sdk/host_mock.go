//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// In-memory stand-in for the chain host so the contract runs under plain
// `go test`. State, balances, env and foreign contracts are all scriptable
// and fully deterministic; nothing leaks between tests as long as MockReset
// runs in the test setup.

// HostError is what Abort/Revert panic with on the mock host. Tests recover
// it and assert on Symbol.
type HostError struct {
	Symbol string
	Msg    string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Symbol, e.Msg)
}

// MockTransfer records one outgoing hive.transfer/hive.withdraw call.
type MockTransfer struct {
	To     Address
	Amount int64
	Asset  Asset
}

// MockContract lets tests script a foreign contract (like the yield venue).
type MockContract struct {
	State map[string]string
	Call  func(method, payload string) string
}

// MockContractAddress is the account the mock host books drawn funds onto.
const MockContractAddress = "contract:this"

var (
	mockState     = map[string]string{}
	mockEnv       Env
	mockBalances  = map[string]int64{}
	mockTransfers []MockTransfer
	mockLogs      []string
	mockContracts = map[string]*MockContract{}
)

// MockReset wipes every piece of host state. Call it first in each test.
func MockReset() {
	mockState = map[string]string{}
	mockBalances = map[string]int64{}
	mockTransfers = nil
	mockLogs = nil
	mockContracts = map[string]*MockContract{}
	mockEnv = Env{
		ContractId:  MockContractAddress,
		TxId:        "tx-0",
		BlockId:     "block-0",
		BlockHeight: 0,
		Timestamp:   "2025-01-01T00:00:00",
	}
}

// MockBeginTx stages the env for the next contract call: fresh tx id, block
// timestamp, sender and intents. Mirrors what the chain hands over per op.
func MockBeginTx(txID, timestamp, sender string, intents []Intent) {
	mockEnv.TxId = txID
	mockEnv.Timestamp = timestamp
	mockEnv.Sender = Sender{
		Address:       Address(sender),
		RequiredAuths: []Address{Address(sender)},
	}
	mockEnv.Caller = Caller{Address: Address(sender)}
	mockEnv.Payer = sender
	mockEnv.Intents = intents
}

// MockSetBalance seeds a ledger balance for an account+asset pair.
func MockSetBalance(addr Address, asset Asset, amount int64) {
	mockBalances[addr.String()+"/"+asset.String()] = amount
}

// MockBalance reads a seeded/driven balance back out for assertions.
func MockBalance(addr Address, asset Asset) int64 {
	return mockBalances[addr.String()+"/"+asset.String()]
}

// MockTransfers returns every outgoing transfer recorded so far.
func MockTransfers() []MockTransfer {
	return mockTransfers
}

// MockLogs returns the emitted event lines for assertions.
func MockLogs() []string {
	return mockLogs
}

// MockRegisterContract installs a scriptable foreign contract under the id.
func MockRegisterContract(contractId string, call func(method, payload string) string) *MockContract {
	mc := &MockContract{State: map[string]string{}, Call: call}
	mockContracts[contractId] = mc
	return mc
}

func hostLog(s string) {
	mockLogs = append(mockLogs, s)
}

func hostAbort(msg string) {
	panic(&HostError{Symbol: "abort", Msg: msg})
}

func hostRevert(msg string, symbol string) {
	panic(&HostError{Symbol: symbol, Msg: msg})
}

func hostStateSet(key, value string) {
	mockState[key] = value
}

func hostStateGet(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func hostStateDelete(key string) {
	delete(mockState, key)
}

func hostGetEnv() Env {
	return mockEnv
}

func hostGetEnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = mockEnv.TxId
	case "block.timestamp":
		val = mockEnv.Timestamp
	case "contract.id":
		val = mockEnv.ContractId
	case "block.height":
		val = strconv.FormatUint(mockEnv.BlockHeight, 10)
	default:
		return nil
	}
	return &val
}

func hostGetBalance(addr, asset string) string {
	return strconv.FormatInt(mockBalances[addr+"/"+asset], 10)
}

// hostDraw moves funds from the tx sender onto the contract account, failing
// like the chain does when the balance cannot cover the draw.
func hostDraw(amount, asset string) {
	amt, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		panic(&HostError{Symbol: "sdk_error", Msg: "invalid draw amount"})
	}
	from := mockEnv.Sender.Address.String() + "/" + asset
	if mockBalances[from] < amt {
		panic(&HostError{Symbol: "insufficient_balance", Msg: "draw exceeds balance"})
	}
	mockBalances[from] -= amt
	mockBalances[MockContractAddress+"/"+asset] += amt
}

func hostTransfer(to, amount, asset string) {
	amt, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		panic(&HostError{Symbol: "sdk_error", Msg: "invalid transfer amount"})
	}
	contractKey := MockContractAddress + "/" + asset
	if mockBalances[contractKey] < amt {
		panic(&HostError{Symbol: "insufficient_balance", Msg: "transfer exceeds contract funds"})
	}
	mockBalances[contractKey] -= amt
	mockBalances[to+"/"+asset] += amt
	mockTransfers = append(mockTransfers, MockTransfer{To: Address(to), Amount: amt, Asset: Asset(asset)})
}

func hostWithdraw(to, amount, asset string) {
	hostTransfer(to, amount, asset)
}

func hostContractRead(contractId, key string) *string {
	mc, ok := mockContracts[contractId]
	if !ok {
		return nil
	}
	val, ok := mc.State[key]
	if !ok {
		return nil
	}
	return &val
}

func hostContractCall(contractId, method, payload string, options *ContractCallOptions) *string {
	mc, ok := mockContracts[contractId]
	if !ok || mc.Call == nil {
		panic(&HostError{Symbol: "sdk_error", Msg: "unknown contract " + contractId})
	}
	ret := mc.Call(method, payload)
	return &ret
}
