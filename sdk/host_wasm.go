//go:build wasm

package sdk

import "encoding/json"

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk hive.withdraw
func hiveWithdraw(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

func hostLog(s string) {
	log(&s)
}

func hostAbort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

func hostRevert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(symbol)
}

func hostStateSet(key, value string) {
	stateSetObject(&key, &value)
}

func hostStateGet(key string) *string {
	return stateGetObject(&key)
}

func hostStateDelete(key string) {
	stateDeleteObject(&key)
}

// hostGetEnv maps the JSON env blob from the chain onto the Env struct. The
// sender/caller fields use flat msg.* keys so they are lifted out manually.
func hostGetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range raw {
			requiredAuths = append(requiredAuths, Address(auth.(string)))
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range raw {
			requiredPostingAuths = append(requiredPostingAuths, Address(auth.(string)))
		}
	}

	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{
			Address:              Address(sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		}
	}
	if caller, ok := envMap["msg.caller"].(string); ok {
		env.Caller = Caller{Address: Address(caller)}
	}
	return env
}

func hostGetEnvKey(key string) *string {
	return getEnvKey(&key)
}

func hostGetBalance(addr, asset string) string {
	return *getBalance(&addr, &asset)
}

func hostDraw(amount, asset string) {
	hiveDraw(&amount, &asset)
}

func hostTransfer(to, amount, asset string) {
	hiveTransfer(&to, &amount, &asset)
}

func hostWithdraw(to, amount, asset string) {
	hiveWithdraw(&to, &amount, &asset)
}

func hostContractRead(contractId, key string) *string {
	return contractRead(&contractId, &key)
}

func hostContractCall(contractId, method, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(options)
		if err != nil {
			hostRevert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr)
}
