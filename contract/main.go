package main

import "crowdfund_vault/sdk"

// ContractInit wires the deployment once: the caller becomes contract
// owner, the treasury receives the platform share, venue and converter stay
// optional (staking and cross-asset deposits are off until set).
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if loadContractConfig() != nil {
		sdk.Abort("contract already initialized")
	}
	args := decodeInitArgs(unwrapPayload(payload))
	owner := getSenderAddress()
	treasury := sdk.Address(args.Treasury)
	if !treasury.IsValid() {
		fail(errInvalidPayload, "invalid treasury address")
	}
	saveContractConfig(&ContractConfig{
		Owner:             owner,
		PlatformTreasury:  treasury,
		VenueContract:     args.Venue,
		ConverterContract: args.Converter,
	})
	emitInitialized(owner)
	return strptr("initialized")
}

// Required for the wasm target, never called.
func main() {}
