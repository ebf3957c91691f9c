package main

import (
	"strings"

	"crowdfund_vault/sdk"
)

// The contract config is a single pipe-joined row. It is written exactly
// once by contract_init and read on every call that needs wiring info.

func saveContractConfig(cfg *ContractConfig) {
	row := strings.Join([]string{
		cfg.Owner.String(),
		cfg.PlatformTreasury.String(),
		cfg.VenueContract,
		cfg.ConverterContract,
	}, "|")
	sdk.StateSetObject(kConfig, row)
}

func loadContractConfig() *ContractConfig {
	raw := sdk.StateGetObject(kConfig)
	if raw == nil {
		return nil
	}
	parts := strings.Split(*raw, "|")
	if len(parts) != 4 {
		sdk.Abort("corrupt contract config")
	}
	return &ContractConfig{
		Owner:             sdk.Address(parts[0]),
		PlatformTreasury:  sdk.Address(parts[1]),
		VenueContract:     parts[2],
		ConverterContract: parts[3],
	}
}

func mustLoadContractConfig() *ContractConfig {
	cfg := loadContractConfig()
	if cfg == nil {
		sdk.Abort("contract not initialized")
	}
	return cfg
}
