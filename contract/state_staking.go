package main

import "crowdfund_vault/sdk"

func saveStakingPool(campaignID uint64, p *StakingPool) {
	sdk.StateSetObject(poolKey(campaignID), encodeStakingPool(p))
}

func loadStakingPool(campaignID uint64) *StakingPool {
	raw := sdk.StateGetObject(poolKey(campaignID))
	if raw == nil {
		return nil
	}
	p, err := decodeStakingPool(*raw)
	if err != nil {
		sdk.Abort("corrupt pool record")
	}
	return p
}

func saveStakingPosition(campaignID uint64, addr sdk.Address, p *StakingPosition) {
	sdk.StateSetObject(positionKey(campaignID, addr), encodeStakingPosition(p))
}

func loadStakingPosition(campaignID uint64, addr sdk.Address) *StakingPosition {
	raw := sdk.StateGetObject(positionKey(campaignID, addr))
	if raw == nil {
		return nil
	}
	p, err := decodeStakingPosition(*raw)
	if err != nil {
		sdk.Abort("corrupt position record")
	}
	return p
}

func deleteStakingPosition(campaignID uint64, addr sdk.Address) {
	sdk.StateDeleteObject(positionKey(campaignID, addr))
}
