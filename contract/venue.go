package main

import (
	"strconv"

	"crowdfund_vault/sdk"
)

// yieldVenue is the external pool the staking side parks principal in.
// Behind the interface sits a cross-contract client; tests swap in a stub.
type yieldVenue interface {
	supply(asset sdk.Asset, amount Amount)
	withdraw(asset sdk.Asset, amount Amount)
	receiptBalance(asset sdk.Asset) Amount
}

type venueClient struct {
	contractId string
}

func (v *venueClient) supply(asset sdk.Asset, amount Amount) {
	opts := &sdk.ContractCallOptions{Intents: []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": formatAmountFloat(amount),
			"token": asset.String(),
		},
	}}}
	sdk.ContractCall(v.contractId, "supply", asset.String()+"|"+amountToString(amount), opts)
}

func (v *venueClient) withdraw(asset sdk.Asset, amount Amount) {
	sdk.ContractCall(v.contractId, "withdraw", asset.String()+"|"+amountToString(amount), nil)
}

func (v *venueClient) receiptBalance(asset sdk.Asset) Amount {
	ret := sdk.ContractCall(v.contractId, "balance_of", asset.String(), nil)
	if ret == nil {
		sdk.Abort("venue balance query failed")
	}
	bal, err := strconv.ParseInt(*ret, 10, 64)
	if err != nil {
		sdk.Abort("venue balance unreadable")
	}
	return Amount(bal)
}

// activeVenue returns the wired venue client or reverts when staking is not
// configured for this deployment.
func activeVenue(cfg *ContractConfig) yieldVenue {
	if cfg.VenueContract == "" {
		fail(errNoStakingPool, "no yield venue configured")
	}
	return &venueClient{contractId: cfg.VenueContract}
}

func formatAmountFloat(a Amount) string {
	return strconv.FormatFloat(AmountToFloat(a), 'f', 3, 64)
}
