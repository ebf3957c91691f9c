package main

import (
	"strconv"

	"crowdfund_vault/sdk"
)

// Deposits arrive as transfer.allow intents. When the intent token differs
// from the campaign asset the converter contract quotes and swaps, so the
// ledger only ever credits campaign-asset units.

type depositPlan struct {
	// Credit is the amount booked into the ledger, in the campaign asset.
	Credit Amount
	// DrawAmount/DrawAsset is what actually gets pulled from the sender.
	DrawAmount Amount
	DrawAsset  sdk.Asset
}

// resolveDeposit validates the intent and prices the deposit. No funds move
// here; collectDeposit runs after the state writes.
func resolveDeposit(amount Amount, campaignAsset sdk.Asset) *depositPlan {
	ta := firstTransferAllow()
	if ta == nil {
		fail(errInvalidPayload, "transfer.allow intent required")
	}
	if FloatToAmount(ta.Limit) < amount {
		fail(errIntentLimit, "intent limit below deposit amount")
	}
	if ta.Token == campaignAsset {
		return &depositPlan{Credit: amount, DrawAmount: amount, DrawAsset: ta.Token}
	}
	if !isValidAsset(ta.Token) {
		fail(errInvalidAsset, "unsupported deposit asset "+ta.Token.String())
	}
	cfg := mustLoadContractConfig()
	if cfg.ConverterContract == "" {
		fail(errInvalidAsset, "no converter wired for "+ta.Token.String())
	}
	credit := convertQuote(cfg.ConverterContract, ta.Token, campaignAsset, amount)
	if credit <= 0 {
		fail(errInvalidAmount, "conversion yields nothing")
	}
	return &depositPlan{Credit: credit, DrawAmount: amount, DrawAsset: ta.Token}
}

// collectDeposit pulls the funds in and, for foreign assets, swaps them into
// the campaign asset via the converter.
func collectDeposit(p *depositPlan, campaignAsset sdk.Asset) {
	sdk.HiveDraw(AmountToInt64(p.DrawAmount), p.DrawAsset)
	if p.DrawAsset == campaignAsset {
		return
	}
	cfg := mustLoadContractConfig()
	convertSwap(cfg.ConverterContract, p.DrawAsset, campaignAsset, p.DrawAmount)
}

func convertPayload(from, to sdk.Asset, amount Amount) string {
	return from.String() + "|" + to.String() + "|" + amountToString(amount)
}

func convertQuote(converter string, from, to sdk.Asset, amount Amount) Amount {
	ret := sdk.ContractCall(converter, "quote", convertPayload(from, to, amount), nil)
	if ret == nil {
		sdk.Abort("converter quote failed")
	}
	v, err := strconv.ParseInt(*ret, 10, 64)
	if err != nil {
		sdk.Abort("converter quote unreadable")
	}
	return Amount(v)
}

func convertSwap(converter string, from, to sdk.Asset, amount Amount) {
	opts := &sdk.ContractCallOptions{Intents: []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": formatAmountFloat(amount),
			"token": from.String(),
		},
	}}}
	sdk.ContractCall(converter, "swap", convertPayload(from, to, amount), opts)
}
