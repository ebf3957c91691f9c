package main

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"crowdfund_vault/sdk"
)

// JSON payloads and query responses go through tinyjson lexer/writer pairs,
// reflection-free so the wasm target stays happy.

// InitArgs wires the contract at init time. Venue and converter are
// optional, staking and cross-asset deposits stay off until they are set.
type InitArgs struct {
	Treasury  string
	Venue     string
	Converter string
}

func decodeInitArgs(raw string) *InitArgs {
	in := jlexer.Lexer{Data: []byte(raw)}
	out := &InitArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "treasury":
			out.Treasury = in.String()
		case "venue":
			out.Venue = in.String()
		case "converter":
			out.Converter = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		fail(errInvalidPayload, "malformed init payload")
	}
	return out
}

type CampaignCreateArgs struct {
	Title       string
	Metadata    string
	Beneficiary string
	Asset       string
	Goal        int64
	Deadline    int64
}

func decodeCampaignCreateArgs(raw string) *CampaignCreateArgs {
	in := jlexer.Lexer{Data: []byte(raw)}
	out := &CampaignCreateArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "title":
			out.Title = in.String()
		case "metadata":
			out.Metadata = in.String()
		case "beneficiary":
			out.Beneficiary = in.String()
		case "asset":
			out.Asset = in.String()
		case "goal":
			out.Goal = in.Int64()
		case "deadline":
			out.Deadline = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		fail(errInvalidPayload, "malformed campaign payload")
	}
	return out
}

type ProposalCreateArgs struct {
	CampaignID    uint64
	Title         string
	Description   string
	RequiredVotes int64
}

func decodeProposalCreateArgs(raw string) *ProposalCreateArgs {
	in := jlexer.Lexer{Data: []byte(raw)}
	out := &ProposalCreateArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "campaignId":
			out.CampaignID = in.Uint64()
		case "title":
			out.Title = in.String()
		case "description":
			out.Description = in.String()
		case "requiredVotes":
			out.RequiredVotes = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		fail(errInvalidPayload, "malformed proposal payload")
	}
	return out
}

func finishJSON(w *jwriter.Writer) string {
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("json encode failed")
	}
	return string(data)
}

func jsonField(w *jwriter.Writer, first *bool, name string) {
	if *first {
		*first = false
	} else {
		w.RawByte(',')
	}
	w.String(name)
	w.RawByte(':')
}

// okResponse/errResponse wrap entry point results so callers can branch on
// "ok" without string matching. Breaker blocks come back this way instead of
// reverting, the trip has to stay persisted.
func okResponse(msg string) string {
	w := &jwriter.Writer{}
	w.RawByte('{')
	first := true
	jsonField(w, &first, "ok")
	w.Bool(true)
	jsonField(w, &first, "message")
	w.String(msg)
	w.RawByte('}')
	return finishJSON(w)
}

func errResponse(symbol string, msg string) string {
	w := &jwriter.Writer{}
	w.RawByte('{')
	first := true
	jsonField(w, &first, "ok")
	w.Bool(false)
	jsonField(w, &first, "error")
	w.String(symbol)
	jsonField(w, &first, "message")
	w.String(msg)
	w.RawByte('}')
	return finishJSON(w)
}

func campaignJSON(meta *CampaignMeta, fin *CampaignFinance) string {
	w := &jwriter.Writer{}
	w.RawByte('{')
	first := true
	jsonField(w, &first, "id")
	w.Uint64(meta.ID)
	jsonField(w, &first, "owner")
	w.String(meta.Owner.String())
	jsonField(w, &first, "beneficiary")
	w.String(meta.Beneficiary.String())
	jsonField(w, &first, "title")
	w.String(meta.Title)
	jsonField(w, &first, "metadata")
	w.String(meta.Metadata)
	jsonField(w, &first, "asset")
	w.String(meta.Asset.String())
	jsonField(w, &first, "goal")
	w.Int64(int64(meta.Goal))
	jsonField(w, &first, "deadline")
	w.Int64(meta.Deadline)
	jsonField(w, &first, "createdAt")
	w.Int64(meta.CreatedAt)
	jsonField(w, &first, "balance")
	w.Int64(int64(fin.Balance))
	jsonField(w, &first, "totalDonations")
	w.Int64(int64(fin.TotalDonations))
	jsonField(w, &first, "donationCount")
	w.Uint64(fin.DonationCount)
	jsonField(w, &first, "donorCount")
	w.Uint64(fin.DonorCount)
	jsonField(w, &first, "refundsEnabled")
	w.Bool(fin.RefundsEnabled)
	jsonField(w, &first, "paused")
	w.Bool(fin.Paused)
	jsonField(w, &first, "withdrawn")
	w.Bool(fin.Withdrawn)
	jsonField(w, &first, "goalReached")
	w.Bool(fin.GoalReached(meta.Goal))
	w.RawByte('}')
	return finishJSON(w)
}

func breakerJSON(b *BreakerState) string {
	w := &jwriter.Writer{}
	w.RawByte('{')
	first := true
	jsonField(w, &first, "maxSingleTx")
	w.Int64(int64(b.MaxSingleTx))
	jsonField(w, &first, "maxHourly")
	w.Int64(int64(b.MaxHourly))
	jsonField(w, &first, "maxDaily")
	w.Int64(int64(b.MaxDaily))
	jsonField(w, &first, "hourUsed")
	w.Int64(int64(b.HourUsed))
	jsonField(w, &first, "dayUsed")
	w.Int64(int64(b.DayUsed))
	jsonField(w, &first, "hourlyRemaining")
	w.Int64(int64(b.MaxHourly - b.HourUsed))
	jsonField(w, &first, "dailyRemaining")
	w.Int64(int64(b.MaxDaily - b.DayUsed))
	jsonField(w, &first, "hourStart")
	w.Int64(b.HourStart)
	jsonField(w, &first, "dayStart")
	w.Int64(b.DayStart)
	jsonField(w, &first, "triggered")
	w.Bool(b.Triggered)
	w.RawByte('}')
	return finishJSON(w)
}

func poolJSON(p *StakingPool, venueBalance Amount) string {
	w := &jwriter.Writer{}
	w.RawByte('{')
	first := true
	jsonField(w, &first, "totalPrincipal")
	w.Int64(int64(p.TotalPrincipal))
	jsonField(w, &first, "receiptSupply")
	w.Int64(int64(p.ReceiptSupply))
	jsonField(w, &first, "lastHarvest")
	w.Int64(p.LastHarvest)
	jsonField(w, &first, "venueBalance")
	w.Int64(int64(venueBalance))
	w.RawByte('}')
	return finishJSON(w)
}

func proposalJSON(p *Proposal) string {
	w := &jwriter.Writer{}
	w.RawByte('{')
	first := true
	jsonField(w, &first, "id")
	w.Uint64(p.ID)
	jsonField(w, &first, "campaignId")
	w.Uint64(p.CampaignID)
	jsonField(w, &first, "creator")
	w.String(p.Creator.String())
	jsonField(w, &first, "title")
	w.String(p.Title)
	jsonField(w, &first, "description")
	w.String(p.Description)
	jsonField(w, &first, "requiredVotes")
	w.Int64(int64(p.RequiredVotes))
	jsonField(w, &first, "upvotes")
	w.Int64(int64(p.Upvotes))
	jsonField(w, &first, "downvotes")
	w.Int64(int64(p.Downvotes))
	jsonField(w, &first, "executed")
	w.Bool(p.Executed)
	jsonField(w, &first, "createdAt")
	w.Int64(p.CreatedAt)
	w.RawByte('}')
	return finishJSON(w)
}
