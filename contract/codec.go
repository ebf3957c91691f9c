package main

import (
	"errors"

	"crowdfund_vault/sdk"
)

// Deterministic hand-rolled binary codec for state records. The field order
// IS the schema; extend a record only by appending fields and gating the
// read on remaining bytes.

type binWriter struct {
	buf []byte
}

func (w *binWriter) writeVarUint(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

func (w *binWriter) writeUint64(v uint64) {
	w.writeVarUint(v)
}

// writeInt64 zigzag-encodes so small negatives stay short.
func (w *binWriter) writeInt64(v int64) {
	w.writeVarUint(uint64((v << 1) ^ (v >> 63)))
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *binWriter) String() string {
	return string(w.buf)
}

var (
	errCodecShort    = errors.New("codec: short buffer")
	errCodecTrailing = errors.New("codec: trailing bytes")
)

type binReader struct {
	buf []byte
	off int
	err error
}

func newBinReader(raw string) *binReader {
	return &binReader{buf: []byte(raw)}
}

func (r *binReader) readVarUint() uint64 {
	if r.err != nil {
		return 0
	}
	var v uint64
	var shift uint
	for {
		if r.off >= len(r.buf) {
			r.err = errCodecShort
			return 0
		}
		b := r.buf[r.off]
		r.off++
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v
		}
		shift += 7
	}
}

func (r *binReader) readUint64() uint64 {
	return r.readVarUint()
}

func (r *binReader) readInt64() int64 {
	v := r.readVarUint()
	return int64(v>>1) ^ -int64(v&1)
}

func (r *binReader) readAmount() Amount {
	return Amount(r.readInt64())
}

func (r *binReader) readBool() bool {
	if r.err != nil {
		return false
	}
	if r.off >= len(r.buf) {
		r.err = errCodecShort
		return false
	}
	b := r.buf[r.off]
	r.off++
	return b != 0
}

func (r *binReader) readString() string {
	n := r.readVarUint()
	if r.err != nil {
		return ""
	}
	end := r.off + int(n)
	if end > len(r.buf) {
		r.err = errCodecShort
		return ""
	}
	s := string(r.buf[r.off:end])
	r.off = end
	return s
}

func (r *binReader) done() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.buf) {
		return errCodecTrailing
	}
	return nil
}

func encodeCampaignMeta(m *CampaignMeta) string {
	w := &binWriter{}
	w.writeUint64(m.ID)
	w.writeString(m.Owner.String())
	w.writeString(m.Beneficiary.String())
	w.writeString(m.Title)
	w.writeString(m.Metadata)
	w.writeString(m.Asset.String())
	w.writeAmount(m.Goal)
	w.writeInt64(m.Deadline)
	w.writeInt64(m.CreatedAt)
	w.writeString(m.Tx)
	return w.String()
}

func decodeCampaignMeta(raw string) (*CampaignMeta, error) {
	r := newBinReader(raw)
	m := &CampaignMeta{
		ID:          r.readUint64(),
		Owner:       sdk.Address(r.readString()),
		Beneficiary: sdk.Address(r.readString()),
		Title:       r.readString(),
		Metadata:    r.readString(),
		Asset:       sdk.Asset(r.readString()),
		Goal:        r.readAmount(),
		Deadline:    r.readInt64(),
		CreatedAt:   r.readInt64(),
		Tx:          r.readString(),
	}
	return m, r.done()
}

func encodeCampaignFinance(f *CampaignFinance) string {
	w := &binWriter{}
	w.writeAmount(f.Balance)
	w.writeAmount(f.TotalDonations)
	w.writeUint64(f.DonationCount)
	w.writeUint64(f.DonorCount)
	w.writeBool(f.RefundsEnabled)
	w.writeBool(f.Paused)
	w.writeBool(f.Withdrawn)
	return w.String()
}

func decodeCampaignFinance(raw string) (*CampaignFinance, error) {
	r := newBinReader(raw)
	f := &CampaignFinance{
		Balance:        r.readAmount(),
		TotalDonations: r.readAmount(),
		DonationCount:  r.readUint64(),
		DonorCount:     r.readUint64(),
		RefundsEnabled: r.readBool(),
		Paused:         r.readBool(),
		Withdrawn:      r.readBool(),
	}
	return f, r.done()
}

func encodeDonorRecord(d *DonorRecord) string {
	w := &binWriter{}
	w.writeAmount(d.VotingPower)
	w.writeAmount(d.Refundable)
	return w.String()
}

func decodeDonorRecord(raw string) (*DonorRecord, error) {
	r := newBinReader(raw)
	d := &DonorRecord{
		VotingPower: r.readAmount(),
		Refundable:  r.readAmount(),
	}
	return d, r.done()
}

func encodeBreakerState(b *BreakerState) string {
	w := &binWriter{}
	w.writeAmount(b.MaxSingleTx)
	w.writeAmount(b.MaxHourly)
	w.writeAmount(b.MaxDaily)
	w.writeAmount(b.HourUsed)
	w.writeAmount(b.DayUsed)
	w.writeInt64(b.HourStart)
	w.writeInt64(b.DayStart)
	w.writeBool(b.Triggered)
	return w.String()
}

func decodeBreakerState(raw string) (*BreakerState, error) {
	r := newBinReader(raw)
	b := &BreakerState{
		MaxSingleTx: r.readAmount(),
		MaxHourly:   r.readAmount(),
		MaxDaily:    r.readAmount(),
		HourUsed:    r.readAmount(),
		DayUsed:     r.readAmount(),
		HourStart:   r.readInt64(),
		DayStart:    r.readInt64(),
		Triggered:   r.readBool(),
	}
	return b, r.done()
}

func encodeStakingPool(p *StakingPool) string {
	w := &binWriter{}
	w.writeAmount(p.TotalPrincipal)
	w.writeAmount(p.ReceiptSupply)
	w.writeInt64(p.LastHarvest)
	return w.String()
}

func decodeStakingPool(raw string) (*StakingPool, error) {
	r := newBinReader(raw)
	p := &StakingPool{
		TotalPrincipal: r.readAmount(),
		ReceiptSupply:  r.readAmount(),
		LastHarvest:    r.readInt64(),
	}
	return p, r.done()
}

func encodeStakingPosition(p *StakingPosition) string {
	w := &binWriter{}
	w.writeAmount(p.Principal)
	w.writeAmount(p.Receipts)
	w.writeAmount(p.Earned)
	w.writeInt64(p.LastSettledAt)
	return w.String()
}

func decodeStakingPosition(raw string) (*StakingPosition, error) {
	r := newBinReader(raw)
	p := &StakingPosition{
		Principal:     r.readAmount(),
		Receipts:      r.readAmount(),
		Earned:        r.readAmount(),
		LastSettledAt: r.readInt64(),
	}
	return p, r.done()
}

func encodeProposal(p *Proposal) string {
	w := &binWriter{}
	w.writeUint64(p.ID)
	w.writeUint64(p.CampaignID)
	w.writeString(p.Creator.String())
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeAmount(p.RequiredVotes)
	w.writeAmount(p.Upvotes)
	w.writeAmount(p.Downvotes)
	w.writeBool(p.Executed)
	w.writeInt64(p.CreatedAt)
	w.writeString(p.Tx)
	return w.String()
}

func decodeProposal(raw string) (*Proposal, error) {
	r := newBinReader(raw)
	p := &Proposal{
		ID:            r.readUint64(),
		CampaignID:    r.readUint64(),
		Creator:       sdk.Address(r.readString()),
		Title:         r.readString(),
		Description:   r.readString(),
		RequiredVotes: r.readAmount(),
		Upvotes:       r.readAmount(),
		Downvotes:     r.readAmount(),
		Executed:      r.readBool(),
		CreatedAt:     r.readInt64(),
		Tx:            r.readString(),
	}
	return p, r.done()
}

func encodeVoteReceipt(v *VoteReceipt) string {
	w := &binWriter{}
	w.writeBool(v.InFavor)
	w.writeAmount(v.Weight)
	w.writeInt64(v.VotedAt)
	return w.String()
}

func decodeVoteReceipt(raw string) (*VoteReceipt, error) {
	r := newBinReader(raw)
	v := &VoteReceipt{
		InFavor: r.readBool(),
		Weight:  r.readAmount(),
		VotedAt: r.readInt64(),
	}
	return v, r.done()
}

func encodeAddressChunk(addrs []string) string {
	w := &binWriter{}
	w.writeVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.writeString(a)
	}
	return w.String()
}

func decodeAddressChunk(raw string) ([]string, error) {
	r := newBinReader(raw)
	n := r.readVarUint()
	out := make([]string, 0, n)
	for i := uint64(0); i < n; i++ {
		out = append(out, r.readString())
	}
	return out, r.done()
}
