package main

import "crowdfund_vault/sdk"

func saveProposal(p *Proposal) {
	sdk.StateSetObject(proposalKey(p.ID), encodeProposal(p))
}

func loadProposal(id uint64) *Proposal {
	raw := sdk.StateGetObject(proposalKey(id))
	if raw == nil {
		return nil
	}
	p, err := decodeProposal(*raw)
	if err != nil {
		sdk.Abort("corrupt proposal record")
	}
	return p
}

func mustLoadProposal(id uint64) *Proposal {
	p := loadProposal(id)
	if p == nil {
		fail(errNotFound, "unknown proposal")
	}
	return p
}

func saveVoteReceipt(proposalID uint64, addr sdk.Address, v *VoteReceipt) {
	sdk.StateSetObject(voteKey(proposalID, addr), encodeVoteReceipt(v))
}

func loadVoteReceipt(proposalID uint64, addr sdk.Address) *VoteReceipt {
	raw := sdk.StateGetObject(voteKey(proposalID, addr))
	if raw == nil {
		return nil
	}
	v, err := decodeVoteReceipt(*raw)
	if err != nil {
		sdk.Abort("corrupt vote record")
	}
	return v
}
