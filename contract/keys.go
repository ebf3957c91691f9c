package main

import "crowdfund_vault/sdk"

// Storage keys. Record keys are one prefix byte plus the packed
// little-endian id (plus the address for per-user records), keeping keys
// short and collision-free across record families.
const (
	kConfig        = "cfg"
	kCampaignCount = "count:cmp"
	kProposalCount = "count:prp"

	pCampaignMeta    byte = 0x01
	pCampaignFinance byte = 0x02
	pBreaker         byte = 0x03
	pDonor           byte = 0x04
	pPool            byte = 0x05
	pPosition        byte = 0x06
	pDonorIndex      byte = 0x07
	pStakerIndex     byte = 0x08
	pProposal        byte = 0x10
	pVote            byte = 0x11
)

func packUint64(v uint64) string {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return string(b)
}

func idKey(prefix byte, id uint64) string {
	return string(rune(prefix)) + packUint64(id)
}

func addrKey(prefix byte, id uint64, addr sdk.Address) string {
	return idKey(prefix, id) + addr.String()
}

func campaignMetaKey(id uint64) string    { return idKey(pCampaignMeta, id) }
func campaignFinanceKey(id uint64) string { return idKey(pCampaignFinance, id) }
func breakerKey(id uint64) string         { return idKey(pBreaker, id) }
func poolKey(id uint64) string            { return idKey(pPool, id) }
func proposalKey(id uint64) string        { return idKey(pProposal, id) }

func donorKey(campaignID uint64, addr sdk.Address) string {
	return addrKey(pDonor, campaignID, addr)
}

func positionKey(campaignID uint64, addr sdk.Address) string {
	return addrKey(pPosition, campaignID, addr)
}

func voteKey(proposalID uint64, addr sdk.Address) string {
	return addrKey(pVote, proposalID, addr)
}

// Index bases, chunk suffixes get appended by the indexing helpers.
func donorIndexBase(campaignID uint64) string  { return idKey(pDonorIndex, campaignID) }
func stakerIndexBase(campaignID uint64) string { return idKey(pStakerIndex, campaignID) }
