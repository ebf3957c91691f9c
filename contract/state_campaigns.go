package main

import "crowdfund_vault/sdk"

func saveCampaignMeta(m *CampaignMeta) {
	sdk.StateSetObject(campaignMetaKey(m.ID), encodeCampaignMeta(m))
}

func loadCampaignMeta(id uint64) *CampaignMeta {
	raw := sdk.StateGetObject(campaignMetaKey(id))
	if raw == nil {
		return nil
	}
	m, err := decodeCampaignMeta(*raw)
	if err != nil {
		sdk.Abort("corrupt campaign meta record")
	}
	return m
}

func saveCampaignFinance(id uint64, f *CampaignFinance) {
	sdk.StateSetObject(campaignFinanceKey(id), encodeCampaignFinance(f))
}

func loadCampaignFinance(id uint64) *CampaignFinance {
	raw := sdk.StateGetObject(campaignFinanceKey(id))
	if raw == nil {
		return nil
	}
	f, err := decodeCampaignFinance(*raw)
	if err != nil {
		sdk.Abort("corrupt campaign finance record")
	}
	return f
}

// mustLoadCampaign fetches both halves or reverts when the id is unknown.
func mustLoadCampaign(id uint64) (*CampaignMeta, *CampaignFinance) {
	meta := loadCampaignMeta(id)
	if meta == nil {
		fail(errInvalidCampaign, "unknown campaign")
	}
	fin := loadCampaignFinance(id)
	if fin == nil {
		sdk.Abort("campaign finance record missing")
	}
	return meta, fin
}

func saveDonorRecord(campaignID uint64, addr sdk.Address, d *DonorRecord) {
	sdk.StateSetObject(donorKey(campaignID, addr), encodeDonorRecord(d))
}

func loadDonorRecord(campaignID uint64, addr sdk.Address) *DonorRecord {
	raw := sdk.StateGetObject(donorKey(campaignID, addr))
	if raw == nil {
		return nil
	}
	d, err := decodeDonorRecord(*raw)
	if err != nil {
		sdk.Abort("corrupt donor record")
	}
	return d
}
