package schema

import (
	"gorm.io/datatypes"
	"time"
)

// event kinds written to the audit log and kafka
const (
	EventAssetCreated       = "asset_created"
	EventMetadataAppended   = "metadata_appended"
	EventAssetTransferred   = "asset_transferred"
	EventCreditsIssued      = "credits_issued"
	EventCreditsRetired     = "credits_retired"
	EventBondInvested       = "bond_invested"
	EventBondTriggered      = "bond_triggered"
	EventBondPaidOut        = "bond_paid_out"
	EventBondMatured        = "bond_matured"
	EventBondClaimed        = "bond_claimed"
	EventProjectCreated     = "project_created"
	EventContribution       = "project_contribution"
	EventPhaseCompleted     = "phase_completed"
	EventPhaseFundingPaid   = "phase_funding_paid"
	EventTokensIssued       = "ownership_tokens_issued"
	EventTokensDistributed  = "ownership_tokens_distributed"
	EventRevenueRegistered  = "revenue_registered"
	EventRevenueDistributed = "revenue_distributed"
	EventComplianceUpdated  = "compliance_updated"
)

type AssetEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	EventId string         `gorm:"unique" json:"eventId"`
	AssetId string         `gorm:"index:idx_event_asset" json:"assetId"`
	Kind    string         `json:"kind"`
	Actor   string         `json:"actor"`
	Payload datatypes.JSON `json:"payload"`
}

type TransferRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	AssetId string `gorm:"index:idx_transfer_asset" json:"assetId"`
	TokenId string `json:"tokenId"`
	From    string `gorm:"index:idx_transfer_from" json:"from"`
	To      string `json:"to"`
	Amount  uint64 `json:"amount"`
}

type ContributionRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	AssetId     string `gorm:"index:idx_contribution_asset" json:"assetId"`
	Contributor string `gorm:"index:idx_contribution_addr" json:"contributor"`
	Amount      uint64 `json:"amount"`
	Cumulative  uint64 `json:"cumulative"`
}

type BondPositionRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`

	AssetId string `gorm:"uniqueIndex:idx_position" json:"assetId"`
	Holder  string `gorm:"uniqueIndex:idx_position" json:"holder"`
	Amount  uint64 `json:"amount"`
	Claimed bool   `json:"claimed"`
}
