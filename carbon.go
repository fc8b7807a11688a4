package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

// CreateCarbonProject tokenizes a verified carbon credit batch; one token
// represents one tonne of CO2.
func (s *Bolireg) CreateCarbonProject(caller string, params schema.CreateCarbonProjectParams) (string, error) {
	if !s.canCreateAssets(caller) {
		return "", fmt.Errorf("%w: only a registered creator can create carbon projects", schema.ErrUnauthorized)
	}
	if params.VintageStart >= params.VintageEnd {
		return "", fmt.Errorf("%w: invalid vintage period", schema.ErrInvalidParams)
	}
	if params.TotalOffset == 0 {
		return "", fmt.Errorf("%w: total offset must be positive", schema.ErrInvalidParams)
	}

	now := s.ledger.Now()
	note := fmt.Sprintf("Boli Carbon Credit: %s | Registry: %s | Project ID: %s | Verified by: %s",
		params.CreditType, params.CarbonRegistry, params.RegistryProjectId, params.Verifier)
	assetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    params.TotalOffset,
		Decimals: 0, // non-divisible carbon credits
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: params.UnitName,
		Name:     params.Name,
		URL:      "ipfs://" + params.MonitoringReportHash,
		Note:     note,
	})
	if err != nil {
		return "", err
	}

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          assetId,
			Creator:          caller,
			AssetType:        schema.AssetTypeCarbonCredit,
			Geolocation:      params.Geolocation,
			JurisdictionCode: params.JurisdictionCode,
			Metadata:         params.MonitoringReportHash,
			ComplianceStatus: schema.StatusVerified,
			LastUpdated:      now,
			Authorities: schema.Authorities{
				Creators: []string{caller},
			},
		},
		Carbon: &schema.CarbonExtension{
			CreditType:              params.CreditType,
			CarbonRegistry:          params.CarbonRegistry,
			RegistryProjectId:       params.RegistryProjectId,
			VintageStart:            params.VintageStart,
			VintageEnd:              params.VintageEnd,
			TotalOffset:             params.TotalOffset,
			RemainingOffset:         params.TotalOffset, // initially all credits are available
			VerificationMethodology: params.VerificationMethodology,
			Verifier:                params.Verifier,
		},
	}
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"assetType":   schema.AssetTypeCarbonCredit,
		"creditType":  params.CreditType,
		"totalOffset": params.TotalOffset,
	})
	return assetId, nil
}

// IssueCredits transfers credits from the issuance pool to a recipient.
// RemainingOffset never goes negative.
func (s *Bolireg) IssueCredits(caller, assetId, recipient string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Carbon == nil {
		return fmt.Errorf("%w: not a carbon credit asset", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return fmt.Errorf("%w: only the creator can issue credits", schema.ErrUnauthorized)
	}
	if amount > st.Carbon.RemainingOffset {
		return fmt.Errorf("%w: %d requested, %d remaining", schema.ErrInsufficientCredits, amount, st.Carbon.RemainingOffset)
	}

	if err := s.ledger.TransferToken(assetId, amount, st.Record.Creator, recipient); err != nil {
		return err
	}

	st.Carbon.RemainingOffset -= amount
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventCreditsIssued, caller, map[string]interface{}{
		"recipient": recipient,
		"amount":    amount,
		"remaining": st.Carbon.RemainingOffset,
	})
	return nil
}

// RetireCredits removes already-issued credits from circulation by moving
// them to the retirement sink. The issuance cap (RemainingOffset) is a
// separate pool and is not decremented here.
func (s *Bolireg) RetireCredits(caller, assetId string, amount uint64, beneficiary, reason string) error {
	if amount == 0 {
		return fmt.Errorf("%w: amount must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Carbon == nil {
		return fmt.Errorf("%w: not a carbon credit asset", schema.ErrInvalidParams)
	}

	if err := s.ledger.TransferToken(assetId, amount, caller, s.retirementSink); err != nil {
		return err
	}

	now := s.ledger.Now()
	appendMetadata(&st.Record, fmt.Sprintf("retirement:%s:%d:%d", beneficiary, amount, now))
	st.Record.LastUpdated = now
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventCreditsRetired, caller, map[string]interface{}{
		"beneficiary": beneficiary,
		"amount":      amount,
		"reason":      reason,
	})
	return nil
}

// AddVerificationDocument attaches a new verification report and updates the
// verifier of record.
func (s *Bolireg) AddVerificationDocument(caller, assetId, verifierName string, verificationDate int64, documentHash string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Carbon == nil {
		return fmt.Errorf("%w: not a carbon credit asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleVerifier) {
		return fmt.Errorf("%w: only the creator or a verifier can add documents", schema.ErrUnauthorized)
	}

	st.Carbon.Verifier = verifierName
	appendMetadata(&st.Record, fmt.Sprintf("verification:%s:%d", documentHash, verificationDate))
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// TransferCredits moves issued credits between identities; only verified
// batches are transferable.
func (s *Bolireg) TransferCredits(caller, assetId, from, to string, amount uint64) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Carbon == nil {
		return fmt.Errorf("%w: not a carbon credit asset", schema.ErrInvalidParams)
	}
	if st.Record.ComplianceStatus != schema.StatusVerified {
		return fmt.Errorf("%w: credits are not verified", schema.ErrTransferSuspended)
	}
	return s.executeTransfer(caller, &st, assetId, amount, from, to)
}
