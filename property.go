package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

// CreateProperty tokenizes a land or property title as a single-unit token.
func (s *Bolireg) CreateProperty(caller string, params schema.CreatePropertyParams) (string, error) {
	if !s.canCreateAssets(caller) {
		return "", fmt.Errorf("%w: only a registered creator can create property assets", schema.ErrUnauthorized)
	}
	if params.LegalIdentifier == "" {
		return "", fmt.Errorf("%w: legal identifier is required", schema.ErrInvalidParams)
	}
	if params.ValuationAmount == 0 {
		return "", fmt.Errorf("%w: valuation must be positive", schema.ErrInvalidParams)
	}

	now := s.ledger.Now()
	note := fmt.Sprintf("Boli Land Property: %s | Legal ID: %s | Valuation: %d",
		params.PropertyType, params.LegalIdentifier, params.ValuationAmount)
	assetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    1, // the title itself is indivisible
		Decimals: 0,
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: params.UnitName,
		Name:     params.Name,
		URL:      "ipfs://" + params.LegalDocumentHash,
		Note:     note,
	})
	if err != nil {
		return "", err
	}

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          assetId,
			Creator:          caller,
			AssetType:        schema.AssetTypeLandProperty,
			Geolocation:      params.Geolocation,
			JurisdictionCode: params.JurisdictionCode,
			Metadata:         params.LegalDocumentHash,
			ComplianceStatus: schema.StatusRegistered,
			LastUpdated:      now,
			Authorities: schema.Authorities{
				Creators: []string{caller},
			},
		},
		Property: &schema.PropertyExtension{
			PropertyType:    params.PropertyType,
			LegalIdentifier: params.LegalIdentifier,
			ValuationAmount: params.ValuationAmount,
			ValuationDate:   now,
		},
	}
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"assetType":       schema.AssetTypeLandProperty,
		"propertyType":    params.PropertyType,
		"legalIdentifier": params.LegalIdentifier,
	})
	return assetId, nil
}

// FractionalizeProperty issues a divisible share token alongside the title
// token. One-time operation.
func (s *Bolireg) FractionalizeProperty(caller, assetId string, fractionCount uint64, unitName string) (string, error) {
	if fractionCount == 0 {
		return "", fmt.Errorf("%w: fraction count must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return "", err
	}
	property := st.Property
	if property == nil {
		return "", fmt.Errorf("%w: not a property asset", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return "", fmt.Errorf("%w: only the creator can fractionalize", schema.ErrUnauthorized)
	}
	if property.Fractionalized {
		return "", fmt.Errorf("%w: property is already fractionalized", schema.ErrFractionalized)
	}

	fractionalAssetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    fractionCount,
		Decimals: 0,
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: unitName,
		Name:     "Shares of " + property.LegalIdentifier,
		Note:     "Boli Property Shares for asset: " + assetId,
	})
	if err != nil {
		return "", err
	}

	property.FractionalAssetId = fractionalAssetId
	property.Fractionalized = true
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"fractionalAssetId": fractionalAssetId,
		"fractionCount":     fractionCount,
	})
	return fractionalAssetId, nil
}

// UpdateValuation records a fresh appraisal.
func (s *Bolireg) UpdateValuation(caller, assetId string, newValuation uint64, valuationReportHash string) error {
	if newValuation == 0 {
		return fmt.Errorf("%w: valuation must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Property == nil {
		return fmt.Errorf("%w: not a property asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleVerifier) {
		return fmt.Errorf("%w: only the creator or an appraiser can update valuation", schema.ErrUnauthorized)
	}

	now := s.ledger.Now()
	st.Property.ValuationAmount = newValuation
	st.Property.ValuationDate = now
	appendMetadata(&st.Record, fmt.Sprintf("valuation:%d:%s", newValuation, valuationReportHash))
	st.Record.LastUpdated = now
	return s.saveState(st)
}

// UpdateLegalDocumentation replaces the title token's document pointer and
// logs the previous one.
func (s *Bolireg) UpdateLegalDocumentation(caller, assetId, newDocumentHash string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Property == nil {
		return fmt.Errorf("%w: not a property asset", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return fmt.Errorf("%w: only the creator can update legal documentation", schema.ErrUnauthorized)
	}

	if err := s.ledger.UpdateTokenURL(assetId, "ipfs://"+newDocumentHash); err != nil {
		return err
	}
	appendMetadata(&st.Record, "legal:"+newDocumentHash)
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// TransferProperty moves the title token, or share tokens once the property
// has been fractionalized.
func (s *Bolireg) TransferProperty(caller, assetId, from, to string, amount uint64) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	property := st.Property
	if property == nil {
		return fmt.Errorf("%w: not a property asset", schema.ErrInvalidParams)
	}
	if st.Record.ComplianceStatus == schema.StatusSuspended {
		return fmt.Errorf("%w: property transfers are suspended", schema.ErrTransferSuspended)
	}

	tokenId := assetId
	if property.Fractionalized {
		tokenId = property.FractionalAssetId
	} else if amount != 1 {
		return fmt.Errorf("%w: title token transfers are all-or-nothing", schema.ErrInvalidParams)
	}
	return s.executeTransfer(caller, &st, tokenId, amount, from, to)
}
