package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

const (
	marineTokenSupply   = uint64(1000000) // most marine rights are fractionalized for shared access
	marineTokenDecimals = uint32(3)
)

// CreateMarineAsset tokenizes a marine resource or right.
func (s *Bolireg) CreateMarineAsset(caller string, params schema.CreateMarineAssetParams) (string, error) {
	if !s.canCreateAssets(caller) {
		return "", fmt.Errorf("%w: only a registered creator can create marine assets", schema.ErrUnauthorized)
	}
	if params.SustainabilityRating < 1 || params.SustainabilityRating > 100 {
		return "", fmt.Errorf("%w: sustainability rating must be between 1 and 100", schema.ErrInvalidParams)
	}

	now := s.ledger.Now()
	expirationDate := int64(0)
	if params.ValidityPeriod > 0 {
		expirationDate = now + params.ValidityPeriod
	}

	note := fmt.Sprintf("Boli Blue Economy Asset: %s | Marine Zone: %s | Sustainability: %d/100",
		params.ResourceType, params.MarineZone, params.SustainabilityRating)
	assetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    marineTokenSupply,
		Decimals: marineTokenDecimals,
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: "BLUE",
		Name:     "BLUE-" + params.ResourceName,
		URL:      "ipfs://" + params.DocumentsHash,
		Note:     note,
	})
	if err != nil {
		return "", err
	}

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          assetId,
			Creator:          caller,
			AssetType:        schema.AssetTypeBlueEconomy,
			Geolocation:      params.GeoBoundary,
			JurisdictionCode: params.JurisdictionCode,
			Metadata:         params.DocumentsHash,
			ComplianceStatus: schema.StatusAuthorized,
			LastUpdated:      now,
			Authorities: schema.Authorities{
				Creators: []string{caller},
			},
		},
		Marine: &schema.MarineExtension{
			ResourceType:         params.ResourceType,
			MarineZone:           params.MarineZone,
			SustainabilityRating: params.SustainabilityRating,
			ExpirationDate:       expirationDate,
		},
	}
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"assetType":    schema.AssetTypeBlueEconomy,
		"resourceType": params.ResourceType,
		"marineZone":   params.MarineZone,
	})
	return assetId, nil
}

// MarineRightValid reports whether a marine right has not expired.
// Validity is derived, never stored: 0 means perpetual.
func (s *Bolireg) MarineRightValid(assetId string) (bool, error) {
	st, err := s.GetAsset(assetId)
	if err != nil {
		return false, err
	}
	if st.Marine == nil {
		return false, fmt.Errorf("%w: not a marine asset", schema.ErrInvalidParams)
	}
	return marineRightValid(st.Marine, s.ledger.Now()), nil
}

func marineRightValid(ext *schema.MarineExtension, now int64) bool {
	if ext.ExpirationDate == 0 {
		return true
	}
	return now < ext.ExpirationDate
}

// UpdateSustainabilityRating records a new environmental assessment.
func (s *Bolireg) UpdateSustainabilityRating(caller, assetId string, newRating uint64, assessmentHash string) error {
	if newRating < 1 || newRating > 100 {
		return fmt.Errorf("%w: rating must be between 1 and 100", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Marine == nil {
		return fmt.Errorf("%w: not a marine asset", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return fmt.Errorf("%w: only the creator can update ratings", schema.ErrUnauthorized)
	}

	st.Marine.SustainabilityRating = newRating
	appendMetadata(&st.Record, "assessment:"+assessmentHash)
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// ExtendValidityPeriod extends a marine right; perpetual rights stay
// perpetual.
func (s *Bolireg) ExtendValidityPeriod(caller, assetId string, extensionPeriod int64) error {
	if extensionPeriod <= 0 {
		return fmt.Errorf("%w: extension period must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Marine == nil {
		return fmt.Errorf("%w: not a marine asset", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return fmt.Errorf("%w: only the creator can extend validity", schema.ErrUnauthorized)
	}
	if st.Marine.ExpirationDate == 0 {
		return nil
	}

	st.Marine.ExpirationDate += extensionPeriod
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// TransferMarineAsset transfers marine right tokens between identities.
func (s *Bolireg) TransferMarineAsset(caller, assetId, from, to string, amount uint64) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Marine == nil {
		return fmt.Errorf("%w: not a marine asset", schema.ErrInvalidParams)
	}
	if !marineRightValid(st.Marine, s.ledger.Now()) {
		return fmt.Errorf("%w: cannot transfer expired marine rights", schema.ErrRightExpired)
	}
	if st.Record.ComplianceStatus != schema.StatusAuthorized {
		return fmt.Errorf("%w: asset is not authorized for transfer", schema.ErrTransferSuspended)
	}
	return s.executeTransfer(caller, &st, assetId, amount, from, to)
}
