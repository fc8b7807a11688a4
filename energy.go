package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

// CreateEnergyProject tokenizes a renewable energy installation. The project
// can be issued whole (one token) or fractionalized at creation time.
func (s *Bolireg) CreateEnergyProject(caller string, params schema.CreateEnergyProjectParams) (string, error) {
	if !s.canCreateAssets(caller) {
		return "", fmt.Errorf("%w: only a registered creator can create energy projects", schema.ErrUnauthorized)
	}
	if params.InstalledCapacity == 0 {
		return "", fmt.Errorf("%w: installed capacity must be positive", schema.ErrInvalidParams)
	}
	if params.Fractionalize && params.FractionCount == 0 {
		return "", fmt.Errorf("%w: fraction count must be positive", schema.ErrInvalidParams)
	}

	total := uint64(1)
	if params.Fractionalize {
		total = params.FractionCount
	}
	now := s.ledger.Now()
	note := fmt.Sprintf("Boli Renewable Energy: %s | Capacity: %dW | Est. annual output: %dkWh",
		params.EnergyType, params.InstalledCapacity, params.EstimatedAnnualOutput)
	assetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    total,
		Decimals: 0,
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: "SOLAR",
		Name:     params.ProjectName,
		URL:      "ipfs://" + params.TechnicalSpecsHash,
		Note:     note,
	})
	if err != nil {
		return "", err
	}

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          assetId,
			Creator:          caller,
			AssetType:        schema.AssetTypeRenewableEnergy,
			Geolocation:      params.Location,
			JurisdictionCode: params.JurisdictionCode,
			Metadata:         params.TechnicalSpecsHash,
			ComplianceStatus: schema.StatusActive,
			LastUpdated:      now,
			Authorities: schema.Authorities{
				Creators: []string{caller},
			},
		},
		Energy: &schema.EnergyExtension{
			EnergyType:            params.EnergyType,
			InstalledCapacity:     params.InstalledCapacity,
			EstimatedAnnualOutput: params.EstimatedAnnualOutput,
			ProjectLifespan:       params.ProjectLifespan,
			InstallationDate:      now,
			Fractionalized:        params.Fractionalize,
		},
	}
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"assetType":  schema.AssetTypeRenewableEnergy,
		"energyType": params.EnergyType,
		"capacity":   params.InstalledCapacity,
	})
	return assetId, nil
}

// CreateEnergyProductionCertificates issues a renewable energy certificate
// batch tied to a project; one certificate per MWh produced.
func (s *Bolireg) CreateEnergyProductionCertificates(caller, assetId string, producedMWh uint64, meterReadingHash string) (string, error) {
	if producedMWh == 0 {
		return "", fmt.Errorf("%w: production must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return "", err
	}
	energy := st.Energy
	if energy == nil {
		return "", fmt.Errorf("%w: not an energy project", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return "", fmt.Errorf("%w: only the creator can issue production certificates", schema.ErrUnauthorized)
	}

	certId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    producedMWh,
		Decimals: 0,
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: "REC",
		Name:     "REC " + energy.EnergyType,
		URL:      "ipfs://" + meterReadingHash,
		Note:     "Boli Energy Certificate for project: " + assetId,
	})
	if err != nil {
		return "", err
	}

	now := s.ledger.Now()
	appendMetadata(&st.Record, fmt.Sprintf("production:%s:%d:%d", certId, producedMWh, now))
	st.Record.LastUpdated = now
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventCreditsIssued, caller, map[string]interface{}{
		"certificateId": certId,
		"producedMWh":   producedMWh,
	})
	return certId, nil
}

// UpdateProjectPerformance records measured output against the estimate.
func (s *Bolireg) UpdateProjectPerformance(caller, assetId string, measuredAnnualOutput uint64, performanceReportHash string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Energy == nil {
		return fmt.Errorf("%w: not an energy project", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleVerifier) {
		return fmt.Errorf("%w: only the creator or a verifier can report performance", schema.ErrUnauthorized)
	}

	st.Energy.EstimatedAnnualOutput = measuredAnnualOutput
	appendMetadata(&st.Record, fmt.Sprintf("performance:%d:%s", measuredAnnualOutput, performanceReportHash))
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// TransferEnergyProject moves project tokens between identities.
func (s *Bolireg) TransferEnergyProject(caller, assetId, from, to string, amount uint64) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	energy := st.Energy
	if energy == nil {
		return fmt.Errorf("%w: not an energy project", schema.ErrInvalidParams)
	}
	if st.Record.ComplianceStatus == schema.StatusSuspended {
		return fmt.Errorf("%w: project transfers are suspended", schema.ErrTransferSuspended)
	}
	if !energy.Fractionalized && amount != 1 {
		return fmt.Errorf("%w: whole-project tokens transfer as a single unit", schema.ErrInvalidParams)
	}
	return s.executeTransfer(caller, &st, assetId, amount, from, to)
}
