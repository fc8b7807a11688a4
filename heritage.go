package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

// CreateHeritageAsset tokenizes a heritage site or artifact as a
// single-unit token under community stewardship.
func (s *Bolireg) CreateHeritageAsset(caller string, params schema.CreateHeritageAssetParams) (string, error) {
	if !s.canCreateAssets(caller) {
		return "", fmt.Errorf("%w: only a registered creator can create heritage assets", schema.ErrUnauthorized)
	}
	if params.CommunitySteward == "" {
		return "", fmt.Errorf("%w: community steward is required", schema.ErrInvalidParams)
	}

	now := s.ledger.Now()
	note := fmt.Sprintf("Boli Heritage Asset: %s | Significance: %s | Status: %s",
		params.HeritageType, params.CulturalSignificance, params.LegalStatus)
	assetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    1, // single token representing the heritage asset
		Decimals: 0,
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: params.UnitName,
		Name:     params.Name,
		URL:      "ipfs://" + params.DocumentationHash,
		Note:     note,
	})
	if err != nil {
		return "", err
	}

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          assetId,
			Creator:          caller,
			AssetType:        schema.AssetTypeHeritageAsset,
			Geolocation:      params.Geolocation,
			JurisdictionCode: params.JurisdictionCode,
			Metadata:         params.DocumentationHash,
			ComplianceStatus: schema.StatusRegistered,
			LastUpdated:      now,
			Authorities: schema.Authorities{
				Creators: []string{caller},
				Stewards: []string{params.CommunitySteward},
			},
		},
		Heritage: &schema.HeritageExtension{
			HeritageType:         params.HeritageType,
			CulturalSignificance: params.CulturalSignificance,
			LegalStatus:          params.LegalStatus,
			CommunitySteward:     params.CommunitySteward,
			StewardshipModel:     params.StewardshipModel,
			RestorationRequired:  false,
			ConservationStatus:   "documented",
			CommunityShare:       schema.DefaultCommunityShare,
			InvestorShare:        schema.DefaultInvestorShare,
			ConservationShare:    schema.DefaultConservationShare,
		},
	}
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"assetType":    schema.AssetTypeHeritageAsset,
		"heritageType": params.HeritageType,
		"steward":      params.CommunitySteward,
	})
	return assetId, nil
}

// UpdateHeritageDocumentation appends a document reference and optionally
// updates the conservation status.
func (s *Bolireg) UpdateHeritageDocumentation(caller, assetId, newDocumentationHash, documentType, newConservationStatus string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return fmt.Errorf("%w: only the creator or community steward can update documentation", schema.ErrUnauthorized)
	}

	appendMetadata(&st.Record, documentType+":"+newDocumentationHash)
	if newConservationStatus != "" {
		st.Heritage.ConservationStatus = newConservationStatus
	}
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// CreateRestorationProject opens a phased restoration funding project.
// Phase 1 starts active, the rest pending.
func (s *Bolireg) CreateRestorationProject(caller, assetId string, params schema.CreateRestorationProjectParams) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return fmt.Errorf("%w: only the creator or community steward can create restoration projects", schema.ErrUnauthorized)
	}
	if heritage.RestorationRequired {
		return fmt.Errorf("%w: restoration project already active", schema.ErrStateConflict)
	}
	now := s.ledger.Now()
	if params.ProjectPhasesCount == 0 {
		return fmt.Errorf("%w: project must have at least one phase", schema.ErrInvalidParams)
	}
	if params.ProjectDeadline <= now {
		return fmt.Errorf("%w: project deadline must be in the future", schema.ErrInvalidParams)
	}
	if params.FundingTarget == 0 {
		return fmt.Errorf("%w: funding target must be positive", schema.ErrInvalidParams)
	}

	heritage.FundingTarget = params.FundingTarget
	heritage.ProjectDeadline = params.ProjectDeadline
	heritage.ProjectPhases = params.ProjectPhasesCount
	heritage.CurrentPhase = 1
	heritage.ProjectVerifier = params.ProjectVerifier
	heritage.RestorationRequired = true
	heritage.ConservationStatus = "restoration-planned"
	heritage.Phases = make(map[uint64]*schema.ProjectPhase, params.ProjectPhasesCount)
	for i := uint64(1); i <= params.ProjectPhasesCount; i++ {
		status := schema.PhasePending
		if i == 1 {
			status = schema.PhaseActive
		}
		heritage.Phases[i] = &schema.ProjectPhase{Status: status}
	}
	if heritage.Contributors == nil {
		heritage.Contributors = make(map[string]*schema.Contributor)
	}

	st.Record.Authorities.Verifiers = appendIdentity(st.Record.Authorities.Verifiers, params.ProjectVerifier)
	appendMetadata(&st.Record, "project:"+params.ProjectDetailsHash)
	st.Record.LastUpdated = now
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventProjectCreated, caller, map[string]interface{}{
		"fundingTarget": params.FundingTarget,
		"phases":        params.ProjectPhasesCount,
		"deadline":      params.ProjectDeadline,
	})
	return nil
}

func appendIdentity(set []string, identity string) []string {
	for _, id := range set {
		if id == identity {
			return set
		}
	}
	return append(set, identity)
}

// DefineProjectPhase fills in a phase's description, milestone criteria and
// funding allocation. The sum of all allocations may never exceed the
// funding target; completed phases are immutable.
func (s *Bolireg) DefineProjectPhase(caller, assetId string, phaseNumber uint64, description, milestoneCriteria string, phaseFunding uint64) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity, schema.RoleVerifier) {
		return fmt.Errorf("%w: only the creator, community steward, or project verifier can define phases", schema.ErrUnauthorized)
	}
	if phaseNumber == 0 || phaseNumber > heritage.ProjectPhases {
		return fmt.Errorf("%w: invalid phase number", schema.ErrInvalidParams)
	}
	if phaseFunding == 0 {
		return fmt.Errorf("%w: phase funding must be positive", schema.ErrInvalidParams)
	}

	totalAllocated := phaseFunding
	for i, phase := range heritage.Phases {
		if i != phaseNumber {
			totalAllocated += phase.Funding
		}
	}
	if totalAllocated > heritage.FundingTarget {
		return fmt.Errorf("%w: %d allocated against target %d", schema.ErrAllocationExceeded, totalAllocated, heritage.FundingTarget)
	}

	phase, ok := heritage.Phases[phaseNumber]
	if !ok {
		return schema.ErrNotExist
	}
	if phase.Status != schema.PhasePending && phase.Status != schema.PhaseActive {
		return fmt.Errorf("%w: phase %d is %s and can no longer be redefined", schema.ErrStateConflict, phaseNumber, phase.Status)
	}
	phase.Description = description
	phase.MilestoneCriteria = milestoneCriteria
	phase.Funding = phaseFunding
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// ContributeToProject accepts funds into the restoration pool. Over-funding
// past the target is allowed.
func (s *Bolireg) ContributeToProject(caller, assetId string, contributionAmount uint64) error {
	if contributionAmount == 0 {
		return fmt.Errorf("%w: contribution must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !heritage.RestorationRequired {
		return fmt.Errorf("%w: no active restoration project", schema.ErrNoActiveProject)
	}
	if s.ledger.Now() >= heritage.ProjectDeadline {
		return fmt.Errorf("%w: project deadline has passed", schema.ErrDeadlinePassed)
	}

	if err := s.ledger.SendPayment(contributionAmount, caller, s.treasury); err != nil {
		return err
	}

	if heritage.Contributors == nil {
		heritage.Contributors = make(map[string]*schema.Contributor)
	}
	contributor, ok := heritage.Contributors[caller]
	if !ok {
		contributor = &schema.Contributor{}
		heritage.Contributors[caller] = contributor
	}
	contributor.Amount += contributionAmount
	heritage.FundingPool += contributionAmount
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}

	if s.wdb != nil && s.wdb.Db != nil {
		if err := s.wdb.InsertContribution(schema.ContributionRecord{
			AssetId:     assetId,
			Contributor: caller,
			Amount:      contributionAmount,
			Cumulative:  contributor.Amount,
		}); err != nil {
			log.Error("insert contribution", "assetId", assetId, "contributor", caller, "err", err)
		}
	}
	s.writeEvent(assetId, schema.EventContribution, caller, map[string]interface{}{
		"amount":      contributionAmount,
		"fundingPool": heritage.FundingPool,
	})
	return nil
}

// VerifyPhaseCompletion marks the active phase completed and activates the
// next; completing the final phase closes the project and marks the asset
// restored. Phases complete strictly in order.
func (s *Bolireg) VerifyPhaseCompletion(caller, assetId string, phaseNumber uint64, verificationDocumentation string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleVerifier, caller) {
		return fmt.Errorf("%w: only the project verifier can verify phase completion", schema.ErrUnauthorized)
	}
	if phaseNumber == 0 || phaseNumber > heritage.ProjectPhases {
		return fmt.Errorf("%w: invalid phase number", schema.ErrInvalidParams)
	}
	phase, ok := heritage.Phases[phaseNumber]
	if !ok {
		return schema.ErrNotExist
	}
	if phase.Status != schema.PhaseActive {
		return fmt.Errorf("%w: phase %d is %s", schema.ErrPhaseNotActive, phaseNumber, phase.Status)
	}

	phase.Status = schema.PhaseCompleted
	appendMetadata(&st.Record, fmt.Sprintf("phase%d:%s", phaseNumber, verificationDocumentation))

	if phaseNumber < heritage.ProjectPhases {
		next := phaseNumber + 1
		heritage.Phases[next].Status = schema.PhaseActive
		heritage.CurrentPhase = next
	} else {
		heritage.RestorationRequired = false
		heritage.ConservationStatus = "restored"
	}
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventPhaseCompleted, caller, map[string]interface{}{
		"phase": phaseNumber,
		"final": phaseNumber == heritage.ProjectPhases,
	})
	return nil
}

// ReleasePhaseFunding pays a completed phase's allocation to a recipient;
// the phase ends in the terminal paid status.
func (s *Bolireg) ReleasePhaseFunding(caller, assetId string, phaseNumber uint64, recipient string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity, schema.RoleVerifier) {
		return fmt.Errorf("%w: only the creator, community steward, or project verifier can release funding", schema.ErrUnauthorized)
	}
	if phaseNumber == 0 || phaseNumber > heritage.ProjectPhases {
		return fmt.Errorf("%w: invalid phase number", schema.ErrInvalidParams)
	}
	phase, ok := heritage.Phases[phaseNumber]
	if !ok {
		return schema.ErrNotExist
	}
	if phase.Status != schema.PhaseCompleted {
		return fmt.Errorf("%w: phase %d is %s", schema.ErrPhaseNotCompleted, phaseNumber, phase.Status)
	}
	if phase.Funding == 0 {
		return fmt.Errorf("%w: phase funding not defined", schema.ErrNotExist)
	}

	if err := s.ledger.SendPayment(phase.Funding, s.treasury, recipient); err != nil {
		return err
	}

	phase.Status = schema.PhasePaid
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventPhaseFundingPaid, caller, map[string]interface{}{
		"phase":     phaseNumber,
		"recipient": recipient,
		"amount":    phase.Funding,
	})
	return nil
}

// IssueOwnershipTokens mints the fixed ownership token pool once the
// funding target has been reached. One-time gate.
func (s *Bolireg) IssueOwnershipTokens(caller, assetId, tokenName, tokenUnitName string) (string, error) {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return "", err
	}
	heritage := st.Heritage
	if heritage == nil {
		return "", fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return "", fmt.Errorf("%w: only the creator or community steward can issue ownership tokens", schema.ErrUnauthorized)
	}
	if heritage.HasOwnershipTokens {
		return "", fmt.Errorf("%w: ownership tokens already issued", schema.ErrTokensIssued)
	}
	if heritage.FundingPool < heritage.FundingTarget {
		return "", fmt.Errorf("%w: %d raised of %d", schema.ErrTargetNotReached, heritage.FundingPool, heritage.FundingTarget)
	}

	ownershipTokenId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    schema.OwnershipTokenSupply,
		Decimals: 0,
		Manager:  s.treasury,
		Reserve:  s.treasury, // the platform holds the pool until distribution
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: tokenUnitName,
		Name:     tokenName,
		URL:      "ipfs://" + st.Record.Metadata,
		Note:     "Boli Heritage Ownership Token for asset: " + assetId,
	})
	if err != nil {
		return "", err
	}

	heritage.OwnershipTokenId = ownershipTokenId
	heritage.HasOwnershipTokens = true
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventTokensIssued, caller, map[string]interface{}{
		"tokenId": ownershipTokenId,
		"supply":  schema.OwnershipTokenSupply,
	})
	return ownershipTokenId, nil
}

// TransferStewardship hands community stewardship to a new identity and
// moves the token's freeze authority with it.
func (s *Bolireg) TransferStewardship(caller, assetId, newSteward string) error {
	if newSteward == "" {
		return fmt.Errorf("%w: new steward is required", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return fmt.Errorf("%w: only the creator or current steward can transfer stewardship", schema.ErrUnauthorized)
	}

	if err := s.ledger.ReconfigureToken(assetId, ledger.Authorities{
		Manager:  s.treasury,
		Reserve:  st.Record.Creator,
		Freeze:   newSteward,
		Clawback: s.treasury,
	}); err != nil {
		return err
	}

	heritage.CommunitySteward = newSteward
	st.Record.Authorities.Stewards = []string{newSteward}
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}

// RegisterAssetRevenue appends a revenue record to the asset's log.
func (s *Bolireg) RegisterAssetRevenue(caller, assetId string, revenueAmount uint64, revenueSource string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if st.Heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return fmt.Errorf("%w: only the creator or community steward can register revenue", schema.ErrUnauthorized)
	}

	now := s.ledger.Now()
	appendMetadata(&st.Record, fmt.Sprintf("revenue:%d:%s:%d", revenueAmount, revenueSource, now))
	st.Record.LastUpdated = now
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventRevenueRegistered, caller, map[string]interface{}{
		"amount": revenueAmount,
		"source": revenueSource,
	})
	return nil
}

// DistributeRevenue splits revenue by the configured basis-point shares:
// the community share is paid out, the conservation share stays in the
// treasury, the investor remainder follows token ownership.
func (s *Bolireg) DistributeRevenue(caller, assetId string, totalRevenue uint64) error {
	if totalRevenue == 0 {
		return fmt.Errorf("%w: revenue must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return fmt.Errorf("%w: only the creator or community steward can distribute revenue", schema.ErrUnauthorized)
	}

	communityAmount := totalRevenue * heritage.CommunityShare / schema.TotalShareBasisPoints
	conservationAmount := totalRevenue * heritage.ConservationShare / schema.TotalShareBasisPoints
	investorAmount := totalRevenue - communityAmount - conservationAmount

	if communityAmount > 0 {
		if err := s.ledger.SendPayment(communityAmount, s.treasury, heritage.CommunitySteward); err != nil {
			return err
		}
	}

	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventRevenueDistributed, caller, map[string]interface{}{
		"community":    communityAmount,
		"conservation": conservationAmount,
		"investor":     investorAmount,
	})
	return nil
}

// UpdateRevenueShares reconfigures the distribution model; shares must sum
// to 10000 basis points.
func (s *Bolireg) UpdateRevenueShares(caller, assetId string, communityShare, investorShare, conservationShare uint64) error {
	if communityShare+investorShare+conservationShare != schema.TotalShareBasisPoints {
		return fmt.Errorf("%w: shares must total 10000 basis points", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	heritage := st.Heritage
	if heritage == nil {
		return fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return fmt.Errorf("%w: only the creator or community steward can update shares", schema.ErrUnauthorized)
	}

	heritage.CommunityShare = communityShare
	heritage.InvestorShare = investorShare
	heritage.ConservationShare = conservationShare
	st.Record.LastUpdated = s.ledger.Now()
	return s.saveState(st)
}
