package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
	"github.com/shopspring/decimal"
)

// Disaster bond lifecycle:
//
//	active -> triggered -> paid        (disaster path, terminal)
//	active -> matured                  (no-trigger path, opens claims)
//
// The trigger flip is one-way and guarded; maturity and trigger windows are
// evaluated lazily against ledger time.

// CreateBond issues a new disaster recovery bond.
func (s *Bolireg) CreateBond(caller string, params schema.CreateBondParams) (string, error) {
	if !s.canCreateAssets(caller) {
		return "", fmt.Errorf("%w: only a registered creator can create bonds", schema.ErrUnauthorized)
	}
	now := s.ledger.Now()
	if params.MaturityDate <= now {
		return "", fmt.Errorf("%w: maturity date must be in the future", schema.ErrInvalidParams)
	}
	if params.TotalBondValue < params.CoverageAmount {
		return "", fmt.Errorf("%w: bond value must cover trigger amount", schema.ErrInvalidParams)
	}

	note := fmt.Sprintf("Boli Disaster Recovery Bond: %s | Trigger: %s | Oracle: %s",
		params.BondType, params.TriggerType, params.OracleProvider)
	assetId, err := s.ledger.CreateToken(ledger.TokenConfig{
		Total:    schema.BondTokenSupply,
		Decimals: 6, // bond fractions
		Manager:  s.treasury,
		Reserve:  caller,
		Freeze:   s.treasury,
		Clawback: s.treasury,
		UnitName: params.UnitName,
		Name:     params.Name,
		URL:      "ipfs://" + params.BondDocumentHash,
		Note:     note,
	})
	if err != nil {
		return "", err
	}

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          assetId,
			Creator:          caller,
			AssetType:        schema.AssetTypeDisasterBond,
			Geolocation:      params.Geolocation,
			JurisdictionCode: params.JurisdictionCode,
			Metadata:         params.BondDocumentHash,
			ComplianceStatus: schema.StatusActive,
			LastUpdated:      now,
			Authorities: schema.Authorities{
				Creators: []string{caller},
				Oracles:  []string{caller},
			},
		},
		Bond: &schema.BondExtension{
			BondName:         params.Name,
			BondType:         params.BondType,
			TriggerType:      params.TriggerType,
			TriggerThreshold: params.TriggerThreshold,
			CoverageAmount:   params.CoverageAmount,
			MaturityDate:     params.MaturityDate,
			InterestRate:     params.InterestRate,
			IssueDate:        now,
			IsTriggered:      false,
			OracleProvider:   params.OracleProvider,
			TotalBondValue:   params.TotalBondValue,
			Bondholders:      make(map[string]uint64),
		},
	}
	if err := s.saveState(st); err != nil {
		return "", err
	}
	s.writeEvent(assetId, schema.EventAssetCreated, caller, map[string]interface{}{
		"assetType":        schema.AssetTypeDisasterBond,
		"bondType":         params.BondType,
		"triggerThreshold": params.TriggerThreshold,
		"coverageAmount":   params.CoverageAmount,
	})
	return assetId, nil
}

// InvestInBond records an investment and allocates bond tokens proportional
// to investment / total bond value.
func (s *Bolireg) InvestInBond(caller, assetId string, investmentAmount uint64) error {
	if investmentAmount == 0 {
		return fmt.Errorf("%w: investment must be positive", schema.ErrInvalidParams)
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	bond := st.Bond
	if bond == nil {
		return fmt.Errorf("%w: not a disaster bond", schema.ErrInvalidParams)
	}
	if st.Record.ComplianceStatus != schema.StatusActive {
		return fmt.Errorf("%w: bond is not active", schema.ErrStateConflict)
	}
	if bond.IsTriggered {
		return fmt.Errorf("%w: bond has been triggered", schema.ErrAlreadyTriggered)
	}
	if s.ledger.Now() >= bond.MaturityDate {
		return fmt.Errorf("%w: bond has matured", schema.ErrBondMatured)
	}

	tokensToIssue := bondTokenAllocation(investmentAmount, bond.TotalBondValue)
	if tokensToIssue == 0 {
		return fmt.Errorf("%w: investment too small for token allocation", schema.ErrInvalidParams)
	}

	// investment moves to the treasury, bond tokens come from the creator's
	// reserve
	if err := s.ledger.SendPayment(investmentAmount, caller, s.treasury); err != nil {
		return err
	}
	if err := s.ledger.TransferToken(assetId, tokensToIssue, st.Record.Creator, caller); err != nil {
		return err
	}

	if _, ok := bond.Bondholders[caller]; !ok {
		bond.BondholdersCount++
	}
	bond.Bondholders[caller] += investmentAmount
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}

	if s.wdb != nil && s.wdb.Db != nil {
		if err := s.wdb.UpsertBondPosition(schema.BondPositionRecord{
			AssetId: assetId,
			Holder:  caller,
			Amount:  bond.Bondholders[caller],
		}); err != nil {
			log.Error("upsert bond position", "assetId", assetId, "holder", caller, "err", err)
		}
	}
	s.writeEvent(assetId, schema.EventBondInvested, caller, map[string]interface{}{
		"amount": investmentAmount,
		"tokens": tokensToIssue,
	})
	return nil
}

// bondTokenAllocation computes floor(investment * supply / totalBondValue).
func bondTokenAllocation(investment, totalBondValue uint64) uint64 {
	tokens := decimal.NewFromUint64(investment).
		Mul(decimal.NewFromUint64(schema.BondTokenSupply)).
		Div(decimal.NewFromUint64(totalBondValue)).
		Floor()
	return tokens.BigInt().Uint64()
}

// ProcessTriggerEvent evaluates oracle data against the trigger threshold.
// Below-threshold values leave the bond untouched and return false; meeting
// the threshold flips the bond to triggered exactly once.
func (s *Bolireg) ProcessTriggerEvent(caller, assetId, oracleDataHash string, oracleValue uint64, oracleTimestamp int64) (bool, error) {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return false, err
	}
	bond := st.Bond
	if bond == nil {
		return false, fmt.Errorf("%w: not a disaster bond", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleOracle) {
		return false, fmt.Errorf("%w: only the creator or an authorized oracle can process triggers", schema.ErrUnauthorized)
	}
	if bond.IsTriggered {
		return false, fmt.Errorf("%w: bond already triggered", schema.ErrAlreadyTriggered)
	}
	if st.Record.ComplianceStatus != schema.StatusActive {
		return false, fmt.Errorf("%w: bond is not active", schema.ErrStateConflict)
	}

	if oracleValue < bond.TriggerThreshold {
		return false, nil
	}

	bond.IsTriggered = true
	appendMetadata(&st.Record, fmt.Sprintf("trigger:%s|value:%d|time:%d", oracleDataHash, oracleValue, oracleTimestamp))
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return false, err
	}
	s.writeEvent(assetId, schema.EventBondTriggered, caller, map[string]interface{}{
		"oracleValue": oracleValue,
		"threshold":   bond.TriggerThreshold,
	})
	return true, nil
}

// ProcessBondPayout pays the coverage amount to a beneficiary of a triggered
// bond; terminal for the disaster path.
func (s *Bolireg) ProcessBondPayout(caller, assetId, beneficiary string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	bond := st.Bond
	if bond == nil {
		return fmt.Errorf("%w: not a disaster bond", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return fmt.Errorf("%w: only the creator can process payouts", schema.ErrUnauthorized)
	}
	if !bond.IsTriggered {
		return fmt.Errorf("%w: bond not triggered", schema.ErrNotTriggered)
	}
	if st.Record.ComplianceStatus == schema.StatusPaid {
		return fmt.Errorf("%w: bond already paid", schema.ErrStateConflict)
	}

	if err := s.ledger.SendPayment(bond.CoverageAmount, s.treasury, beneficiary); err != nil {
		return err
	}

	st.Record.ComplianceStatus = schema.StatusPaid
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventBondPaidOut, caller, map[string]interface{}{
		"beneficiary": beneficiary,
		"amount":      bond.CoverageAmount,
	})
	return nil
}

// ProcessBondMaturity settles the bond status once the maturity date has
// passed: completed if the disaster path already paid out, matured otherwise
// (opening the claim path).
func (s *Bolireg) ProcessBondMaturity(caller, assetId string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	bond := st.Bond
	if bond == nil {
		return fmt.Errorf("%w: not a disaster bond", schema.ErrInvalidParams)
	}
	if !hasRole(st.Record, schema.RoleCreator, caller) {
		return fmt.Errorf("%w: only the creator can process maturity", schema.ErrUnauthorized)
	}
	if s.ledger.Now() < bond.MaturityDate {
		return fmt.Errorf("%w: bond has not matured yet", schema.ErrBondNotMatured)
	}

	if bond.IsTriggered {
		st.Record.ComplianceStatus = schema.StatusCompleted
	} else {
		st.Record.ComplianceStatus = schema.StatusMatured
	}
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventBondMatured, caller, map[string]interface{}{
		"triggered": bond.IsTriggered,
		"status":    st.Record.ComplianceStatus,
	})
	return nil
}

// ClaimBondValue pays a bondholder principal plus simple interest on a
// matured, untriggered bond. Single-claim: the bondholder entry is removed,
// so a repeat claim reads as not-found.
func (s *Bolireg) ClaimBondValue(caller, assetId string) (uint64, error) {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return 0, err
	}
	bond := st.Bond
	if bond == nil {
		return 0, fmt.Errorf("%w: not a disaster bond", schema.ErrInvalidParams)
	}
	if st.Record.ComplianceStatus != schema.StatusMatured {
		return 0, fmt.Errorf("%w: bond is not matured or has been paid", schema.ErrStateConflict)
	}
	if bond.IsTriggered {
		return 0, fmt.Errorf("%w: triggered bonds are paid to the beneficiary", schema.ErrStateConflict)
	}
	investment, ok := bond.Bondholders[caller]
	if !ok {
		return 0, fmt.Errorf("%w: %s holds no claim on this bond", schema.ErrNotBondholder, caller)
	}

	payout := investment + bondInterest(investment, bond.InterestRate, bond.MaturityDate-bond.IssueDate)
	if err := s.ledger.SendPayment(payout, s.treasury, caller); err != nil {
		return 0, err
	}

	delete(bond.Bondholders, caller)
	bond.BondholdersCount--
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return 0, err
	}

	if s.wdb != nil && s.wdb.Db != nil {
		if err := s.wdb.MarkBondPositionClaimed(assetId, caller); err != nil {
			log.Error("mark bond position claimed", "assetId", assetId, "holder", caller, "err", err)
		}
	}
	s.writeEvent(assetId, schema.EventBondClaimed, caller, map[string]interface{}{
		"principal": investment,
		"payout":    payout,
	})
	return payout, nil
}

// bondInterest computes simple interest:
// principal * (rate/10000) * (holdingPeriod/secondsPerYear), floored.
func bondInterest(principal, rateBasisPoints uint64, holdingPeriodSeconds int64) uint64 {
	if holdingPeriodSeconds <= 0 {
		return 0
	}
	interest := decimal.NewFromUint64(principal).
		Mul(decimal.NewFromUint64(rateBasisPoints)).
		Div(decimal.NewFromUint64(schema.TotalShareBasisPoints)).
		Mul(decimal.NewFromInt(holdingPeriodSeconds)).
		Div(decimal.NewFromInt(schema.SecondsPerYear)).
		Floor()
	return interest.BigInt().Uint64()
}
