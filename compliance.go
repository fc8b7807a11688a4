package bolireg

import (
	"errors"
	"fmt"

	"github.com/bolihq/bolireg/schema"
	"github.com/tidwall/gjson"
)

// InitializeCompliance sets the platform's main regulator and KYC provider.
// Restricted to the platform operator.
func (s *Bolireg) InitializeCompliance(caller, mainRegulator, kycProvider string) error {
	if caller != s.operator {
		return fmt.Errorf("%w: only the operator can initialize compliance", schema.ErrUnauthorized)
	}
	if mainRegulator == "" || kycProvider == "" {
		return fmt.Errorf("%w: regulator and kyc provider are required", schema.ErrInvalidParams)
	}
	return s.store.SavePlatformRoles(schema.PlatformRoles{
		Regulator:   mainRegulator,
		KycProvider: kycProvider,
	})
}

func (s *Bolireg) platformRoles() schema.PlatformRoles {
	roles, err := s.store.LoadPlatformRoles()
	if err != nil {
		return schema.PlatformRoles{}
	}
	return roles
}

// RegisterJurisdictionRegulator binds one regulator identity to a
// jurisdiction code; last write wins.
func (s *Bolireg) RegisterJurisdictionRegulator(caller, jurisdictionCode, regulatorIdentity string) error {
	roles := s.platformRoles()
	if caller == "" || caller != roles.Regulator {
		return fmt.Errorf("%w: only the main regulator can register jurisdiction regulators", schema.ErrUnauthorized)
	}
	if jurisdictionCode == "" || regulatorIdentity == "" {
		return fmt.Errorf("%w: jurisdiction code and regulator are required", schema.ErrInvalidParams)
	}
	return s.store.SaveJurisdictionRegulator(jurisdictionCode, regulatorIdentity)
}

func (s *Bolireg) SetKycStatus(caller, identity, status string, expiresAt int64) error {
	roles := s.platformRoles()
	if caller == "" || (caller != roles.Regulator && caller != roles.KycProvider) {
		return fmt.Errorf("%w: only the kyc provider or main regulator can set kyc status", schema.ErrUnauthorized)
	}
	switch status {
	case schema.KycApproved, schema.KycPending, schema.KycRejected:
	default:
		return fmt.Errorf("%w: invalid kyc status %s", schema.ErrInvalidParams, status)
	}
	return s.store.SaveKycEntry(identity, schema.KycEntry{
		Status:    status,
		ExpiresAt: expiresAt,
	})
}

// GetKycStatus evaluates expiry lazily against ledger time; there is no
// background sweep.
func (s *Bolireg) GetKycStatus(identity string) string {
	entry, err := s.store.LoadKycEntry(identity)
	if err != nil {
		return schema.KycNotRegistered
	}
	if entry.ExpiresAt > 0 && s.ledger.Now() > entry.ExpiresAt {
		return schema.KycExpired
	}
	return entry.Status
}

func (s *Bolireg) SetJurisdictionRules(caller, jurisdictionCode, assetType, rules string) error {
	roles := s.platformRoles()
	isMainRegulator := caller != "" && caller == roles.Regulator
	jurisdictionRegulator, err := s.store.LoadJurisdictionRegulator(jurisdictionCode)
	isJurisdictionRegulator := err == nil && caller != "" && caller == jurisdictionRegulator
	if !isMainRegulator && !isJurisdictionRegulator {
		return fmt.Errorf("%w: only the main regulator or jurisdiction regulator can set rules", schema.ErrUnauthorized)
	}
	return s.store.SaveJurisdictionRule(jurisdictionCode, assetType, rules)
}

// GetJurisdictionRules returns the exact-match rules, falling back to the
// "ALL" wildcard jurisdiction for the same asset type.
func (s *Bolireg) GetJurisdictionRules(jurisdictionCode, assetType string) string {
	rules, err := s.store.LoadJurisdictionRule(jurisdictionCode, assetType)
	if err == nil {
		return rules
	}
	rules, err = s.store.LoadJurisdictionRule(schema.JurisdictionAll, assetType)
	if err == nil {
		return rules
	}
	return schema.NoRulesDefined
}

func (s *Bolireg) SetAssetComplianceStatus(caller, assetId, status, notes string) error {
	roles := s.platformRoles()
	if caller == "" || caller != roles.Regulator {
		return fmt.Errorf("%w: only the main regulator can set asset compliance status", schema.ErrUnauthorized)
	}
	switch status {
	case schema.ComplianceCompliant, schema.CompliancePending, schema.ComplianceNonCompliant, schema.ComplianceSuspended:
	default:
		return fmt.Errorf("%w: invalid compliance status %s", schema.ErrInvalidParams, status)
	}
	entry := schema.ComplianceEntry{
		Status:    status,
		Notes:     notes,
		UpdatedAt: s.ledger.Now(),
	}
	if err := s.store.SaveComplianceEntry(assetId, entry); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventComplianceUpdated, caller, map[string]interface{}{
		"status": status,
		"notes":  notes,
	})
	return nil
}

// GetAssetComplianceStatus returns the stored entry, or an "unknown" entry
// for assets predating compliance tracking.
func (s *Bolireg) GetAssetComplianceStatus(assetId string) schema.ComplianceEntry {
	entry, err := s.store.LoadComplianceEntry(assetId)
	if err != nil {
		return schema.ComplianceEntry{Status: schema.ComplianceUnknown}
	}
	return entry
}

// VerifyTransactionCompliance is the gate consulted before every transfer.
// Unknown asset compliance status passes; suspended or non-compliant does
// not. Jurisdiction rules may additionally disable transfers outright.
func (s *Bolireg) VerifyTransactionCompliance(identity, assetId, assetType, jurisdictionCode string) bool {
	if s.GetKycStatus(identity) != schema.KycApproved {
		return false
	}

	entry, err := s.store.LoadComplianceEntry(assetId)
	if err == nil {
		if entry.Status == schema.ComplianceSuspended || entry.Status == schema.ComplianceNonCompliant {
			return false
		}
	} else if !errors.Is(err, schema.ErrNotExist) {
		return false
	}

	rules := s.GetJurisdictionRules(jurisdictionCode, assetType)
	if rules != schema.NoRulesDefined && gjson.Valid(rules) {
		if gjson.Get(rules, "transfersDisabled").Bool() {
			return false
		}
	}
	return true
}
