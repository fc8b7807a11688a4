package schema

const (
	// kyc status values
	KycApproved      = "approved"
	KycPending       = "pending"
	KycRejected      = "rejected"
	KycExpired       = "expired"
	KycNotRegistered = "not_registered"

	// asset compliance status values
	ComplianceCompliant    = "compliant"
	CompliancePending      = "pending"
	ComplianceNonCompliant = "non_compliant"
	ComplianceSuspended    = "suspended"
	ComplianceUnknown      = "unknown"

	// wildcard jurisdiction for rules fallback
	JurisdictionAll = "ALL"

	NoRulesDefined = "no_rules_defined"
)

type KycEntry struct {
	Status    string `json:"status"`
	ExpiresAt int64  `json:"expiresAt"` // 0 = never expires
}

// ComplianceEntry replaces the original packed "status|notes|timestamp" string.
type ComplianceEntry struct {
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	UpdatedAt int64  `json:"updatedAt"`
}
