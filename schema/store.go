package schema

const (
	AssetBucket                 = "asset-state"
	KycBucket                   = "kyc-status"
	JurisdictionRegulatorBucket = "jurisdiction-regulator"
	JurisdictionRuleBucket      = "jurisdiction-rule"
	AssetComplianceBucket       = "asset-compliance"
	PlatformBucket              = "platform-roles"
)

// key of the single platform roles entry in PlatformBucket
const PlatformRolesKey = "roles"

// PlatformRoles holds the compliance gate's global authorities.
type PlatformRoles struct {
	Regulator   string `json:"regulator"`
	KycProvider string `json:"kycProvider"`
}
