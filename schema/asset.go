package schema

const (
	AssetTypeLandProperty    = "land-property"
	AssetTypeBlueEconomy     = "blue-economy"
	AssetTypeCarbonCredit    = "carbon-credit"
	AssetTypeRenewableEnergy = "renewable-energy"
	AssetTypeDisasterBond    = "disaster-bond"
	AssetTypeHeritageAsset   = "heritage-asset"

	// base asset status values; domain modules apply their own transitions
	StatusCreated    = "created"
	StatusAuthorized = "authorized"
	StatusVerified   = "verified"
	StatusRegistered = "registered"
	StatusActive     = "active"
	StatusSuspended  = "suspended"
	StatusMatured    = "matured"
	StatusPaid       = "paid"
	StatusCompleted  = "completed"

	MetadataDelimiter = "|"

	SecondsPerYear = 31536000

	// bond token pool: 1M units with 6 decimal places
	BondTokenSupply = uint64(1000000 * 1000000)

	// heritage ownership token pool, non-divisible
	OwnershipTokenSupply = uint64(1000000)

	DefaultCommunityShare    = uint64(6000) // basis points
	DefaultInvestorShare     = uint64(3000)
	DefaultConservationShare = uint64(1000)
	TotalShareBasisPoints    = uint64(10000)
)

// roles checked by the authorization predicate
const (
	RoleCreator   = "creator"
	RoleVerifier  = "verifier"
	RoleOracle    = "oracle"
	RoleCommunity = "community"
)

// AssetRecord is the canonical per-asset state shared by all domain modules.
type AssetRecord struct {
	AssetId          string `json:"assetId"`
	Creator          string `json:"creator"`
	AssetType        string `json:"assetType"`
	Geolocation      string `json:"geolocation"`
	JurisdictionCode string `json:"jurisdictionCode"`
	Metadata         string `json:"metadata"` // append-only pipe-delimited log
	ComplianceStatus string `json:"complianceStatus"`
	LastUpdated      int64  `json:"lastUpdated"`

	Authorities Authorities `json:"authorities"`
}

// Authorities generalizes the original single-creator authority to role sets.
type Authorities struct {
	Creators   []string `json:"creators"`
	Verifiers  []string `json:"verifiers,omitempty"`
	Oracles    []string `json:"oracles,omitempty"`
	Stewards   []string `json:"stewards,omitempty"` // community stewards
}

func (a Authorities) Has(role, identity string) bool {
	var set []string
	switch role {
	case RoleCreator:
		set = a.Creators
	case RoleVerifier:
		set = a.Verifiers
	case RoleOracle:
		set = a.Oracles
	case RoleCommunity:
		set = a.Stewards
	}
	for _, id := range set {
		if id == identity {
			return true
		}
	}
	return false
}

// AssetState is the unit of storage: one record plus its domain extension,
// created atomically and mutated under the per-asset lock.
type AssetState struct {
	Record AssetRecord `json:"record"`

	Marine   *MarineExtension   `json:"marine,omitempty"`
	Carbon   *CarbonExtension   `json:"carbon,omitempty"`
	Bond     *BondExtension     `json:"bond,omitempty"`
	Heritage *HeritageExtension `json:"heritage,omitempty"`
	Property *PropertyExtension `json:"property,omitempty"`
	Energy   *EnergyExtension   `json:"energy,omitempty"`
}

type MarineExtension struct {
	ResourceType         string `json:"resourceType"`
	MarineZone           string `json:"marineZone"`
	SustainabilityRating uint64 `json:"sustainabilityRating"` // 1-100
	ExpirationDate       int64  `json:"expirationDate"`       // 0 = perpetual
}

type CarbonExtension struct {
	CreditType              string `json:"creditType"`
	CarbonRegistry          string `json:"carbonRegistry"`
	RegistryProjectId       string `json:"registryProjectId"`
	VintageStart            int64  `json:"vintageStart"`
	VintageEnd              int64  `json:"vintageEnd"`
	TotalOffset             uint64 `json:"totalOffset"` // tonnes CO2
	RemainingOffset         uint64 `json:"remainingOffset"`
	VerificationMethodology string `json:"verificationMethodology"`
	Verifier                string `json:"verifier"`
}

type BondExtension struct {
	BondName         string `json:"bondName"`
	BondType         string `json:"bondType"`
	TriggerType      string `json:"triggerType"`
	TriggerThreshold uint64 `json:"triggerThreshold"`
	CoverageAmount   uint64 `json:"coverageAmount"`
	MaturityDate     int64  `json:"maturityDate"`
	InterestRate     uint64 `json:"interestRate"` // basis points
	IssueDate        int64  `json:"issueDate"`
	IsTriggered      bool   `json:"isTriggered"`
	OracleProvider   string `json:"oracleProvider"`
	TotalBondValue   uint64 `json:"totalBondValue"`
	BondholdersCount uint64 `json:"bondholdersCount"`

	Bondholders map[string]uint64 `json:"bondholders"` // identity -> invested amount
}

const (
	PhasePending   = "pending"
	PhaseActive    = "active"
	PhaseCompleted = "completed"
	PhasePaid      = "paid"
)

type ProjectPhase struct {
	Description       string `json:"description"`
	MilestoneCriteria string `json:"milestoneCriteria"`
	Funding           uint64 `json:"funding"`
	Status            string `json:"status"`
}

type Contributor struct {
	Amount      uint64 `json:"amount"`
	Distributed bool   `json:"distributed"` // ownership tokens sent
}

type HeritageExtension struct {
	HeritageType         string `json:"heritageType"`
	CulturalSignificance string `json:"culturalSignificance"`
	LegalStatus          string `json:"legalStatus"`
	CommunitySteward     string `json:"communitySteward"`
	StewardshipModel     string `json:"stewardshipModel"`
	RestorationRequired  bool   `json:"restorationRequired"`
	ConservationStatus   string `json:"conservationStatus"`

	FundingPool     uint64 `json:"fundingPool"`
	FundingTarget   uint64 `json:"fundingTarget"`
	ProjectDeadline int64  `json:"projectDeadline"`
	ProjectPhases   uint64 `json:"projectPhases"`
	CurrentPhase    uint64 `json:"currentPhase"`
	ProjectVerifier string `json:"projectVerifier"`

	Phases       map[uint64]*ProjectPhase `json:"phases,omitempty"`
	Contributors map[string]*Contributor  `json:"contributors,omitempty"`

	OwnershipTokenId   string `json:"ownershipTokenId,omitempty"`
	HasOwnershipTokens bool   `json:"hasOwnershipTokens"`
	CommunityAllocated bool   `json:"communityAllocated"` // community reserve transferred

	CommunityShare    uint64 `json:"communityShare"` // basis points
	InvestorShare     uint64 `json:"investorShare"`
	ConservationShare uint64 `json:"conservationShare"`
}

type PropertyExtension struct {
	PropertyType      string `json:"propertyType"`
	LegalIdentifier   string `json:"legalIdentifier"`
	ValuationAmount   uint64 `json:"valuationAmount"`
	ValuationDate     int64  `json:"valuationDate"`
	FractionalAssetId string `json:"fractionalAssetId,omitempty"`
	Fractionalized    bool   `json:"fractionalized"`
}

type EnergyExtension struct {
	EnergyType            string `json:"energyType"`
	InstalledCapacity     uint64 `json:"installedCapacity"`     // watts
	EstimatedAnnualOutput uint64 `json:"estimatedAnnualOutput"` // kWh
	ProjectLifespan       int64  `json:"projectLifespan"`       // seconds
	InstallationDate      int64  `json:"installationDate"`
	Fractionalized        bool   `json:"fractionalized"`
}
