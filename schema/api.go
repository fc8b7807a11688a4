package schema

type RespErr struct {
	Err string `json:"error"`
}

type RespAssetId struct {
	AssetId string `json:"assetId"`
}

type RespStatus struct {
	Status string `json:"status"`
}

type CreateMarineAssetParams struct {
	ResourceName         string `json:"resourceName"`
	ResourceType         string `json:"resourceType"`
	MarineZone           string `json:"marineZone"`
	SustainabilityRating uint64 `json:"sustainabilityRating"`
	ValidityPeriod       int64  `json:"validityPeriod"` // seconds, 0 = perpetual
	DocumentsHash        string `json:"documentsHash"`
	GeoBoundary          string `json:"geoBoundary"`
	JurisdictionCode     string `json:"jurisdictionCode"`
}

type CreateCarbonProjectParams struct {
	Name                    string `json:"name"`
	UnitName                string `json:"unitName"`
	CreditType              string `json:"creditType"`
	CarbonRegistry          string `json:"carbonRegistry"`
	RegistryProjectId       string `json:"registryProjectId"`
	JurisdictionCode        string `json:"jurisdictionCode"`
	Geolocation             string `json:"geolocation"`
	VintageStart            int64  `json:"vintageStart"`
	VintageEnd              int64  `json:"vintageEnd"`
	TotalOffset             uint64 `json:"totalOffset"`
	VerificationMethodology string `json:"verificationMethodology"`
	MonitoringReportHash    string `json:"monitoringReportHash"`
	Verifier                string `json:"verifier"`
}

type CreateBondParams struct {
	Name             string `json:"name"`
	UnitName         string `json:"unitName"`
	BondType         string `json:"bondType"`
	TriggerType      string `json:"triggerType"`
	TriggerThreshold uint64 `json:"triggerThreshold"`
	CoverageAmount   uint64 `json:"coverageAmount"`
	MaturityDate     int64  `json:"maturityDate"`
	InterestRate     uint64 `json:"interestRate"` // basis points
	JurisdictionCode string `json:"jurisdictionCode"`
	Geolocation      string `json:"geolocation"`
	OracleProvider   string `json:"oracleProvider"`
	BondDocumentHash string `json:"bondDocumentHash"`
	TotalBondValue   uint64 `json:"totalBondValue"`
}

type CreateHeritageAssetParams struct {
	Name                 string `json:"name"`
	UnitName             string `json:"unitName"`
	HeritageType         string `json:"heritageType"`
	CulturalSignificance string `json:"culturalSignificance"`
	LegalStatus          string `json:"legalStatus"`
	JurisdictionCode     string `json:"jurisdictionCode"`
	Geolocation          string `json:"geolocation"`
	CommunitySteward     string `json:"communitySteward"`
	StewardshipModel     string `json:"stewardshipModel"`
	DocumentationHash    string `json:"documentationHash"`
}

type CreatePropertyParams struct {
	Name              string `json:"name"`
	UnitName          string `json:"unitName"`
	PropertyType      string `json:"propertyType"`
	LegalIdentifier   string `json:"legalIdentifier"`
	JurisdictionCode  string `json:"jurisdictionCode"`
	Geolocation       string `json:"geolocation"`
	ValuationAmount   uint64 `json:"valuationAmount"`
	LegalDocumentHash string `json:"legalDocumentHash"`
}

type CreateEnergyProjectParams struct {
	ProjectName           string `json:"projectName"`
	EnergyType            string `json:"energyType"`
	InstalledCapacity     uint64 `json:"installedCapacity"`
	EstimatedAnnualOutput uint64 `json:"estimatedAnnualOutput"`
	ProjectLifespan       int64  `json:"projectLifespan"`
	Location              string `json:"location"`
	Fractionalize         bool   `json:"fractionalize"`
	FractionCount         uint64 `json:"fractionCount"`
	TechnicalSpecsHash    string `json:"technicalSpecsHash"`
	JurisdictionCode      string `json:"jurisdictionCode"`
}

type CreateRestorationProjectParams struct {
	FundingTarget      uint64 `json:"fundingTarget"`
	ProjectDeadline    int64  `json:"projectDeadline"`
	ProjectPhasesCount uint64 `json:"projectPhasesCount"`
	ProjectVerifier    string `json:"projectVerifier"`
	ProjectDetailsHash string `json:"projectDetailsHash"`
}

type TransferParams struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// DistributionResult reports one batch of the pro-rata ownership distribution.
type DistributionResult struct {
	Done        bool   `json:"done"`
	Transferred int    `json:"transferred"` // contributors settled in this batch
	Failed      int    `json:"failed"`      // contributors whose transfer failed; retried next call
	Remaining   int    `json:"remaining"`
	TokenId     string `json:"tokenId"`
}
