package bolireg

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bolihq/bolireg/schema"
)

const callerHeader = "X-Boli-Caller"

func (s *Bolireg) runAPI(port string) {
	r := s.engine
	r.Use(CORSMiddleware())
	if s.config != nil && s.config.GetApiLimit() > 0 {
		r.Use(LimiterMiddleware(s.config.GetApiLimit(), "M", s.config.GetIPWhiteList()))
	}
	v1 := r.Group("/")
	{
		// asset registry
		v1.GET("/asset/:assetId", s.getAsset)
		v1.GET("/asset/:assetId/events", s.getAssetEvents)
		v1.GET("/asset/:assetId/transfers", s.getAssetTransfers)
		v1.GET("/asset/:assetId/contributions", s.getAssetContributions)
		v1.POST("/asset/:assetId/metadata", s.postMetadata)

		// compliance
		v1.POST("/compliance/init", s.postComplianceInit)
		v1.POST("/compliance/regulator", s.postRegulator)
		v1.POST("/compliance/kyc", s.postKycStatus)
		v1.GET("/compliance/kyc/:identity", s.getKycStatus)
		v1.POST("/compliance/rules", s.postJurisdictionRules)
		v1.GET("/compliance/rules/:jurisdiction/:assetType", s.getJurisdictionRules)
		v1.POST("/compliance/asset", s.postAssetCompliance)
		v1.GET("/compliance/asset/:assetId", s.getAssetCompliance)
		v1.GET("/compliance/verify", s.getVerifyCompliance)

		// blue economy
		v1.POST("/marine", s.postCreateMarine)
		v1.GET("/marine/:assetId/valid", s.getMarineValid)
		v1.POST("/marine/:assetId/rating", s.postMarineRating)
		v1.POST("/marine/:assetId/extend", s.postMarineExtend)
		v1.POST("/marine/:assetId/transfer", s.postMarineTransfer)

		// carbon credits
		v1.POST("/carbon", s.postCreateCarbon)
		v1.POST("/carbon/:assetId/issue", s.postIssueCredits)
		v1.POST("/carbon/:assetId/retire", s.postRetireCredits)
		v1.POST("/carbon/:assetId/verification", s.postVerificationDocument)
		v1.POST("/carbon/:assetId/transfer", s.postTransferCredits)

		// disaster bonds
		v1.POST("/bond", s.postCreateBond)
		v1.POST("/bond/:assetId/invest", s.postInvestBond)
		v1.POST("/bond/:assetId/trigger", s.postBondTrigger)
		v1.POST("/bond/:assetId/payout", s.postBondPayout)
		v1.POST("/bond/:assetId/maturity", s.postBondMaturity)
		v1.POST("/bond/:assetId/claim", s.postBondClaim)

		// heritage assets
		v1.POST("/heritage", s.postCreateHeritage)
		v1.POST("/heritage/:assetId/documentation", s.postHeritageDocumentation)
		v1.POST("/heritage/:assetId/project", s.postRestorationProject)
		v1.POST("/heritage/:assetId/phase", s.postDefinePhase)
		v1.POST("/heritage/:assetId/contribute", s.postContribute)
		v1.POST("/heritage/:assetId/phase/verify", s.postVerifyPhase)
		v1.POST("/heritage/:assetId/phase/release", s.postReleaseFunding)
		v1.POST("/heritage/:assetId/tokens", s.postIssueOwnershipTokens)
		v1.POST("/heritage/:assetId/tokens/distribute", s.postDistributeTokens)
		v1.POST("/heritage/:assetId/revenue", s.postRegisterRevenue)
		v1.POST("/heritage/:assetId/revenue/distribute", s.postDistributeRevenue)
		v1.POST("/heritage/:assetId/shares", s.postUpdateShares)
		v1.POST("/heritage/:assetId/steward", s.postTransferStewardship)

		// land property
		v1.POST("/property", s.postCreateProperty)
		v1.POST("/property/:assetId/fractionalize", s.postFractionalize)
		v1.POST("/property/:assetId/valuation", s.postValuation)
		v1.POST("/property/:assetId/legal", s.postLegalDocumentation)
		v1.POST("/property/:assetId/transfer", s.postTransferProperty)

		// renewable energy
		v1.POST("/energy", s.postCreateEnergy)
		v1.POST("/energy/:assetId/certificates", s.postEnergyCertificates)
		v1.POST("/energy/:assetId/performance", s.postEnergyPerformance)
		v1.POST("/energy/:assetId/transfer", s.postTransferEnergy)
	}

	if err := r.Run(port); err != nil {
		panic(err)
	}
}

func caller(c *gin.Context) string {
	return c.GetHeader(callerHeader)
}

// opErrorResponse maps domain sentinels onto http statuses; anything
// unrecognized is a server fault.
func opErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schema.ErrNotExist), errors.Is(err, schema.ErrNotFound),
		errors.Is(err, schema.ErrAssetIdMismatch):
		c.JSON(http.StatusNotFound, schema.RespErr{Err: err.Error()})
	case errors.Is(err, schema.ErrUnauthorized):
		c.JSON(http.StatusForbidden, schema.RespErr{Err: err.Error()})
	case errors.Is(err, schema.ErrComplianceDenied):
		c.JSON(http.StatusForbidden, schema.RespErr{Err: err.Error()})
	case errors.Is(err, schema.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, schema.RespErr{Err: err.Error()})
	case errors.Is(err, schema.ErrStateConflict), errors.Is(err, schema.ErrAlreadyTriggered),
		errors.Is(err, schema.ErrNotTriggered), errors.Is(err, schema.ErrBondNotMatured),
		errors.Is(err, schema.ErrBondMatured), errors.Is(err, schema.ErrNotBondholder),
		errors.Is(err, schema.ErrRightExpired), errors.Is(err, schema.ErrNoActiveProject),
		errors.Is(err, schema.ErrDeadlinePassed), errors.Is(err, schema.ErrPhaseNotActive),
		errors.Is(err, schema.ErrPhaseNotCompleted), errors.Is(err, schema.ErrAllocationExceeded),
		errors.Is(err, schema.ErrTokensIssued), errors.Is(err, schema.ErrTokensNotIssued),
		errors.Is(err, schema.ErrTargetNotReached), errors.Is(err, schema.ErrFractionalized),
		errors.Is(err, schema.ErrNotFractionalized), errors.Is(err, schema.ErrTransferSuspended),
		errors.Is(err, schema.ErrInsufficientCredits):
		c.JSON(http.StatusConflict, schema.RespErr{Err: err.Error()})
	default:
		internalErrorResponse(c, err.Error())
	}
}

func errorResponse(c *gin.Context, err string) {
	// client error
	c.JSON(http.StatusBadRequest, schema.RespErr{
		Err: err,
	})
}

func internalErrorResponse(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, schema.RespErr{
		Err: err,
	})
}

func (s *Bolireg) getAsset(c *gin.Context) {
	st, err := s.GetAsset(c.Param("assetId"))
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func queryLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return limit
}

func (s *Bolireg) getAssetEvents(c *gin.Context) {
	events, err := s.wdb.GetEvents(c.Param("assetId"), queryLimit(c))
	if err != nil {
		internalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Bolireg) getAssetTransfers(c *gin.Context) {
	transfers, err := s.wdb.GetTransfers(c.Param("assetId"), queryLimit(c))
	if err != nil {
		internalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, transfers)
}

func (s *Bolireg) getAssetContributions(c *gin.Context) {
	contributions, err := s.wdb.GetContributions(c.Param("assetId"), queryLimit(c))
	if err != nil {
		internalErrorResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, contributions)
}

func (s *Bolireg) postMetadata(c *gin.Context) {
	body := struct {
		Fragment string `json:"fragment"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.AppendMetadata(caller(c), c.Param("assetId"), body.Fragment); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postComplianceInit(c *gin.Context) {
	body := struct {
		MainRegulator string `json:"mainRegulator"`
		KycProvider   string `json:"kycProvider"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.InitializeCompliance(caller(c), body.MainRegulator, body.KycProvider); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postRegulator(c *gin.Context) {
	body := struct {
		JurisdictionCode string `json:"jurisdictionCode"`
		Regulator        string `json:"regulator"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.RegisterJurisdictionRegulator(caller(c), body.JurisdictionCode, body.Regulator); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postKycStatus(c *gin.Context) {
	body := struct {
		Identity  string `json:"identity"`
		Status    string `json:"status"`
		ExpiresAt int64  `json:"expiresAt"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.SetKycStatus(caller(c), body.Identity, body.Status, body.ExpiresAt); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) getKycStatus(c *gin.Context) {
	c.JSON(http.StatusOK, schema.RespStatus{Status: s.GetKycStatus(c.Param("identity"))})
}

func (s *Bolireg) postJurisdictionRules(c *gin.Context) {
	body := struct {
		JurisdictionCode string `json:"jurisdictionCode"`
		AssetType        string `json:"assetType"`
		Rules            string `json:"rules"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.SetJurisdictionRules(caller(c), body.JurisdictionCode, body.AssetType, body.Rules); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) getJurisdictionRules(c *gin.Context) {
	rules := s.GetJurisdictionRules(c.Param("jurisdiction"), c.Param("assetType"))
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (s *Bolireg) postAssetCompliance(c *gin.Context) {
	body := struct {
		AssetId string `json:"assetId"`
		Status  string `json:"status"`
		Notes   string `json:"notes"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.SetAssetComplianceStatus(caller(c), body.AssetId, body.Status, body.Notes); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) getAssetCompliance(c *gin.Context) {
	c.JSON(http.StatusOK, s.GetAssetComplianceStatus(c.Param("assetId")))
}

func (s *Bolireg) getVerifyCompliance(c *gin.Context) {
	allowed := s.VerifyTransactionCompliance(
		c.Query("identity"), c.Query("assetId"), c.Query("assetType"), c.Query("jurisdiction"))
	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}

func (s *Bolireg) postCreateMarine(c *gin.Context) {
	params := schema.CreateMarineAssetParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	assetId, err := s.CreateMarineAsset(caller(c), params)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: assetId})
}

func (s *Bolireg) getMarineValid(c *gin.Context) {
	valid, err := s.MarineRightValid(c.Param("assetId"))
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

func (s *Bolireg) postMarineRating(c *gin.Context) {
	body := struct {
		Rating         uint64 `json:"rating"`
		AssessmentHash string `json:"assessmentHash"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.UpdateSustainabilityRating(caller(c), c.Param("assetId"), body.Rating, body.AssessmentHash); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postMarineExtend(c *gin.Context) {
	body := struct {
		ExtensionPeriod int64 `json:"extensionPeriod"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.ExtendValidityPeriod(caller(c), c.Param("assetId"), body.ExtensionPeriod); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postMarineTransfer(c *gin.Context) {
	params := schema.TransferParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.TransferMarineAsset(caller(c), c.Param("assetId"), params.From, params.To, params.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postCreateCarbon(c *gin.Context) {
	params := schema.CreateCarbonProjectParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	assetId, err := s.CreateCarbonProject(caller(c), params)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: assetId})
}

func (s *Bolireg) postIssueCredits(c *gin.Context) {
	body := struct {
		Recipient string `json:"recipient"`
		Amount    uint64 `json:"amount"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.IssueCredits(caller(c), c.Param("assetId"), body.Recipient, body.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postRetireCredits(c *gin.Context) {
	body := struct {
		Amount      uint64 `json:"amount"`
		Beneficiary string `json:"beneficiary"`
		Reason      string `json:"reason"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.RetireCredits(caller(c), c.Param("assetId"), body.Amount, body.Beneficiary, body.Reason); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postVerificationDocument(c *gin.Context) {
	body := struct {
		Verifier         string `json:"verifier"`
		VerificationDate int64  `json:"verificationDate"`
		DocumentHash     string `json:"documentHash"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.AddVerificationDocument(caller(c), c.Param("assetId"), body.Verifier, body.VerificationDate, body.DocumentHash); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postTransferCredits(c *gin.Context) {
	params := schema.TransferParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.TransferCredits(caller(c), c.Param("assetId"), params.From, params.To, params.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postCreateBond(c *gin.Context) {
	params := schema.CreateBondParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	assetId, err := s.CreateBond(caller(c), params)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: assetId})
}

func (s *Bolireg) postInvestBond(c *gin.Context) {
	body := struct {
		Amount uint64 `json:"amount"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.InvestInBond(caller(c), c.Param("assetId"), body.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postBondTrigger(c *gin.Context) {
	body := struct {
		OracleDataHash  string `json:"oracleDataHash"`
		OracleValue     uint64 `json:"oracleValue"`
		OracleTimestamp int64  `json:"oracleTimestamp"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	triggered, err := s.ProcessTriggerEvent(caller(c), c.Param("assetId"), body.OracleDataHash, body.OracleValue, body.OracleTimestamp)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"triggered": triggered})
}

func (s *Bolireg) postBondPayout(c *gin.Context) {
	body := struct {
		Beneficiary string `json:"beneficiary"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.ProcessBondPayout(caller(c), c.Param("assetId"), body.Beneficiary); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postBondMaturity(c *gin.Context) {
	if err := s.ProcessBondMaturity(caller(c), c.Param("assetId")); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postBondClaim(c *gin.Context) {
	payout, err := s.ClaimBondValue(caller(c), c.Param("assetId"))
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payout": payout})
}

func (s *Bolireg) postCreateHeritage(c *gin.Context) {
	params := schema.CreateHeritageAssetParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	assetId, err := s.CreateHeritageAsset(caller(c), params)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: assetId})
}

func (s *Bolireg) postHeritageDocumentation(c *gin.Context) {
	body := struct {
		DocumentationHash  string `json:"documentationHash"`
		DocumentType       string `json:"documentType"`
		ConservationStatus string `json:"conservationStatus"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.UpdateHeritageDocumentation(caller(c), c.Param("assetId"), body.DocumentationHash, body.DocumentType, body.ConservationStatus); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postRestorationProject(c *gin.Context) {
	params := schema.CreateRestorationProjectParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.CreateRestorationProject(caller(c), c.Param("assetId"), params); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postDefinePhase(c *gin.Context) {
	body := struct {
		PhaseNumber       uint64 `json:"phaseNumber"`
		Description       string `json:"description"`
		MilestoneCriteria string `json:"milestoneCriteria"`
		PhaseFunding      uint64 `json:"phaseFunding"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.DefineProjectPhase(caller(c), c.Param("assetId"), body.PhaseNumber, body.Description, body.MilestoneCriteria, body.PhaseFunding); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postContribute(c *gin.Context) {
	body := struct {
		Amount uint64 `json:"amount"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.ContributeToProject(caller(c), c.Param("assetId"), body.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postVerifyPhase(c *gin.Context) {
	body := struct {
		PhaseNumber   uint64 `json:"phaseNumber"`
		Documentation string `json:"documentation"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.VerifyPhaseCompletion(caller(c), c.Param("assetId"), body.PhaseNumber, body.Documentation); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postReleaseFunding(c *gin.Context) {
	body := struct {
		PhaseNumber uint64 `json:"phaseNumber"`
		Recipient   string `json:"recipient"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.ReleasePhaseFunding(caller(c), c.Param("assetId"), body.PhaseNumber, body.Recipient); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postIssueOwnershipTokens(c *gin.Context) {
	body := struct {
		TokenName     string `json:"tokenName"`
		TokenUnitName string `json:"tokenUnitName"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	tokenId, err := s.IssueOwnershipTokens(caller(c), c.Param("assetId"), body.TokenName, body.TokenUnitName)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokenId": tokenId})
}

func (s *Bolireg) postDistributeTokens(c *gin.Context) {
	body := struct {
		BatchSize int `json:"batchSize"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	res, err := s.DistributeOwnershipTokens(caller(c), c.Param("assetId"), body.BatchSize)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Bolireg) postRegisterRevenue(c *gin.Context) {
	body := struct {
		Amount uint64 `json:"amount"`
		Source string `json:"source"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.RegisterAssetRevenue(caller(c), c.Param("assetId"), body.Amount, body.Source); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postDistributeRevenue(c *gin.Context) {
	body := struct {
		Amount uint64 `json:"amount"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.DistributeRevenue(caller(c), c.Param("assetId"), body.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postUpdateShares(c *gin.Context) {
	body := struct {
		CommunityShare    uint64 `json:"communityShare"`
		InvestorShare     uint64 `json:"investorShare"`
		ConservationShare uint64 `json:"conservationShare"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.UpdateRevenueShares(caller(c), c.Param("assetId"), body.CommunityShare, body.InvestorShare, body.ConservationShare); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postTransferStewardship(c *gin.Context) {
	body := struct {
		NewSteward string `json:"newSteward"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.TransferStewardship(caller(c), c.Param("assetId"), body.NewSteward); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postCreateProperty(c *gin.Context) {
	params := schema.CreatePropertyParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	assetId, err := s.CreateProperty(caller(c), params)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: assetId})
}

func (s *Bolireg) postFractionalize(c *gin.Context) {
	body := struct {
		FractionCount uint64 `json:"fractionCount"`
		UnitName      string `json:"unitName"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	fractionalAssetId, err := s.FractionalizeProperty(caller(c), c.Param("assetId"), body.FractionCount, body.UnitName)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: fractionalAssetId})
}

func (s *Bolireg) postValuation(c *gin.Context) {
	body := struct {
		Valuation  uint64 `json:"valuation"`
		ReportHash string `json:"reportHash"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.UpdateValuation(caller(c), c.Param("assetId"), body.Valuation, body.ReportHash); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postLegalDocumentation(c *gin.Context) {
	body := struct {
		DocumentHash string `json:"documentHash"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.UpdateLegalDocumentation(caller(c), c.Param("assetId"), body.DocumentHash); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postTransferProperty(c *gin.Context) {
	params := schema.TransferParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.TransferProperty(caller(c), c.Param("assetId"), params.From, params.To, params.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postCreateEnergy(c *gin.Context) {
	params := schema.CreateEnergyProjectParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	assetId, err := s.CreateEnergyProject(caller(c), params)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespAssetId{AssetId: assetId})
}

func (s *Bolireg) postEnergyCertificates(c *gin.Context) {
	body := struct {
		ProducedMWh      uint64 `json:"producedMWh"`
		MeterReadingHash string `json:"meterReadingHash"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	certId, err := s.CreateEnergyProductionCertificates(caller(c), c.Param("assetId"), body.ProducedMWh, body.MeterReadingHash)
	if err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificateId": certId})
}

func (s *Bolireg) postEnergyPerformance(c *gin.Context) {
	body := struct {
		MeasuredAnnualOutput  uint64 `json:"measuredAnnualOutput"`
		PerformanceReportHash string `json:"performanceReportHash"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.UpdateProjectPerformance(caller(c), c.Param("assetId"), body.MeasuredAnnualOutput, body.PerformanceReportHash); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}

func (s *Bolireg) postTransferEnergy(c *gin.Context) {
	params := schema.TransferParams{}
	if err := c.ShouldBindJSON(&params); err != nil {
		errorResponse(c, err.Error())
		return
	}
	if err := s.TransferEnergyProject(caller(c), c.Param("assetId"), params.From, params.To, params.Amount); err != nil {
		opErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, schema.RespStatus{Status: "ok"})
}
