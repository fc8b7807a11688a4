package bolireg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/schema"
)

func heritageParams() schema.CreateHeritageAssetParams {
	return schema.CreateHeritageAssetParams{
		Name:                 "Old Navala Village",
		UnitName:             "NVLA",
		HeritageType:         "architectural",
		CulturalSignificance: "traditional bure construction",
		LegalStatus:          "protected-site",
		JurisdictionCode:     "FJ",
		Geolocation:          "-17.6,177.9",
		CommunitySteward:     "steward",
		StewardshipModel:     "community-trust",
		DocumentationHash:    "Qmheritage",
	}
}

func restorationParams() schema.CreateRestorationProjectParams {
	return schema.CreateRestorationProjectParams{
		FundingTarget:      10000,
		ProjectDeadline:    testBaseTime + 1000,
		ProjectPhasesCount: 3,
		ProjectVerifier:    "verifier",
		ProjectDetailsHash: "Qmproject",
	}
}

func newHeritageProject(t *testing.T, s *Bolireg) string {
	t.Helper()
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)
	require.NoError(t, s.CreateRestorationProject(testOperator, assetId, restorationParams()))
	return assetId
}

func TestCreateHeritageAsset(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)

	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, schema.StatusRegistered, st.Record.ComplianceStatus)
	require.NotNil(t, st.Heritage)
	assert.Equal(t, "steward", st.Heritage.CommunitySteward)
	assert.Equal(t, "documented", st.Heritage.ConservationStatus)
	assert.False(t, st.Heritage.RestorationRequired)
	assert.Equal(t, schema.DefaultCommunityShare, st.Heritage.CommunityShare)
	assert.True(t, st.Record.Authorities.Has(schema.RoleCommunity, "steward"))
}

func TestCreateRestorationProject(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId := newHeritageProject(t, s)

	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	heritage := st.Heritage
	assert.True(t, heritage.RestorationRequired)
	assert.Equal(t, "restoration-planned", heritage.ConservationStatus)
	assert.Equal(t, uint64(1), heritage.CurrentPhase)
	assert.Equal(t, schema.PhaseActive, heritage.Phases[1].Status)
	assert.Equal(t, schema.PhasePending, heritage.Phases[2].Status)
	assert.Equal(t, schema.PhasePending, heritage.Phases[3].Status)
	assert.True(t, st.Record.Authorities.Has(schema.RoleVerifier, "verifier"))

	// one project at a time
	err = s.CreateRestorationProject(testOperator, assetId, restorationParams())
	assert.ErrorIs(t, err, schema.ErrStateConflict)
}

func TestCreateRestorationProjectValidation(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)

	params := restorationParams()
	params.ProjectDeadline = testBaseTime
	assert.ErrorIs(t, s.CreateRestorationProject(testOperator, assetId, params), schema.ErrInvalidParams)

	params = restorationParams()
	params.ProjectPhasesCount = 0
	assert.ErrorIs(t, s.CreateRestorationProject(testOperator, assetId, params), schema.ErrInvalidParams)

	assert.ErrorIs(t, s.CreateRestorationProject("stranger", assetId, restorationParams()), schema.ErrUnauthorized)
}

func TestDefineProjectPhaseAllocation(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId := newHeritageProject(t, s)

	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 1, "foundation", "walls standing", 4000))
	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 2, "roofing", "roof complete", 4000))

	// third phase would push the total past the funding target
	err := s.DefineProjectPhase(testOperator, assetId, 3, "finishing", "site restored", 3000)
	assert.ErrorIs(t, err, schema.ErrAllocationExceeded)

	// redefining a phase replaces its previous allocation
	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 2, "roofing", "roof complete", 3000))
	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 3, "finishing", "site restored", 3000))

	assert.ErrorIs(t, s.DefineProjectPhase(testOperator, assetId, 4, "x", "y", 1), schema.ErrInvalidParams)
	assert.ErrorIs(t, s.DefineProjectPhase(testOperator, assetId, 1, "x", "y", 0), schema.ErrInvalidParams)
}

func TestDefineProjectPhaseAfterCompletion(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId := newHeritageProject(t, s)

	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 1, "foundation", "walls standing", 4000))
	require.NoError(t, s.VerifyPhaseCompletion("verifier", assetId, 1, "Qmphase1"))

	// a completed phase's allocation is historical and stays immutable
	err := s.DefineProjectPhase(testOperator, assetId, 1, "foundation", "walls standing", 2000)
	assert.ErrorIs(t, err, schema.ErrStateConflict)

	// the now-active next phase can still be shaped
	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 2, "roofing", "roof complete", 3000))
}

func TestContributeToProject(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := newHeritageProject(t, s)
	l.Credit("donor", 5000)

	require.NoError(t, s.ContributeToProject("donor", assetId, 3000))
	require.NoError(t, s.ContributeToProject("donor", assetId, 1000))

	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, uint64(4000), st.Heritage.FundingPool)
	assert.Equal(t, uint64(4000), st.Heritage.Contributors["donor"].Amount)
	assert.Equal(t, uint64(4000), l.NativeBalance(testTreasury))

	// past the deadline
	l.SetNow(testBaseTime + 1000)
	err = s.ContributeToProject("donor", assetId, 500)
	assert.ErrorIs(t, err, schema.ErrDeadlinePassed)
}

func TestContributeWithoutProject(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)
	l.Credit("donor", 1000)

	err = s.ContributeToProject("donor", assetId, 500)
	assert.ErrorIs(t, err, schema.ErrNoActiveProject)
}

func TestPhaseCompletionOrdering(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId := newHeritageProject(t, s)

	// only the verifier can verify
	err := s.VerifyPhaseCompletion(testOperator, assetId, 1, "Qmphase1")
	assert.ErrorIs(t, err, schema.ErrUnauthorized)

	// phase 2 cannot complete while phase 1 is active
	err = s.VerifyPhaseCompletion("verifier", assetId, 2, "Qmphase2")
	assert.ErrorIs(t, err, schema.ErrPhaseNotActive)

	require.NoError(t, s.VerifyPhaseCompletion("verifier", assetId, 1, "Qmphase1"))
	st, _ := s.GetAsset(assetId)
	assert.Equal(t, schema.PhaseCompleted, st.Heritage.Phases[1].Status)
	assert.Equal(t, schema.PhaseActive, st.Heritage.Phases[2].Status)
	assert.Equal(t, uint64(2), st.Heritage.CurrentPhase)

	// re-verifying a completed phase fails
	err = s.VerifyPhaseCompletion("verifier", assetId, 1, "Qmagain")
	assert.ErrorIs(t, err, schema.ErrPhaseNotActive)

	require.NoError(t, s.VerifyPhaseCompletion("verifier", assetId, 2, "Qmphase2"))
	require.NoError(t, s.VerifyPhaseCompletion("verifier", assetId, 3, "Qmphase3"))

	// final phase closes the project
	st, _ = s.GetAsset(assetId)
	assert.False(t, st.Heritage.RestorationRequired)
	assert.Equal(t, "restored", st.Heritage.ConservationStatus)
}

func TestReleasePhaseFunding(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := newHeritageProject(t, s)
	l.Credit("donor", 10000)

	require.NoError(t, s.DefineProjectPhase(testOperator, assetId, 1, "foundation", "walls standing", 4000))
	require.NoError(t, s.ContributeToProject("donor", assetId, 10000))

	// release requires a completed phase
	err := s.ReleasePhaseFunding(testOperator, assetId, 1, "contractor")
	assert.ErrorIs(t, err, schema.ErrPhaseNotCompleted)

	require.NoError(t, s.VerifyPhaseCompletion("verifier", assetId, 1, "Qmphase1"))
	require.NoError(t, s.ReleasePhaseFunding(testOperator, assetId, 1, "contractor"))
	assert.Equal(t, uint64(4000), l.NativeBalance("contractor"))

	st, _ := s.GetAsset(assetId)
	assert.Equal(t, schema.PhasePaid, st.Heritage.Phases[1].Status)

	// paid is terminal
	err = s.ReleasePhaseFunding(testOperator, assetId, 1, "contractor")
	assert.ErrorIs(t, err, schema.ErrPhaseNotCompleted)
}

func TestIssueOwnershipTokensGate(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := newHeritageProject(t, s)
	l.Credit("donor", 20000)

	// target not reached
	_, err := s.IssueOwnershipTokens(testOperator, assetId, "Navala Ownership", "NVLO")
	assert.ErrorIs(t, err, schema.ErrTargetNotReached)

	require.NoError(t, s.ContributeToProject("donor", assetId, 10000))
	tokenId, err := s.IssueOwnershipTokens(testOperator, assetId, "Navala Ownership", "NVLO")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenId)

	st, _ := s.GetAsset(assetId)
	assert.True(t, st.Heritage.HasOwnershipTokens)
	assert.Equal(t, tokenId, st.Heritage.OwnershipTokenId)

	// one-time gate
	_, err = s.IssueOwnershipTokens(testOperator, assetId, "Navala Ownership", "NVLO")
	assert.ErrorIs(t, err, schema.ErrTokensIssued)
}

func TestUpdateRevenueShares(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)

	err = s.UpdateRevenueShares("steward", assetId, 5000, 4000, 500)
	assert.ErrorIs(t, err, schema.ErrInvalidParams)

	require.NoError(t, s.UpdateRevenueShares("steward", assetId, 5000, 4000, 1000))
	st, _ := s.GetAsset(assetId)
	assert.Equal(t, uint64(5000), st.Heritage.CommunityShare)
	assert.Equal(t, uint64(4000), st.Heritage.InvestorShare)
	assert.Equal(t, uint64(1000), st.Heritage.ConservationShare)
}

func TestDistributeRevenue(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)
	l.Credit(testTreasury, 100000)

	// default shares: 60% community, 30% investor, 10% conservation
	require.NoError(t, s.DistributeRevenue("steward", assetId, 10000))
	assert.Equal(t, uint64(6000), l.NativeBalance("steward"))

	assert.ErrorIs(t, s.DistributeRevenue("steward", assetId, 0), schema.ErrInvalidParams)
	assert.ErrorIs(t, s.DistributeRevenue("stranger", assetId, 100), schema.ErrUnauthorized)
}

func TestTransferStewardship(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)

	require.NoError(t, s.TransferStewardship("steward", assetId, "new-steward"))
	st, _ := s.GetAsset(assetId)
	assert.Equal(t, "new-steward", st.Heritage.CommunitySteward)
	assert.True(t, st.Record.Authorities.Has(schema.RoleCommunity, "new-steward"))
	assert.False(t, st.Record.Authorities.Has(schema.RoleCommunity, "steward"))

	// the old steward has no authority left
	err = s.TransferStewardship("steward", assetId, "steward")
	assert.ErrorIs(t, err, schema.ErrUnauthorized)
}

func TestRegisterAssetRevenue(t *testing.T) {
	s, _ := newTestBolireg(t)
	assetId, err := s.CreateHeritageAsset(testOperator, heritageParams())
	require.NoError(t, err)

	require.NoError(t, s.RegisterAssetRevenue("steward", assetId, 2500, "tourism"))
	st, _ := s.GetAsset(assetId)
	assert.Contains(t, st.Record.Metadata, "revenue:2500:tourism:")
}
