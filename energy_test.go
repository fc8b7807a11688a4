package bolireg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/schema"
)

func energyParams() schema.CreateEnergyProjectParams {
	return schema.CreateEnergyProjectParams{
		ProjectName:           "Nadi Solar Farm",
		EnergyType:            "solar",
		InstalledCapacity:     5000000, // 5 MW
		EstimatedAnnualOutput: 8000000, // kWh
		ProjectLifespan:       25 * schema.SecondsPerYear,
		Location:              "-17.8,177.4",
		Fractionalize:         true,
		FractionCount:         10000,
		TechnicalSpecsHash:    "Qmspecs",
		JurisdictionCode:      "FJ",
	}
}

func TestCreateEnergyProject(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateEnergyProject(testOperator, energyParams())
	require.NoError(t, err)

	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, schema.StatusActive, st.Record.ComplianceStatus)
	require.NotNil(t, st.Energy)
	assert.True(t, st.Energy.Fractionalized)
	assert.Equal(t, testBaseTime, st.Energy.InstallationDate)

	bal, _ := s.ledger.Balance(assetId, testOperator)
	assert.Equal(t, uint64(10000), bal)
}

func TestCreateEnergyProjectWhole(t *testing.T) {
	s, _ := newTestBolireg(t)

	params := energyParams()
	params.Fractionalize = false
	params.FractionCount = 0
	assetId, err := s.CreateEnergyProject(testOperator, params)
	require.NoError(t, err)

	bal, _ := s.ledger.Balance(assetId, testOperator)
	assert.Equal(t, uint64(1), bal)
}

func TestCreateEnergyProjectValidation(t *testing.T) {
	s, _ := newTestBolireg(t)

	params := energyParams()
	params.InstalledCapacity = 0
	_, err := s.CreateEnergyProject(testOperator, params)
	assert.ErrorIs(t, err, schema.ErrInvalidParams)

	params = energyParams()
	params.FractionCount = 0
	_, err = s.CreateEnergyProject(testOperator, params)
	assert.ErrorIs(t, err, schema.ErrInvalidParams)
}

func TestCreateEnergyProductionCertificates(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateEnergyProject(testOperator, energyParams())
	require.NoError(t, err)

	certId, err := s.CreateEnergyProductionCertificates(testOperator, assetId, 1200, "Qmmeter")
	require.NoError(t, err)
	assert.NotEqual(t, assetId, certId)

	bal, _ := s.ledger.Balance(certId, testOperator)
	assert.Equal(t, uint64(1200), bal)

	st, _ := s.GetAsset(assetId)
	assert.Contains(t, st.Record.Metadata, "production:"+certId+":1200:")

	_, err = s.CreateEnergyProductionCertificates("stranger", assetId, 100, "x")
	assert.ErrorIs(t, err, schema.ErrUnauthorized)
	_, err = s.CreateEnergyProductionCertificates(testOperator, assetId, 0, "x")
	assert.ErrorIs(t, err, schema.ErrInvalidParams)
}

func TestUpdateProjectPerformance(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateEnergyProject(testOperator, energyParams())
	require.NoError(t, err)

	require.NoError(t, s.UpdateProjectPerformance(testOperator, assetId, 7500000, "Qmperf"))
	st, _ := s.GetAsset(assetId)
	assert.Equal(t, uint64(7500000), st.Energy.EstimatedAnnualOutput)
	assert.Contains(t, st.Record.Metadata, "performance:7500000:Qmperf")
}

func TestTransferEnergyProject(t *testing.T) {
	s, _ := newTestBolireg(t)
	approveIdentities(t, s, testOperator)

	assetId, err := s.CreateEnergyProject(testOperator, energyParams())
	require.NoError(t, err)

	require.NoError(t, s.TransferEnergyProject(testOperator, assetId, testOperator, "buyer", 2500))
	bal, _ := s.ledger.Balance(assetId, "buyer")
	assert.Equal(t, uint64(2500), bal)
}

func TestTransferEnergyProjectWholeUnit(t *testing.T) {
	s, _ := newTestBolireg(t)
	approveIdentities(t, s, testOperator)

	params := energyParams()
	params.Fractionalize = false
	params.FractionCount = 0
	assetId, err := s.CreateEnergyProject(testOperator, params)
	require.NoError(t, err)

	err = s.TransferEnergyProject(testOperator, assetId, testOperator, "buyer", 3)
	assert.ErrorIs(t, err, schema.ErrInvalidParams)
	require.NoError(t, s.TransferEnergyProject(testOperator, assetId, testOperator, "buyer", 1))
}
