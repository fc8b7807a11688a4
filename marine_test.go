package bolireg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/schema"
)

func marineParams() schema.CreateMarineAssetParams {
	return schema.CreateMarineAssetParams{
		ResourceName:         "Coral Reef Access",
		ResourceType:         "fishing-rights",
		MarineZone:           "EEZ-12",
		SustainabilityRating: 75,
		ValidityPeriod:       100,
		DocumentsHash:        "Qmdocs",
		GeoBoundary:          "-17.7,178.0",
		JurisdictionCode:     "FJ",
	}
}

func TestCreateMarineAsset(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateMarineAsset(testOperator, marineParams())
	require.NoError(t, err)

	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, schema.AssetTypeBlueEconomy, st.Record.AssetType)
	assert.Equal(t, schema.StatusAuthorized, st.Record.ComplianceStatus)
	assert.Equal(t, testOperator, st.Record.Creator)
	require.NotNil(t, st.Marine)
	assert.Equal(t, uint64(75), st.Marine.SustainabilityRating)
	assert.Equal(t, testBaseTime+100, st.Marine.ExpirationDate)
}

func TestCreateMarineAssetValidation(t *testing.T) {
	s, _ := newTestBolireg(t)

	_, err := s.CreateMarineAsset("stranger", marineParams())
	assert.ErrorIs(t, err, schema.ErrUnauthorized)

	params := marineParams()
	params.SustainabilityRating = 0
	_, err = s.CreateMarineAsset(testOperator, params)
	assert.ErrorIs(t, err, schema.ErrInvalidParams)

	params.SustainabilityRating = 101
	_, err = s.CreateMarineAsset(testOperator, params)
	assert.ErrorIs(t, err, schema.ErrInvalidParams)
}

func TestMarineRightValidityBoundary(t *testing.T) {
	s, l := newTestBolireg(t)

	assetId, err := s.CreateMarineAsset(testOperator, marineParams())
	require.NoError(t, err)

	// expiration is base+100; valid strictly before it
	l.SetNow(testBaseTime + 99)
	valid, err := s.MarineRightValid(assetId)
	require.NoError(t, err)
	assert.True(t, valid)

	l.SetNow(testBaseTime + 100)
	valid, err = s.MarineRightValid(assetId)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestMarineRightPerpetual(t *testing.T) {
	s, l := newTestBolireg(t)

	params := marineParams()
	params.ValidityPeriod = 0
	assetId, err := s.CreateMarineAsset(testOperator, params)
	require.NoError(t, err)

	l.Advance(schema.SecondsPerYear * 100)
	valid, err := s.MarineRightValid(assetId)
	require.NoError(t, err)
	assert.True(t, valid)

	// extending a perpetual right is a no-op
	require.NoError(t, s.ExtendValidityPeriod(testOperator, assetId, 1000))
	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Marine.ExpirationDate)
}

func TestUpdateSustainabilityRating(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateMarineAsset(testOperator, marineParams())
	require.NoError(t, err)

	require.NoError(t, s.UpdateSustainabilityRating(testOperator, assetId, 90, "Qmassessment"))
	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, uint64(90), st.Marine.SustainabilityRating)
	assert.Contains(t, st.Record.Metadata, "assessment:Qmassessment")

	assert.ErrorIs(t, s.UpdateSustainabilityRating(testOperator, assetId, 101, "x"), schema.ErrInvalidParams)
	assert.ErrorIs(t, s.UpdateSustainabilityRating("stranger", assetId, 50, "x"), schema.ErrUnauthorized)
}

func TestExtendValidityPeriod(t *testing.T) {
	s, _ := newTestBolireg(t)

	assetId, err := s.CreateMarineAsset(testOperator, marineParams())
	require.NoError(t, err)

	require.NoError(t, s.ExtendValidityPeriod(testOperator, assetId, 50))
	st, err := s.GetAsset(assetId)
	require.NoError(t, err)
	assert.Equal(t, testBaseTime+150, st.Marine.ExpirationDate)

	assert.ErrorIs(t, s.ExtendValidityPeriod(testOperator, assetId, 0), schema.ErrInvalidParams)
}

func TestTransferMarineAsset(t *testing.T) {
	s, l := newTestBolireg(t)
	approveIdentities(t, s, testOperator)

	assetId, err := s.CreateMarineAsset(testOperator, marineParams())
	require.NoError(t, err)

	require.NoError(t, s.TransferMarineAsset(testOperator, assetId, testOperator, "bob", 1000))
	bal, err := s.ledger.Balance(assetId, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), bal)

	// sender must be the caller
	err = s.TransferMarineAsset("bob", assetId, testOperator, "carol", 10)
	assert.ErrorIs(t, err, schema.ErrUnauthorized)

	// expired rights cannot move
	l.SetNow(testBaseTime + 101)
	err = s.TransferMarineAsset(testOperator, assetId, testOperator, "bob", 10)
	assert.ErrorIs(t, err, schema.ErrRightExpired)
}
