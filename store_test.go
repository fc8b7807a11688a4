package bolireg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/schema"
)

func TestStoreAssetStateRoundTrip(t *testing.T) {
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	st := schema.AssetState{
		Record: schema.AssetRecord{
			AssetId:          "1001",
			Creator:          "alice",
			AssetType:        schema.AssetTypeBlueEconomy,
			JurisdictionCode: "FJ",
			Metadata:         "Qmdoc",
			ComplianceStatus: schema.StatusAuthorized,
		},
		Marine: &schema.MarineExtension{
			ResourceType:         "fishing-rights",
			SustainabilityRating: 80,
		},
	}
	require.NoError(t, store.SaveAssetState(st))

	got, err := store.LoadAssetState("1001")
	require.NoError(t, err)
	assert.Equal(t, st.Record, got.Record)
	require.NotNil(t, got.Marine)
	assert.Equal(t, uint64(80), got.Marine.SustainabilityRating)
	assert.Nil(t, got.Carbon)

	assert.True(t, store.ExistAsset("1001"))
	assert.False(t, store.ExistAsset("9999"))

	_, err = store.LoadAssetState("9999")
	assert.ErrorIs(t, err, schema.ErrNotExist)

	ids, err := store.AllAssetIds()
	require.NoError(t, err)
	assert.Equal(t, []string{"1001"}, ids)
}

func TestStorePlatformRoles(t *testing.T) {
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadPlatformRoles()
	assert.ErrorIs(t, err, schema.ErrNotExist)

	require.NoError(t, store.SavePlatformRoles(schema.PlatformRoles{
		Regulator:   "regulator",
		KycProvider: "kyc-pro",
	}))
	roles, err := store.LoadPlatformRoles()
	require.NoError(t, err)
	assert.Equal(t, "regulator", roles.Regulator)
	assert.Equal(t, "kyc-pro", roles.KycProvider)
}

func TestStoreJurisdictionRules(t *testing.T) {
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveJurisdictionRule("FJ", schema.AssetTypeCarbonCredit, `{"maxAmount":100}`))

	rules, err := store.LoadJurisdictionRule("FJ", schema.AssetTypeCarbonCredit)
	require.NoError(t, err)
	assert.Equal(t, `{"maxAmount":100}`, rules)

	// the same jurisdiction with another asset type is a distinct key
	_, err = store.LoadJurisdictionRule("FJ", schema.AssetTypeDisasterBond)
	assert.ErrorIs(t, err, schema.ErrNotExist)
}

func TestStoreKycEntries(t *testing.T) {
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveKycEntry("alice", schema.KycEntry{
		Status:    schema.KycApproved,
		ExpiresAt: 1800000000,
	}))
	entry, err := store.LoadKycEntry("alice")
	require.NoError(t, err)
	assert.Equal(t, schema.KycApproved, entry.Status)
	assert.Equal(t, int64(1800000000), entry.ExpiresAt)

	_, err = store.LoadKycEntry("bob")
	assert.ErrorIs(t, err, schema.ErrNotExist)
}
