package bolireg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/schema"
)

func newTestWdb(t *testing.T) *Wdb {
	t.Helper()
	w := NewSqliteDb(t.TempDir())
	require.NoError(t, w.Migrate())
	t.Cleanup(w.Close)
	return w
}

func TestWdbEvents(t *testing.T) {
	w := newTestWdb(t)

	require.NoError(t, w.InsertEvent(schema.AssetEvent{
		EventId: "ev-1", AssetId: "1001", Kind: schema.EventAssetCreated, Actor: "alice",
	}))
	require.NoError(t, w.InsertEvent(schema.AssetEvent{
		EventId: "ev-2", AssetId: "1001", Kind: schema.EventAssetTransferred, Actor: "alice",
	}))
	require.NoError(t, w.InsertEvent(schema.AssetEvent{
		EventId: "ev-3", AssetId: "2002", Kind: schema.EventAssetCreated, Actor: "bob",
	}))

	events, err := w.GetEvents("1001", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// newest first
	assert.Equal(t, schema.EventAssetTransferred, events[0].Kind)

	events, err = w.GetEvents("1001", 1)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestWdbBondPositions(t *testing.T) {
	w := newTestWdb(t)

	require.NoError(t, w.UpsertBondPosition(schema.BondPositionRecord{
		AssetId: "1001", Holder: "alice", Amount: 100,
	}))
	require.NoError(t, w.UpsertBondPosition(schema.BondPositionRecord{
		AssetId: "1001", Holder: "alice", Amount: 250,
	}))

	positions, err := w.GetBondPositions("1001")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, uint64(250), positions[0].Amount)
	assert.False(t, positions[0].Claimed)

	require.NoError(t, w.MarkBondPositionClaimed("1001", "alice"))
	positions, err = w.GetBondPositions("1001")
	require.NoError(t, err)
	assert.True(t, positions[0].Claimed)
}

func TestWdbTransfersAndContributions(t *testing.T) {
	w := newTestWdb(t)

	require.NoError(t, w.InsertTransfer(schema.TransferRecord{
		AssetId: "1001", TokenId: "1001", From: "alice", To: "bob", Amount: 5,
	}))
	transfers, err := w.GetTransfers("1001", 0)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, "bob", transfers[0].To)

	require.NoError(t, w.InsertContribution(schema.ContributionRecord{
		AssetId: "1001", Contributor: "carol", Amount: 1000,
	}))
	contributions, err := w.GetContributions("1001", 0)
	require.NoError(t, err)
	require.Len(t, contributions, 1)
	assert.Equal(t, uint64(1000), contributions[0].Amount)
}
