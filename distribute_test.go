package bolireg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

func fundedHeritageProject(t *testing.T, s *Bolireg, l *ledger.InMemory) string {
	t.Helper()
	assetId := newHeritageProject(t, s)
	l.Credit("donor-a", 5000)
	l.Credit("donor-b", 3000)
	l.Credit("donor-c", 2000)
	require.NoError(t, s.ContributeToProject("donor-a", assetId, 5000))
	require.NoError(t, s.ContributeToProject("donor-b", assetId, 3000))
	require.NoError(t, s.ContributeToProject("donor-c", assetId, 2000))
	return assetId
}

func TestDistributeOwnershipTokensRequiresIssuance(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := fundedHeritageProject(t, s, l)

	_, err := s.DistributeOwnershipTokens(testOperator, assetId, 0)
	assert.ErrorIs(t, err, schema.ErrTokensNotIssued)
}

func TestDistributeOwnershipTokensProRata(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := fundedHeritageProject(t, s, l)

	tokenId, err := s.IssueOwnershipTokens(testOperator, assetId, "Ownership", "OWN")
	require.NoError(t, err)

	res, err := s.DistributeOwnershipTokens(testOperator, assetId, 0)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, 3, res.Transferred)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, tokenId, res.TokenId)

	// community reserve: 60% of the 1M pool
	stewardBal, _ := s.ledger.Balance(tokenId, "steward")
	assert.Equal(t, uint64(600000), stewardBal)

	// investors split the remaining 400k pro-rata on a 10k pool
	balA, _ := s.ledger.Balance(tokenId, "donor-a")
	balB, _ := s.ledger.Balance(tokenId, "donor-b")
	balC, _ := s.ledger.Balance(tokenId, "donor-c")
	assert.Equal(t, uint64(200000), balA)
	assert.Equal(t, uint64(120000), balB)
	assert.Equal(t, uint64(80000), balC)
}

func TestDistributeOwnershipTokensBatched(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := fundedHeritageProject(t, s, l)

	_, err := s.IssueOwnershipTokens(testOperator, assetId, "Ownership", "OWN")
	require.NoError(t, err)

	res, err := s.DistributeOwnershipTokens(testOperator, assetId, 2)
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Equal(t, 2, res.Transferred)
	assert.Equal(t, 1, res.Remaining)

	res, err = s.DistributeOwnershipTokens(testOperator, assetId, 2)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, 1, res.Transferred)
	assert.Equal(t, 0, res.Remaining)

	// all settled: a third call moves nothing
	res, err = s.DistributeOwnershipTokens(testOperator, assetId, 2)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, 0, res.Transferred)

	// the community share went out exactly once
	st, _ := s.GetAsset(assetId)
	stewardBal, _ := s.ledger.Balance(st.Heritage.OwnershipTokenId, "steward")
	assert.Equal(t, uint64(600000), stewardBal)
}

func TestDistributeOwnershipTokensReportsFailures(t *testing.T) {
	s, l := newTestBolireg(t)
	assetId := fundedHeritageProject(t, s, l)

	tokenId, err := s.IssueOwnershipTokens(testOperator, assetId, "Ownership", "OWN")
	require.NoError(t, err)

	// drain part of the treasury pool so some investor transfers cannot settle
	require.NoError(t, s.ledger.TransferToken(tokenId, 100000, testTreasury, "elsewhere"))

	res, err := s.DistributeOwnershipTokens(testOperator, assetId, 0)
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.GreaterOrEqual(t, res.Failed, 1)
	assert.Equal(t, 3, res.Transferred+res.Failed)
	assert.Equal(t, res.Failed, res.Remaining)

	// restoring the pool lets a retry settle the rest
	require.NoError(t, s.ledger.TransferToken(tokenId, 100000, "elsewhere", testTreasury))
	res, err = s.DistributeOwnershipTokens(testOperator, assetId, 0)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 0, res.Remaining)
}

func TestProrataShare(t *testing.T) {
	assert.Equal(t, uint64(200000), prorataShare(5000, 400000, 10000))
	assert.Equal(t, uint64(0), prorataShare(5000, 400000, 0))
	// floors, never rounds up
	assert.Equal(t, uint64(133333), prorataShare(1, 400000, 3))
}
