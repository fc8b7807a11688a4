package bolireg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
)

const (
	testOperator = "operator"
	testTreasury = "treasury"
	testSink     = "retirement-sink"

	testBaseTime = int64(1700000000)
)

func newTestBolireg(t *testing.T) (*Bolireg, *ledger.InMemory) {
	t.Helper()
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	l := ledger.NewInMemory()
	l.SetNow(testBaseTime)
	s := &Bolireg{
		store:          store,
		ledger:         l,
		cache:          NewCache(),
		operator:       testOperator,
		treasury:       testTreasury,
		retirementSink: testSink,
		assetLockers:   make(map[string]*sync.Mutex),
	}
	return s, l
}

// approveIdentities wires the compliance gate open for the given identities.
func approveIdentities(t *testing.T, s *Bolireg, identities ...string) {
	t.Helper()
	require.NoError(t, s.InitializeCompliance(testOperator, "regulator", "kyc-pro"))
	for _, id := range identities {
		require.NoError(t, s.SetKycStatus("kyc-pro", id, schema.KycApproved, 0))
	}
}
