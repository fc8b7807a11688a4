package bolireg

import (
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"

	"github.com/bolihq/bolireg/schema"
)

const defaultDistributionBatch = 50

// DistributeOwnershipTokens allocates ownership tokens pro-rata to project
// contributors, in batches so a single call stays bounded. The community
// steward's reserved share is carved out on the first call. Safe to call
// repeatedly until Done is true; already-served contributors are skipped and
// failed transfers are reported in Failed and retried on the next call.
func (s *Bolireg) DistributeOwnershipTokens(caller, assetId string, batchSize int) (schema.DistributionResult, error) {
	res := schema.DistributionResult{}
	if batchSize <= 0 {
		batchSize = defaultDistributionBatch
	}
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return res, err
	}
	heritage := st.Heritage
	if heritage == nil {
		return res, fmt.Errorf("%w: not a heritage asset", schema.ErrInvalidParams)
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleCommunity) {
		return res, fmt.Errorf("%w: only the creator or community steward can distribute tokens", schema.ErrUnauthorized)
	}
	if !heritage.HasOwnershipTokens {
		return res, fmt.Errorf("%w: ownership tokens have not been issued", schema.ErrTokensNotIssued)
	}
	res.TokenId = heritage.OwnershipTokenId

	communityTokens := schema.OwnershipTokenSupply * heritage.CommunityShare / schema.TotalShareBasisPoints
	if !heritage.CommunityAllocated {
		if communityTokens > 0 {
			if err := s.ledger.TransferToken(heritage.OwnershipTokenId, communityTokens, s.treasury, heritage.CommunitySteward); err != nil {
				return res, err
			}
		}
		heritage.CommunityAllocated = true
	}
	investorPool := schema.OwnershipTokenSupply - communityTokens

	pending := make([]string, 0, len(heritage.Contributors))
	for addr, c := range heritage.Contributors {
		if !c.Distributed {
			pending = append(pending, addr)
		}
	}
	sort.Strings(pending)
	batch := pending
	if len(batch) > batchSize {
		batch = batch[:batchSize]
	}

	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		transferred int
		failed      int
	)
	pool, err := ants.NewPool(8)
	if err != nil {
		return res, err
	}
	defer pool.Release()

	for _, addr := range batch {
		addr := addr
		contributor := heritage.Contributors[addr]
		share := prorataShare(contributor.Amount, investorPool, heritage.FundingPool)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if share > 0 {
				if terr := s.ledger.TransferToken(heritage.OwnershipTokenId, share, s.treasury, addr); terr != nil {
					log.Error("ownership token transfer", "assetId", assetId, "contributor", addr, "err", terr)
					mu.Lock()
					failed++
					mu.Unlock()
					return
				}
			}
			mu.Lock()
			contributor.Distributed = true
			transferred++
			mu.Unlock()
		}); err != nil {
			wg.Done()
			log.Error("submit distribution task", "assetId", assetId, "err", err)
			mu.Lock()
			failed++
			mu.Unlock()
		}
	}
	wg.Wait()

	remaining := 0
	for _, c := range heritage.Contributors {
		if !c.Distributed {
			remaining++
		}
	}

	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return res, err
	}

	res.Transferred = transferred
	res.Failed = failed
	res.Remaining = remaining
	res.Done = remaining == 0
	s.writeEvent(assetId, schema.EventTokensDistributed, caller, map[string]interface{}{
		"transferred": transferred,
		"failed":      failed,
		"remaining":   remaining,
		"done":        res.Done,
	})
	return res, nil
}

// prorataShare is floor(contribution * pool / totalRaised), computed in
// arbitrary precision so large pools cannot overflow uint64 arithmetic.
func prorataShare(contribution, pool, totalRaised uint64) uint64 {
	if totalRaised == 0 {
		return 0
	}
	share := decimal.NewFromUint64(contribution).
		Mul(decimal.NewFromUint64(pool)).
		Div(decimal.NewFromUint64(totalRaised)).
		Floor()
	return share.BigInt().Uint64()
}
