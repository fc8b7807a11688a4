package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/schema"
)

// executeTransfer is the single path for every ownership-changing transfer:
// sender authorization, compliance gate, ledger transfer, timestamp, audit.
// Domain validity checks (expiry, suspension, fractionalization) run before
// this in the calling module. The caller must hold the asset lock.
func (s *Bolireg) executeTransfer(caller string, st *schema.AssetState, tokenId string, amount uint64, from, to string) error {
	record := &st.Record
	if caller == "" || caller != from {
		return fmt.Errorf("%w: sender must be the asset owner", schema.ErrUnauthorized)
	}
	if !s.VerifyTransactionCompliance(from, record.AssetId, record.AssetType, record.JurisdictionCode) {
		metricComplianceDenied(record.AssetType)
		return fmt.Errorf("%w: transfer blocked by compliance gate", schema.ErrComplianceDenied)
	}

	if err := s.ledger.TransferToken(tokenId, amount, from, to); err != nil {
		return err
	}

	record.LastUpdated = s.ledger.Now()
	if err := s.saveState(*st); err != nil {
		return err
	}

	if s.wdb != nil && s.wdb.Db != nil {
		if err := s.wdb.InsertTransfer(schema.TransferRecord{
			AssetId: record.AssetId,
			TokenId: tokenId,
			From:    from,
			To:      to,
			Amount:  amount,
		}); err != nil {
			log.Error("insert transfer record", "assetId", record.AssetId, "err", err)
		}
	}
	s.writeEvent(record.AssetId, schema.EventAssetTransferred, caller, map[string]interface{}{
		"tokenId": tokenId,
		"from":    from,
		"to":      to,
		"amount":  amount,
	})
	return nil
}
