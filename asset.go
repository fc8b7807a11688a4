package bolireg

import (
	"fmt"

	"github.com/bolihq/bolireg/schema"
)

// loadAsset fetches one asset state and verifies the caller-supplied id
// matches the stored record; several modules share one record slot per
// instance, so a mismatched id must read as not-found.
func (s *Bolireg) loadAsset(assetId string) (schema.AssetState, error) {
	st, err := s.store.LoadAssetState(assetId)
	if err != nil {
		return schema.AssetState{}, err
	}
	if st.Record.AssetId != assetId {
		return schema.AssetState{}, schema.ErrAssetIdMismatch
	}
	return st, nil
}

// saveState persists a mutated asset state and drops the cached copy.
func (s *Bolireg) saveState(st schema.AssetState) error {
	if err := s.store.SaveAssetState(st); err != nil {
		return err
	}
	s.cache.InvalidateAsset(st.Record.AssetId)
	return nil
}

// GetAsset returns the full state of one asset.
func (s *Bolireg) GetAsset(assetId string) (schema.AssetState, error) {
	if st, ok := s.cache.GetAsset(assetId); ok {
		return st, nil
	}
	st, err := s.loadAsset(assetId)
	if err != nil {
		return schema.AssetState{}, err
	}
	s.cache.SetAsset(st)
	return st, nil
}

// canCreateAssets reports whether the caller may create new asset records.
func (s *Bolireg) canCreateAssets(caller string) bool {
	if caller != "" && caller == s.operator {
		return true
	}
	if s.config != nil {
		for _, id := range s.config.Creators() {
			if id == caller {
				return true
			}
		}
	}
	return false
}

func hasRole(record schema.AssetRecord, role, identity string) bool {
	if role == schema.RoleCreator && identity == record.Creator {
		return true
	}
	return record.Authorities.Has(role, identity)
}

func hasAnyRole(record schema.AssetRecord, identity string, roles ...string) bool {
	for _, role := range roles {
		if hasRole(record, role, identity) {
			return true
		}
	}
	return false
}

// AppendMetadata concatenates a fragment onto the append-only metadata log.
// Fragment content is not validated; callers are trusted.
func (s *Bolireg) AppendMetadata(caller, assetId, fragment string) error {
	unlock := s.lockAsset(assetId)
	defer unlock()

	st, err := s.loadAsset(assetId)
	if err != nil {
		return err
	}
	if !hasAnyRole(st.Record, caller, schema.RoleCreator, schema.RoleVerifier, schema.RoleOracle, schema.RoleCommunity) {
		return fmt.Errorf("%w: caller may not annotate this asset", schema.ErrUnauthorized)
	}

	appendMetadata(&st.Record, fragment)
	st.Record.LastUpdated = s.ledger.Now()
	if err := s.saveState(st); err != nil {
		return err
	}
	s.writeEvent(assetId, schema.EventMetadataAppended, caller, map[string]interface{}{
		"fragment": fragment,
	})
	return nil
}

func appendMetadata(record *schema.AssetRecord, fragment string) {
	record.Metadata = record.Metadata + schema.MetadataDelimiter + fragment
}
