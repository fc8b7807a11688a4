package bolireg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bolihq/bolireg/rawdb"
	"github.com/bolihq/bolireg/schema"
)

// Store is the typed layer over the KV database holding canonical asset and
// compliance state.
type Store struct {
	KVDb rawdb.KeyValueDB
}

func NewBoltStore(boltDirPath string) (*Store, error) {
	boltDb, err := rawdb.NewBoltDB(boltDirPath)
	if err != nil {
		return nil, err
	}
	return &Store{KVDb: boltDb}, nil
}

func NewMongoStore(ctx context.Context, uri string) (*Store, error) {
	mongoDb, err := rawdb.NewMongoDB(ctx, uri)
	if err != nil {
		return nil, err
	}
	return &Store{KVDb: mongoDb}, nil
}

func (s *Store) Close() error {
	return s.KVDb.Close()
}

func (s *Store) SaveAssetState(st schema.AssetState) error {
	by, err := json.Marshal(&st)
	if err != nil {
		return err
	}
	return s.KVDb.Put(schema.AssetBucket, st.Record.AssetId, by)
}

func (s *Store) LoadAssetState(assetId string) (st schema.AssetState, err error) {
	by, err := s.KVDb.Get(schema.AssetBucket, assetId)
	if err != nil {
		return
	}
	err = json.Unmarshal(by, &st)
	return
}

func (s *Store) ExistAsset(assetId string) bool {
	return s.KVDb.Exist(schema.AssetBucket, assetId)
}

func (s *Store) AllAssetIds() ([]string, error) {
	return s.KVDb.GetAllKey(schema.AssetBucket)
}

func (s *Store) SavePlatformRoles(roles schema.PlatformRoles) error {
	by, err := json.Marshal(&roles)
	if err != nil {
		return err
	}
	return s.KVDb.Put(schema.PlatformBucket, schema.PlatformRolesKey, by)
}

func (s *Store) LoadPlatformRoles() (roles schema.PlatformRoles, err error) {
	by, err := s.KVDb.Get(schema.PlatformBucket, schema.PlatformRolesKey)
	if err != nil {
		return
	}
	err = json.Unmarshal(by, &roles)
	return
}

func (s *Store) SaveKycEntry(identity string, entry schema.KycEntry) error {
	by, err := json.Marshal(&entry)
	if err != nil {
		return err
	}
	return s.KVDb.Put(schema.KycBucket, identity, by)
}

func (s *Store) LoadKycEntry(identity string) (entry schema.KycEntry, err error) {
	by, err := s.KVDb.Get(schema.KycBucket, identity)
	if err != nil {
		return
	}
	err = json.Unmarshal(by, &entry)
	return
}

func (s *Store) SaveJurisdictionRegulator(code, identity string) error {
	return s.KVDb.Put(schema.JurisdictionRegulatorBucket, code, []byte(identity))
}

func (s *Store) LoadJurisdictionRegulator(code string) (string, error) {
	by, err := s.KVDb.Get(schema.JurisdictionRegulatorBucket, code)
	if err != nil {
		return "", err
	}
	return string(by), nil
}

func ruleKey(code, assetType string) string {
	return fmt.Sprintf("%s|%s", code, assetType)
}

func (s *Store) SaveJurisdictionRule(code, assetType, rules string) error {
	return s.KVDb.Put(schema.JurisdictionRuleBucket, ruleKey(code, assetType), []byte(rules))
}

func (s *Store) LoadJurisdictionRule(code, assetType string) (string, error) {
	by, err := s.KVDb.Get(schema.JurisdictionRuleBucket, ruleKey(code, assetType))
	if err != nil {
		return "", err
	}
	return string(by), nil
}

func (s *Store) SaveComplianceEntry(assetId string, entry schema.ComplianceEntry) error {
	by, err := json.Marshal(&entry)
	if err != nil {
		return err
	}
	return s.KVDb.Put(schema.AssetComplianceBucket, assetId, by)
}

func (s *Store) LoadComplianceEntry(assetId string) (entry schema.ComplianceEntry, err error) {
	by, err := s.KVDb.Get(schema.AssetComplianceBucket, assetId)
	if err != nil {
		return
	}
	err = json.Unmarshal(by, &entry)
	return
}

func (s *Store) ExistComplianceEntry(assetId string) bool {
	return s.KVDb.Exist(schema.AssetComplianceBucket, assetId)
}
