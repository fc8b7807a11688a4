package bolireg

import (
	"context"
	"encoding/json"
	"path"
	"sync"

	"github.com/bolihq/bolireg/config"
	"github.com/bolihq/bolireg/ledger"
	"github.com/bolihq/bolireg/schema"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var log = NewLog("bolireg")

type Bolireg struct {
	store  *Store
	engine *gin.Engine
	wdb    *Wdb
	ledger ledger.Ledger
	cache  *Cache
	config *config.Config

	// operator administers the platform (compliance initialization);
	// treasury holds pooled funds (bond coverage, restoration pools);
	// retirementSink receives retired carbon credits.
	operator       string
	treasury       string
	retirementSink string

	kafka       map[string]*KWriter
	enableKafka bool

	lockerMu     sync.Mutex
	assetLockers map[string]*sync.Mutex
}

func New(
	boltDirPath, mysqlDsn string, sqliteDir string, useSqlite bool,
	mongoUri string, useMongo bool,
	configDSN string,
	operator, treasury, retirementSink string,
	tokenLedger ledger.Ledger,
	kafkaUri string, enableKafka bool,
) *Bolireg {
	var err error
	kvStore := &Store{}
	if useMongo {
		kvStore, err = NewMongoStore(context.Background(), mongoUri)
	} else {
		kvStore, err = NewBoltStore(boltDirPath)
	}
	if err != nil {
		panic(err)
	}

	wdb := &Wdb{}
	if useSqlite {
		wdb = NewSqliteDb(sqliteDir)
	} else {
		wdb = NewMysqlDb(mysqlDsn)
	}
	if err = wdb.Migrate(); err != nil {
		panic(err)
	}

	var boliConfig *config.Config
	if useSqlite {
		boliConfig = config.NewSqlite(path.Join(sqliteDir, "bolireg-config.sqlite"))
	} else {
		boliConfig = config.New(configDSN)
	}

	if tokenLedger == nil {
		tokenLedger = ledger.NewInMemory()
	}

	var kafkaWriters map[string]*KWriter
	if enableKafka {
		kafkaWriters, err = NewKWriters(kafkaUri)
		if err != nil {
			panic(err)
		}
	}

	return &Bolireg{
		store:          kvStore,
		engine:         gin.Default(),
		wdb:            wdb,
		ledger:         tokenLedger,
		cache:          NewCache(),
		config:         boliConfig,
		operator:       operator,
		treasury:       treasury,
		retirementSink: retirementSink,
		kafka:          kafkaWriters,
		enableKafka:    enableKafka,
		assetLockers:   make(map[string]*sync.Mutex),
	}
}

func (s *Bolireg) Run(port string) {
	s.config.Run()
	go s.runAPI(port)
}

func (s *Bolireg) Close() {
	if err := s.store.Close(); err != nil {
		log.Error("store close", "err", err)
	}
	if s.wdb != nil {
		s.wdb.Close()
	}
	if s.config != nil {
		s.config.Close()
	}
	for _, kw := range s.kafka {
		kw.Close()
	}
}

// lockAsset serializes read-modify-write sequences on one asset record.
// The ledger serializes its own calls; this guards our state between them.
func (s *Bolireg) lockAsset(assetId string) func() {
	s.lockerMu.Lock()
	l, ok := s.assetLockers[assetId]
	if !ok {
		l = &sync.Mutex{}
		s.assetLockers[assetId] = l
	}
	s.lockerMu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *Bolireg) writeEvent(assetId, kind, actor string, payload map[string]interface{}) {
	by, err := json.Marshal(payload)
	if err != nil {
		log.Error("marshal event payload", "assetId", assetId, "kind", kind, "err", err)
		return
	}
	event := schema.AssetEvent{
		EventId: uuid.NewString(),
		AssetId: assetId,
		Kind:    kind,
		Actor:   actor,
		Payload: datatypes.JSON(by),
	}
	if s.wdb != nil && s.wdb.Db != nil {
		if err := s.wdb.InsertEvent(event); err != nil {
			log.Error("insert asset event", "assetId", assetId, "kind", kind, "err", err)
		}
	}
	if s.enableKafka {
		s.publishEvent(event)
	}
	metricAssetEvent(kind)
}
