package bolireg

import (
	"path"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/bolihq/bolireg/schema"
)

const sqliteName = "bolireg.sqlite"

// Wdb is the relational audit store: events, transfers, contributions and
// bond positions live here for querying; the kv store stays authoritative
// for asset state.
type Wdb struct {
	Db *gorm.DB
}

func NewMysqlDb(dsn string) *Wdb {
	logLevel := logger.Error
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:          logger.Default.LogMode(logLevel),
		CreateBatchSize: 200,
	})
	if err != nil {
		panic(err)
	}
	log.Info("connect mysql db success")
	return &Wdb{Db: db}
}

func NewSqliteDb(dbDir string) *Wdb {
	logLevel := logger.Error
	db, err := gorm.Open(sqlite.Open(path.Join(dbDir, sqliteName)), &gorm.Config{
		Logger:          logger.Default.LogMode(logLevel),
		CreateBatchSize: 200,
	})
	if err != nil {
		panic(err)
	}
	log.Info("connect sqlite db success")
	return &Wdb{Db: db}
}

func (w *Wdb) Migrate() error {
	return w.Db.AutoMigrate(
		&schema.AssetEvent{},
		&schema.TransferRecord{},
		&schema.ContributionRecord{},
		&schema.BondPositionRecord{},
	)
}

func (w *Wdb) Close() {
	if w.Db == nil {
		return
	}
	sqlDB, err := w.Db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (w *Wdb) InsertEvent(event schema.AssetEvent) error {
	return w.Db.Create(&event).Error
}

func (w *Wdb) InsertTransfer(record schema.TransferRecord) error {
	return w.Db.Create(&record).Error
}

func (w *Wdb) InsertContribution(record schema.ContributionRecord) error {
	return w.Db.Create(&record).Error
}

// UpsertBondPosition keeps one row per (asset, holder) with the cumulative
// invested amount.
func (w *Wdb) UpsertBondPosition(position schema.BondPositionRecord) error {
	position.UpdatedAt = time.Now()
	return w.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}, {Name: "holder"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&position).Error
}

func (w *Wdb) MarkBondPositionClaimed(assetId, holder string) error {
	return w.Db.Model(&schema.BondPositionRecord{}).
		Where("asset_id = ? and holder = ?", assetId, holder).
		Update("claimed", true).Error
}

func (w *Wdb) GetEvents(assetId string, limit int) ([]schema.AssetEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	res := make([]schema.AssetEvent, 0, limit)
	err := w.Db.Where("asset_id = ?", assetId).Order("id desc").Limit(limit).Find(&res).Error
	return res, err
}

func (w *Wdb) GetTransfers(assetId string, limit int) ([]schema.TransferRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	res := make([]schema.TransferRecord, 0, limit)
	err := w.Db.Where("asset_id = ?", assetId).Order("id desc").Limit(limit).Find(&res).Error
	return res, err
}

func (w *Wdb) GetContributions(assetId string, limit int) ([]schema.ContributionRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	res := make([]schema.ContributionRecord, 0, limit)
	err := w.Db.Where("asset_id = ?", assetId).Order("id desc").Limit(limit).Find(&res).Error
	return res, err
}

func (w *Wdb) GetBondPositions(assetId string) ([]schema.BondPositionRecord, error) {
	res := make([]schema.BondPositionRecord, 0)
	err := w.Db.Where("asset_id = ?", assetId).Find(&res).Error
	return res, err
}
