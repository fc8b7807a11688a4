package config

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/bolihq/bolireg/config/schema"
)

// Config holds operator-managed platform parameters refreshed from its own
// database: the creator allowlist, api rate limits and the ip whitelist.
type Config struct {
	wdb         *Wdb
	creators    []string
	ipWhiteList map[string]struct{}
	Param       schema.Param
	scheduler   *gocron.Scheduler
}

func New(configDSN string) *Config {
	wdb := NewWdb(configDSN)
	return newConfig(wdb)
}

func NewSqlite(dbPath string) *Config {
	wdb := NewSqliteWdb(dbPath)
	return newConfig(wdb)
}

func newConfig(wdb *Wdb) *Config {
	err := wdb.Migrate()
	if err != nil {
		panic(err)
	}
	c := &Config{
		wdb:       wdb,
		scheduler: gocron.NewScheduler(time.UTC),
	}
	c.updateCreators()
	c.updateIPWhiteList()
	c.updateParam()
	return c
}

func (c *Config) Creators() []string {
	return c.creators
}

func (c *Config) GetIPWhiteList() *map[string]struct{} {
	return &c.ipWhiteList
}

func (c *Config) GetApiLimit() int {
	return c.Param.ApiRateLimit
}

func (c *Config) GetDistributionBatch() int {
	return c.Param.DistributionBatch
}

func (c *Config) Run() {
	go c.runJobs()
}

func (c *Config) Close() {
	c.scheduler.Stop()
	c.wdb.Close()
}
