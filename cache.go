package bolireg

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/bolihq/bolireg/schema"
)

const cacheExpTime = 5 * time.Minute

// Cache keeps recently read asset states out of the kv store on the hot
// read path. Writes always invalidate.
type Cache struct {
	bc *bigcache.BigCache
}

func NewCache() *Cache {
	bc, err := bigcache.New(context.Background(), bigcache.DefaultConfig(cacheExpTime))
	if err != nil {
		panic(err)
	}
	return &Cache{bc: bc}
}

func (c *Cache) GetAsset(assetId string) (schema.AssetState, bool) {
	st := schema.AssetState{}
	if c == nil || c.bc == nil {
		return st, false
	}
	by, err := c.bc.Get(assetId)
	if err != nil {
		return st, false
	}
	if err := json.Unmarshal(by, &st); err != nil {
		return st, false
	}
	return st, true
}

func (c *Cache) SetAsset(st schema.AssetState) {
	if c == nil || c.bc == nil {
		return
	}
	by, err := json.Marshal(&st)
	if err != nil {
		return
	}
	if err := c.bc.Set(st.Record.AssetId, by); err != nil {
		log.Warn("cache set", "assetId", st.Record.AssetId, "err", err)
	}
}

func (c *Cache) InvalidateAsset(assetId string) {
	if c == nil || c.bc == nil {
		return
	}
	_ = c.bc.Delete(assetId)
}
