package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

// VerdictCache keeps recently served verdicts in memory. Verdicts are keyed by block
// hash, so an entry only goes stale when the block is re-verified.
type VerdictCache struct {
	cache   *bigcache.BigCache
	metrics CacheMetrics
}

// NewVerdictCache builds a cache whose entries live for ttl.
func NewVerdictCache(ctx context.Context, ttl time.Duration, maxSizeMB int, metrics CacheMetrics) (*VerdictCache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.HardMaxCacheSize = maxSizeMB
	cfg.MaxEntrySize = 512
	cfg.Verbose = false

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create verdict cache: %w", err)
	}
	return &VerdictCache{cache: cache, metrics: metrics}, nil
}

// Get returns the cached verdict for hash.
func (c *VerdictCache) Get(coin model.Coin, network model.Network, hash string) (*model.BlockVerdict, bool) {
	raw, err := c.cache.Get(cacheKey(coin, network, hash))
	if err != nil {
		c.metrics.ObserveLookup(false)
		return nil, false
	}

	var v model.BlockVerdict
	if err := json.Unmarshal(raw, &v); err != nil {
		_ = c.cache.Delete(cacheKey(coin, network, hash))
		c.metrics.ObserveLookup(false)
		return nil, false
	}
	c.metrics.ObserveLookup(true)
	return &v, true
}

// Set stores v under its own coin, network and hash.
func (c *VerdictCache) Set(v *model.BlockVerdict) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode verdict: %w", err)
	}
	return c.cache.Set(cacheKey(v.Coin, v.Network, v.Hash), raw)
}

// Close releases the cache's background cleaner.
func (c *VerdictCache) Close() error {
	return c.cache.Close()
}

func cacheKey(coin model.Coin, network model.Network, hash string) string {
	return string(coin) + "/" + string(network) + "/" + hash
}
