package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"competitoranalyzer/internal/model"
)

const DefaultTTL = 30 * time.Minute

// ReportCache keeps finished reports keyed by requested URL.
type ReportCache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReportCache{store: gocache.New(ttl, ttl/2)}
}

func (c *ReportCache) Get(url string) (*model.Report, bool) {
	v, ok := c.store.Get(url)
	if !ok {
		return nil, false
	}
	report, ok := v.(*model.Report)
	return report, ok
}

func (c *ReportCache) Set(url string, report *model.Report) {
	c.store.SetDefault(url, report)
}

func (c *ReportCache) Len() int {
	return c.store.ItemCount()
}

func (c *ReportCache) Flush() {
	c.store.Flush()
}
