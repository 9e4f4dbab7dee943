package evalorder

import (
	"context"
	"sync"

	"github.com/vinetrade/pricecore/internal/catalog"
)

// Cache memoizes one Order per catalog version. Versions are immutable
// once activated, so a cached order can never go stale and is shared by
// every concurrent evaluation of sessions pinned to that version.
type Cache struct {
	mu     sync.Mutex
	orders map[string]*Order
}

// NewCache creates an empty order cache.
func NewCache() *Cache {
	return &Cache{orders: make(map[string]*Order)}
}

// Get returns the evaluation order for the version, building it on first
// use. The build runs under the cache lock; it is cheap (the graph is
// small) and running it once per version keeps the code simple.
func (c *Cache) Get(ctx context.Context, v *catalog.Version) (*Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if order, ok := c.orders[v.Name]; ok {
		return order, nil
	}
	order, err := Build(ctx, v)
	if err != nil {
		return nil, err
	}
	c.orders[v.Name] = order
	return order, nil
}
