package product

import (
	"context"
	"strings"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
)

type codeFinder interface {
	FindByCode(ctx context.Context, code string) (*models.Product, error)
}

// Cache is a read-through product lookup memo scoped to one calculation
// pass. It is deliberately not safe for concurrent use: each pass creates
// its own Cache so concurrent calculations stay isolated. Misses are cached
// too, since calculators often retry the same unknown code.
type Cache struct {
	finder codeFinder
	limit  int
	items  map[string]*models.Product
}

// NewCache wraps a repository with pass-scoped memoization. limit bounds the
// number of memoized codes; zero or negative means unbounded.
func NewCache(finder codeFinder, limit int) *Cache {
	return &Cache{
		finder: finder,
		limit:  limit,
		items:  make(map[string]*models.Product),
	}
}

// FindProduct implements the bill-of-materials product source.
func (c *Cache) FindProduct(ctx context.Context, code string) (*models.Product, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if product, ok := c.items[key]; ok {
		return product, nil
	}
	product, err := c.finder.FindByCode(ctx, key)
	if err != nil {
		return nil, err
	}
	if c.limit <= 0 || len(c.items) < c.limit {
		c.items[key] = product
	}
	return product, nil
}
