package contracts

import (
	"casalist-service/internal/app/models"
	"context"
)

// SearchEngine is the full-text index over the property collection. Search
// returns matching property ids plus a total count; rows are hydrated from
// the relational store by the caller.
type SearchEngine interface {
	SearchProperties(ctx context.Context, query, filter string, limit, offset int64) (ids []string, total int64, err error)
	IndexProperties(ctx context.Context, properties []models.Property) error
}
