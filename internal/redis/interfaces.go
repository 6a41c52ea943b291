package redis

import "context"

// CacheStoreInterface defines the interface for listing cache operations.
type CacheStoreInterface interface {
	GetFieldTripList(ctx context.Context, dest any) (bool, error)
	SetFieldTripList(ctx context.Context, listing any) error
	InvalidateFieldTripList(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var _ CacheStoreInterface = (*CacheStore)(nil)
