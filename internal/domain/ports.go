package domain

import (
	"context"
	"errors"
)

// Outbound errors the clients translate HTTP statuses into.
var (
	ErrNotFound     = errors.New("reservas: not found")
	ErrUnauthorized = errors.New("reservas: unauthorized")
	ErrForbidden    = errors.New("reservas: forbidden")
)

// CatalogClient fetches raw facility records. It performs no retries and no
// fallback substitution; recovery belongs to the aggregator.
type CatalogClient interface {
	FetchAll(ctx context.Context) ([]RawFacility, error)
	FetchByID(ctx context.Context, id int64) (RawFacility, error)
}

// VenueClient resolves a complejo by id.
type VenueClient interface {
	GetByID(ctx context.Context, id int64) (Venue, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
