package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

var ErrUnknownSport = errors.New("unknown sport")

// Listing is what the rendering sink receives: the state plus map pins
// derived from it.
type Listing struct {
	Sport string                  `json:"sport"`
	State domain.AggregationState `json:"state"`
	Pins  []domain.MapPin         `json:"pins,omitempty"`
}

// QueryService is the read path over the per-sport aggregators. Ready
// aggregations are cached briefly so every page view doesn't hammer the
// backend; Degraded results are served but never cached, so a recovered
// backend is picked up on the next uncached request.
type QueryService struct {
	aggs     map[string]*Aggregator
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(catalog domain.CatalogClient, venues domain.VenueClient, sports map[string]domain.SportConfig, cache domain.Cache, ttl time.Duration, workers int) *QueryService {
	aggs := make(map[string]*Aggregator, len(sports))
	for key, cfg := range sports {
		aggs[key] = NewAggregator(catalog, venues, cfg, workers)
	}
	return &QueryService{aggs: aggs, cache: cache, cacheTTL: ttl}
}

// Sports returns the registered sport keys, sorted.
func (s *QueryService) Sports() []string {
	keys := make([]string, 0, len(s.aggs))
	for k := range s.aggs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Facilities returns the sport's current listing, running an aggregation
// pass on cache miss. The search term is applied downstream of the terminal
// state, without re-fetching.
func (s *QueryService) Facilities(ctx context.Context, sport, term string) (Listing, error) {
	agg, ok := s.aggs[sport]
	if !ok {
		return Listing{}, fmt.Errorf("%w: %s", ErrUnknownSport, sport)
	}

	key := cacheKey(sport)
	var st domain.AggregationState
	if hit, _ := s.cache.Get(ctx, key, &st); !hit {
		st = agg.Refresh(ctx)
		if st.Phase == domain.PhaseReady {
			_ = s.cache.Set(ctx, key, st, int(s.cacheTTL.Seconds()))
		}
	}
	return s.listing(sport, st, term), nil
}

// Refresh is the user-initiated retry: it evicts the cache entry and re-runs
// the pass from Loading, whatever the previous terminal state was.
func (s *QueryService) Refresh(ctx context.Context, sport string) (Listing, error) {
	agg, ok := s.aggs[sport]
	if !ok {
		return Listing{}, fmt.Errorf("%w: %s", ErrUnknownSport, sport)
	}

	key := cacheKey(sport)
	_ = s.cache.Del(ctx, key)
	st := agg.Refresh(ctx)
	if st.Phase == domain.PhaseReady {
		_ = s.cache.Set(ctx, key, st, int(s.cacheTTL.Seconds()))
	}
	return s.listing(sport, st, ""), nil
}

func (s *QueryService) listing(sport string, st domain.AggregationState, term string) Listing {
	st.Items = FilterBySearch(st.Items, term)
	return Listing{Sport: sport, State: st, Pins: BuildMapPins(st.Items)}
}

func cacheKey(sport string) string { return "agg:" + sport }
