package app

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/observability"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

// Aggregator runs the enrichment pipeline for one sport and owns its
// AggregationState. Transitions: Loading -> {Ready, Degraded}; Refresh
// re-enters Loading from either terminal state.
//
// Every pass takes a generation token; only the newest pass may commit its
// result, so a Refresh racing an older in-flight one wins (last-write-wins)
// and a cancelled pass never commits.
type Aggregator struct {
	catalog domain.CatalogClient
	venues  domain.VenueClient
	sport   domain.SportConfig
	workers int64

	mu    sync.Mutex
	gen   uint64
	state domain.AggregationState
}

func NewAggregator(catalog domain.CatalogClient, venues domain.VenueClient, sport domain.SportConfig, workers int) *Aggregator {
	if workers <= 0 {
		workers = 8
	}
	return &Aggregator{
		catalog: catalog,
		venues:  venues,
		sport:   sport,
		workers: int64(workers),
		state:   domain.AggregationState{Phase: domain.PhaseLoading},
	}
}

func (a *Aggregator) Sport() domain.SportConfig { return a.sport }

// State returns the last committed state.
func (a *Aggregator) State() domain.AggregationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Refresh runs one aggregation pass and returns its result. The shared state
// re-enters Loading for the duration of the pass and only the newest pass
// commits.
func (a *Aggregator) Refresh(ctx context.Context) domain.AggregationState {
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.state = domain.AggregationState{Phase: domain.PhaseLoading}
	a.mu.Unlock()

	st := a.runPass(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if ctx.Err() == nil && gen == a.gen {
		a.state = st
	}
	return st
}

func (a *Aggregator) runPass(ctx context.Context) domain.AggregationState {
	raw, err := a.catalog.FetchAll(ctx)
	if err != nil {
		log.Error().Str("sport", a.sport.Key).Err(err).Msg("catalog fetch failed, serving offline list")
		observability.ObservePass(a.sport.Key, "degraded")
		return domain.AggregationState{
			Phase:        domain.PhaseDegraded,
			Items:        cloneItems(a.sport.Fallback),
			ErrorMessage: "no se pudo obtener el catálogo de canchas: " + err.Error(),
		}
	}

	matched := FilterByType(raw, a.sport.AcceptedTypes)

	// Venues are memoized per pass only; fan out all enrichments and join
	// before exposing anything, so a partially enriched list never escapes.
	enricher := NewEnricher(newPassVenues(a.venues), a.sport)
	items := make([]domain.FacilityViewModel, len(matched))
	sem := semaphore.NewWeighted(a.workers)
	var wg sync.WaitGroup
	for i, rec := range matched {
		i, rec := i, rec
		if err := sem.Acquire(ctx, 1); err != nil {
			// context gone; the enricher resolves statically without I/O
			items[i] = ToViewModel(rec, enricher.Enrich(ctx, rec), a.sport)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			items[i] = ToViewModel(rec, enricher.Enrich(ctx, rec), a.sport)
		}()
	}
	wg.Wait()

	observability.ObservePass(a.sport.Key, "ready")
	return domain.AggregationState{Phase: domain.PhaseReady, Items: items}
}

func cloneItems(in []domain.FacilityViewModel) []domain.FacilityViewModel {
	out := make([]domain.FacilityViewModel, len(in))
	copy(out, in)
	return out
}

// passVenues memoizes venue lookups for the lifetime of one aggregation pass
// and collapses concurrent lookups of the same complejo into one call.
// Failures are not memoized; each facility falls back on its own.
type passVenues struct {
	inner domain.VenueClient
	sf    singleflight.Group

	mu   sync.Mutex
	seen map[int64]domain.Venue
}

func newPassVenues(inner domain.VenueClient) *passVenues {
	return &passVenues{inner: inner, seen: make(map[int64]domain.Venue)}
}

func (p *passVenues) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	p.mu.Lock()
	if v, ok := p.seen[id]; ok {
		p.mu.Unlock()
		return v, nil
	}
	p.mu.Unlock()

	v, err, _ := p.sf.Do(strconv.FormatInt(id, 10), func() (any, error) {
		got, err := p.inner.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.seen[id] = got
		p.mu.Unlock()
		return got, nil
	})
	if err != nil {
		return domain.Venue{}, err
	}
	return v.(domain.Venue), nil
}
