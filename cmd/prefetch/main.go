// Command prefetch warms the aggregation cache for every registered sport so
// the first page view after a deploy is served hot.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/observability"
	redisad "github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/redis"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/reservas"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/app"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/shared"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/sports"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	registry, err := sports.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("sport registry invalid")
	}

	log.Info().
		Str("base", cfg.BackendBase).
		Int("workers", cfg.PrefetchWorkers).
		Int("sports", len(registry)).
		Msg("prefetch starting")

	backend, err := reservas.New(cfg.BackendBase, cfg.BackendKey, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reservas client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(backend, backend, registry, cache, cfg.CacheTTL, cfg.EnrichWorkers)

	sem := semaphore.NewWeighted(int64(cfg.PrefetchWorkers))
	var wg sync.WaitGroup

	for _, key := range q.Sports() {
		key := key

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(sport string) {
			defer wg.Done()
			defer sem.Release(1)

			out, err := q.Refresh(ctx, sport)
			if err != nil {
				log.Warn().Str("sport", sport).Err(err).Msg("prefetch failed")
				return
			}
			if out.State.Phase == domain.PhaseDegraded {
				log.Warn().Str("sport", sport).Str("error", out.State.ErrorMessage).Msg("prefetch degraded, not cached")
				return
			}
			log.Info().Str("sport", sport).Int("items", len(out.State.Items)).Msg("prefetch ok")
		}(key)
	}

	wg.Wait()
	log.Info().Msg("prefetch completed")
}
