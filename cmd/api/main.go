package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/http_server"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/observability"
	redisad "github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/redis"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/reservas"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/app"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/shared"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/sports"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	registry, err := sports.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("sport registry invalid")
	}
	log.Info().Int("sports", len(registry)).Msg("sport registry loaded")

	backend, err := reservas.New(cfg.BackendBase, cfg.BackendKey, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reservas client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(backend, backend, registry, cache, cfg.CacheTTL, cfg.EnrichWorkers)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
