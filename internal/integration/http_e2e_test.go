//go:build integration || !unit

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	httpserver "github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/http_server"
	redisad "github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/redis"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/reservas"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/app"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/sports"
)

// fakeBackend plays the reservas service: /canchas and /complejos/{id}.
type fakeBackend struct {
	catalog []map[string]any
	venues  map[int64]map[string]any
	down    bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/canchas", func(w http.ResponseWriter, r *http.Request) {
		if b.down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(b.catalog)
	})
	mux.HandleFunc("/complejos/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/complejos/"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		v, ok := b.venues[id]
		if b.down || !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	})
	return mux
}

func TestHTTP_EndToEnd_FutbolListing(t *testing.T) {
	backend := &fakeBackend{
		catalog: []map[string]any{
			{"id": 1, "nombre": "Cancha Norte 1", "tipo": "futbol", "establecimientoId": 1, "activa": true, "precioPorHora": 20000},
			{"id": 2, "nombre": "Cancha Huérfana", "tipo": "futbol", "establecimientoId": 999, "activa": true},
			{"id": 3, "nombre": "Pileta Olímpica", "tipo": "natacion", "activa": true},
		},
		venues: map[int64]map[string]any{
			1: {"id": 1, "nombre": "Complejo Norte", "direccion": "Av. Alemania 1234", "lat": -38.73, "lng": -72.59},
		},
	}
	upstream := httptest.NewServer(backend.handler())
	t.Cleanup(upstream.Close)

	client, err := reservas.New(upstream.URL, "e2e-key", 100)
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	registry, err := sports.Load()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	q := app.NewQueryService(client, client, registry, cache, time.Minute, 4)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	api := httptest.NewServer(srv.Mux())
	t.Cleanup(api.Close)

	// 1) live listing: type-filtered, enriched, with a pin for the mapped venue
	res, err := http.Get(fmt.Sprintf("%s/v1/sports/futbol/canchas", api.URL))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var out app.Listing
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()

	if out.State.Phase != domain.PhaseReady {
		t.Fatalf("phase %s (%s)", out.State.Phase, out.State.ErrorMessage)
	}
	if len(out.State.Items) != 2 {
		t.Fatalf("expected the pileta filtered out, got %+v", out.State.Items)
	}
	first := out.State.Items[0]
	if first.Address != "Complejo Norte - Av. Alemania 1234" || first.Price != "20000" {
		t.Fatalf("unexpected enriched item: %+v", first)
	}
	// venue 999 is unknown everywhere except the futbol category default
	if !strings.Contains(out.State.Items[1].Address, "Complejo Deportivo Temuco") {
		t.Fatalf("expected category default address: %+v", out.State.Items[1])
	}
	if len(out.Pins) != 1 || out.Pins[0].Label != "Cancha Norte 1" {
		t.Fatalf("expected one map pin, got %+v", out.Pins)
	}

	// 2) backend goes down; the cached aggregation still serves Ready
	backend.down = true
	res, err = http.Get(fmt.Sprintf("%s/v1/sports/futbol/canchas", api.URL))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if out.State.Phase != domain.PhaseReady {
		t.Fatalf("expected cached ready listing, got %s", out.State.Phase)
	}

	// 3) explicit refresh bypasses the cache and degrades to the offline list
	res, err = http.Post(fmt.Sprintf("%s/v1/sports/futbol/refresh", api.URL), "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if out.State.Phase != domain.PhaseDegraded || out.State.ErrorMessage == "" {
		t.Fatalf("expected degraded state, got %+v", out.State)
	}
	if len(out.State.Items) == 0 || out.State.Items[0].Sport != "futbol" {
		t.Fatalf("expected the hand-authored fallback list, got %+v", out.State.Items)
	}

	// 4) backend recovers; a user-initiated refresh returns to Ready
	backend.down = false
	res, err = http.Post(fmt.Sprintf("%s/v1/sports/futbol/refresh", api.URL), "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if out.State.Phase != domain.PhaseReady || len(out.State.Items) != 2 {
		t.Fatalf("expected recovery, got %+v", out.State)
	}
}
