package reservas_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/reservas"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

func TestClient_FetchAll(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/canchas" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "nombre": "Cancha Central", "tipo": "futbol", "establecimientoId": 5, "activa": true},
			{"id": 2, "nombre": "Pista Azul", "tipo": "padel", "techada": true, "activa": false},
		})
	}))
	defer ts.Close()

	cl, err := reservas.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := cl.FetchAll(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].Tipo != "futbol" || got[0].EstablecimientoID == nil || *got[0].EstablecimientoID != 5 {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].EstablecimientoID != nil {
		t.Fatalf("expected nil establecimientoId, got %v", *got[1].EstablecimientoID)
	}
}

func TestClient_FetchByID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/canchas/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "nombre": "Cancha Siete", "tipo": "futbol", "activa": true})
	}))
	defer ts.Close()

	cl, err := reservas.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := cl.FetchByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 7 || got.Nombre != "Cancha Siete" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := cl.FetchByID(ctx, 0); err == nil {
		t.Fatalf("expected error for non-positive id")
	}
}

func TestClient_GetByID_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := reservas.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.GetByID(ctx, 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_NoRetryOn5xx(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(500)
	}))
	defer ts.Close()

	cl, err := reservas.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.FetchAll(ctx); err == nil {
		t.Fatalf("expected error for 500")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected a single attempt, got %d", n)
	}
}

func TestNew_RequiresBase(t *testing.T) {
	if _, err := reservas.New("", "k", 5); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
