package app_test

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct {
	all  func(ctx context.Context) ([]domain.RawFacility, error)
	byID func(ctx context.Context, id int64) (domain.RawFacility, error)
}

func (f *fakeCatalog) FetchAll(ctx context.Context) ([]domain.RawFacility, error) {
	return f.all(ctx)
}

func (f *fakeCatalog) FetchByID(ctx context.Context, id int64) (domain.RawFacility, error) {
	if f.byID == nil {
		return domain.RawFacility{}, errors.New("not implemented")
	}
	return f.byID(ctx, id)
}

type fakeVenues struct {
	get func(ctx context.Context, id int64) (domain.Venue, error)
}

func (f *fakeVenues) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	return f.get(ctx, id)
}

type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- helpers ----

func ptr[T any](v T) *T { return &v }

func testSport() domain.SportConfig {
	return domain.SportConfig{
		Key:           "futbol",
		DisplayName:   "Fútbol",
		Description:   "Canchas de fútbol.",
		AcceptedTypes: []string{"futbol", "futbolito"},
		Labels:        []string{"Pasto sintético"},
		DefaultPrice:  "25000",
		DefaultRating: 4.5,
		ImageTemplate: "/img/futbol/%d.jpg",
		StaticVenues: map[int64]domain.Venue{
			5: {ID: 5, Nombre: "Complejo Estático", Direccion: "Calle Falsa 123"},
		},
		DefaultVenue: domain.Venue{Nombre: "Complejo Default", Direccion: "Av. Siempre Viva 742"},
		Fallback: []domain.FacilityViewModel{
			{ID: 100, Name: "Cancha Offline", Address: "Complejo Default - Av. Siempre Viva 742", Sport: "futbol"},
		},
	}
}
