package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/observability"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

type AddressSource string

const (
	SourceLive     AddressSource = "live"
	SourceFallback AddressSource = "fallback"
)

// EnrichedAddress is the resolved display address for one facility.
// Coordinates are only carried when the live lookup supplied them.
type EnrichedAddress struct {
	Line   string
	Source AddressSource
	Lat    *float64
	Lng    *float64
}

// Enricher resolves a facility's venue address. Enrich is total: lookup
// failures degrade to the sport's static table or its category default, and
// never propagate — the signature has no error on purpose.
type Enricher struct {
	venues domain.VenueClient
	sport  domain.SportConfig
}

func NewEnricher(venues domain.VenueClient, sport domain.SportConfig) *Enricher {
	return &Enricher{venues: venues, sport: sport}
}

func (e *Enricher) Enrich(ctx context.Context, rec domain.RawFacility) EnrichedAddress {
	if rec.EstablecimientoID == nil {
		// Not an error: the record simply has no venue to look up.
		return EnrichedAddress{
			Line:   fmt.Sprintf("Complejo %d", rec.ID),
			Source: SourceFallback,
		}
	}

	venueID := *rec.EstablecimientoID
	v, err := e.venues.GetByID(ctx, venueID)
	if err == nil {
		return EnrichedAddress{
			Line:   formatAddress(v),
			Source: SourceLive,
			Lat:    v.Lat,
			Lng:    v.Lng,
		}
	}

	log.Warn().
		Str("sport", e.sport.Key).
		Int64("cancha", rec.ID).
		Int64("complejo", venueID).
		Err(err).
		Msg("venue lookup failed, using static address")
	observability.ObserveFallback(e.sport.Key)

	if sv, ok := e.sport.StaticVenues[venueID]; ok {
		return EnrichedAddress{Line: formatAddress(sv), Source: SourceFallback}
	}
	return EnrichedAddress{Line: formatAddress(e.sport.DefaultVenue), Source: SourceFallback}
}

func formatAddress(v domain.Venue) string {
	return fmt.Sprintf("%s - %s", v.Nombre, v.Direccion)
}
