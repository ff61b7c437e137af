// Package sports holds the per-sport pipeline configuration. Each sport is a
// data value: accepted catalog type tags, static venue fallbacks, card
// defaults and the hand-authored offline list served while degraded.
package sports

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

var validate = validator.New()

// Load validates every registered config and returns them keyed by sport.
// An invalid or duplicated entry is a boot failure, not a runtime surprise.
func Load() (map[string]domain.SportConfig, error) {
	out := make(map[string]domain.SportConfig, len(All))
	for _, cfg := range All {
		if err := validate.Struct(cfg); err != nil {
			return nil, fmt.Errorf("sport %q: %w", cfg.Key, err)
		}
		if _, dup := out[cfg.Key]; dup {
			return nil, fmt.Errorf("sport %q registered twice", cfg.Key)
		}
		out[cfg.Key] = cfg
	}
	return out, nil
}

// All lists every sport the storefront knows about.
var All = []domain.SportConfig{
	{
		Key:           "futbol",
		DisplayName:   "Fútbol",
		Description:   "Canchas de fútbol y futbolito con pasto sintético.",
		AcceptedTypes: []string{"futbol", "futbolito", "baby futbol"},
		Labels:        []string{"Pasto sintético"},
		DefaultPrice:  "25000",
		DefaultRating: 4.5,
		ImageTemplate: "/static/canchas/futbol/%d.jpg",
		StaticVenues: map[int64]domain.Venue{
			1: {ID: 1, Nombre: "Complejo Norte", Direccion: "Av. Alemania 1234"},
			2: {ID: 2, Nombre: "Complejo Centro", Direccion: "Prat 567"},
			5: {ID: 5, Nombre: "Complejo Ñielol", Direccion: "Av. Caupolicán 890"},
		},
		DefaultVenue: domain.Venue{Nombre: "Complejo Deportivo Temuco", Direccion: "Av. Pablo Neruda 01405"},
		Fallback: []domain.FacilityViewModel{
			{ID: 1, ImageURL: "/static/canchas/futbol/1.jpg", Name: "Cancha Norte 1", Address: "Complejo Norte - Av. Alemania 1234", Rating: 4.6, Tags: []string{"Aire libre", "Disponible", "Pasto sintético"}, Description: "Canchas de fútbol y futbolito con pasto sintético.", Price: "25000", NextAvailable: "Disponible ahora", Sport: "futbol"},
			{ID: 2, ImageURL: "/static/canchas/futbol/2.jpg", Name: "Cancha Centro", Address: "Complejo Centro - Prat 567", Rating: 4.4, Tags: []string{"Techada", "Disponible", "Pasto sintético"}, Description: "Canchas de fútbol y futbolito con pasto sintético.", Price: "28000", NextAvailable: "Disponible ahora", Sport: "futbol"},
			{ID: 3, ImageURL: "/static/canchas/futbol/3.jpg", Name: "Babyfutbol Ñielol", Address: "Complejo Ñielol - Av. Caupolicán 890", Rating: 4.2, Tags: []string{"Aire libre", "No disponible", "Pasto sintético"}, Description: "Canchas de fútbol y futbolito con pasto sintético.", Price: "20000", NextAvailable: "No disponible", Sport: "futbol"},
		},
	},
	{
		Key:           "basquetbol",
		DisplayName:   "Básquetbol",
		Description:   "Canchas de básquetbol techadas y al aire libre.",
		AcceptedTypes: []string{"basquetbol", "basketball"},
		Labels:        []string{"Piso de madera"},
		DefaultPrice:  "18000",
		DefaultRating: 4.3,
		ImageTemplate: "/static/canchas/basquetbol/%d.jpg",
		StaticVenues: map[int64]domain.Venue{
			3: {ID: 3, Nombre: "Gimnasio Municipal", Direccion: "Bulnes 345"},
		},
		DefaultVenue: domain.Venue{Nombre: "Polideportivo Labranza", Direccion: "Camino Labranza km 2"},
		Fallback: []domain.FacilityViewModel{
			{ID: 10, ImageURL: "/static/canchas/basquetbol/10.jpg", Name: "Cancha Gimnasio A", Address: "Gimnasio Municipal - Bulnes 345", Rating: 4.3, Tags: []string{"Techada", "Disponible", "Piso de madera"}, Description: "Canchas de básquetbol techadas y al aire libre.", Price: "18000", NextAvailable: "Disponible ahora", Sport: "basquetbol"},
			{ID: 11, ImageURL: "/static/canchas/basquetbol/11.jpg", Name: "Cancha Gimnasio B", Address: "Gimnasio Municipal - Bulnes 345", Rating: 4.1, Tags: []string{"Techada", "Disponible", "Piso de madera"}, Description: "Canchas de básquetbol techadas y al aire libre.", Price: "18000", NextAvailable: "Disponible ahora", Sport: "basquetbol"},
		},
	},
	{
		Key:           "tenis",
		DisplayName:   "Tenis",
		Description:   "Canchas de tenis de arcilla y cemento.",
		AcceptedTypes: []string{"tenis", "tennis"},
		Labels:        []string{"Arcilla"},
		DefaultPrice:  "15000",
		DefaultRating: 4.4,
		ImageTemplate: "/static/canchas/tenis/%d.jpg",
		StaticVenues: map[int64]domain.Venue{
			4: {ID: 4, Nombre: "Club de Tenis Temuco", Direccion: "Av. San Martín 321"},
		},
		DefaultVenue: domain.Venue{Nombre: "Club de Tenis Temuco", Direccion: "Av. San Martín 321"},
		Fallback: []domain.FacilityViewModel{
			{ID: 20, ImageURL: "/static/canchas/tenis/20.jpg", Name: "Cancha Arcilla 1", Address: "Club de Tenis Temuco - Av. San Martín 321", Rating: 4.7, Tags: []string{"Aire libre", "Disponible", "Arcilla"}, Description: "Canchas de tenis de arcilla y cemento.", Price: "15000", NextAvailable: "Disponible ahora", Sport: "tenis"},
			{ID: 21, ImageURL: "/static/canchas/tenis/21.jpg", Name: "Cancha Cemento 2", Address: "Club de Tenis Temuco - Av. San Martín 321", Rating: 4.2, Tags: []string{"Aire libre", "No disponible", "Arcilla"}, Description: "Canchas de tenis de arcilla y cemento.", Price: "12000", NextAvailable: "No disponible", Sport: "tenis"},
		},
	},
	{
		Key:           "padel",
		DisplayName:   "Pádel",
		Description:   "Canchas de pádel panorámicas con iluminación LED.",
		AcceptedTypes: []string{"padel"},
		Labels:        []string{"Panorámica", "Iluminación LED"},
		DefaultPrice:  "22000",
		DefaultRating: 4.6,
		ImageTemplate: "/static/canchas/padel/%d.jpg",
		StaticVenues: map[int64]domain.Venue{
			6: {ID: 6, Nombre: "Padel Center", Direccion: "Av. Javiera Carrera 765"},
		},
		DefaultVenue: domain.Venue{Nombre: "Padel Center", Direccion: "Av. Javiera Carrera 765"},
		Fallback: []domain.FacilityViewModel{
			{ID: 30, ImageURL: "/static/canchas/padel/30.jpg", Name: "Pista Panorámica 1", Address: "Padel Center - Av. Javiera Carrera 765", Rating: 4.8, Tags: []string{"Techada", "Disponible", "Panorámica", "Iluminación LED"}, Description: "Canchas de pádel panorámicas con iluminación LED.", Price: "22000", NextAvailable: "Disponible ahora", Sport: "padel"},
			{ID: 31, ImageURL: "/static/canchas/padel/31.jpg", Name: "Pista Panorámica 2", Address: "Padel Center - Av. Javiera Carrera 765", Rating: 4.5, Tags: []string{"Techada", "Disponible", "Panorámica", "Iluminación LED"}, Description: "Canchas de pádel panorámicas con iluminación LED.", Price: "22000", NextAvailable: "Disponible ahora", Sport: "padel"},
		},
	},
	{
		Key:           "voleibol",
		DisplayName:   "Vóleibol",
		Description:   "Canchas de vóleibol indoor y de playa.",
		AcceptedTypes: []string{"voleibol", "volleyball", "voley playa"},
		Labels:        []string{"Red reglamentaria"},
		DefaultPrice:  "14000",
		DefaultRating: 4.2,
		ImageTemplate: "/static/canchas/voleibol/%d.jpg",
		DefaultVenue:  domain.Venue{Nombre: "Polideportivo Labranza", Direccion: "Camino Labranza km 2"},
		Fallback: []domain.FacilityViewModel{
			{ID: 40, ImageURL: "/static/canchas/voleibol/40.jpg", Name: "Cancha Indoor", Address: "Polideportivo Labranza - Camino Labranza km 2", Rating: 4.2, Tags: []string{"Techada", "Disponible", "Red reglamentaria"}, Description: "Canchas de vóleibol indoor y de playa.", Price: "14000", NextAvailable: "Disponible ahora", Sport: "voleibol"},
		},
	},
	{
		Key:           "natacion",
		DisplayName:   "Natación",
		Description:   "Piletas temperadas con carriles de nado libre.",
		AcceptedTypes: []string{"natacion", "piscina", "pileta"},
		Labels:        []string{"Temperada"},
		DefaultPrice:  "8000",
		DefaultRating: 4.5,
		ImageTemplate: "/static/canchas/natacion/%d.jpg",
		StaticVenues: map[int64]domain.Venue{
			7: {ID: 7, Nombre: "Piscina Municipal", Direccion: "Av. Recabarren 120"},
		},
		DefaultVenue: domain.Venue{Nombre: "Piscina Municipal", Direccion: "Av. Recabarren 120"},
		Fallback: []domain.FacilityViewModel{
			{ID: 50, ImageURL: "/static/canchas/natacion/50.jpg", Name: "Carril Nado Libre", Address: "Piscina Municipal - Av. Recabarren 120", Rating: 4.5, Tags: []string{"Techada", "Disponible", "Temperada"}, Description: "Piletas temperadas con carriles de nado libre.", Price: "8000", NextAvailable: "Disponible ahora", Sport: "natacion"},
		},
	},
	{
		Key:           "atletismo",
		DisplayName:   "Atletismo",
		Description:   "Pistas de atletismo con superficie de tartán.",
		AcceptedTypes: []string{"atletismo", "pista"},
		Labels:        []string{"Tartán"},
		DefaultPrice:  "5000",
		DefaultRating: 4.0,
		ImageTemplate: "/static/canchas/atletismo/%d.jpg",
		DefaultVenue:  domain.Venue{Nombre: "Estadio Germán Becker", Direccion: "Av. Pablo Neruda 01405"},
		Fallback: []domain.FacilityViewModel{
			{ID: 60, ImageURL: "/static/canchas/atletismo/60.jpg", Name: "Pista Principal", Address: "Estadio Germán Becker - Av. Pablo Neruda 01405", Rating: 4.0, Tags: []string{"Aire libre", "Disponible", "Tartán"}, Description: "Pistas de atletismo con superficie de tartán.", Price: "5000", NextAvailable: "Disponible ahora", Sport: "atletismo"},
		},
	},
	{
		Key:           "escalada",
		DisplayName:   "Escalada",
		Description:   "Muros de escalada y boulder para todos los niveles.",
		AcceptedTypes: []string{"escalada", "boulder"},
		Labels:        []string{"Muro 12m"},
		DefaultPrice:  "10000",
		DefaultRating: 4.4,
		ImageTemplate: "/static/canchas/escalada/%d.jpg",
		DefaultVenue:  domain.Venue{Nombre: "Centro de Escalada Andes", Direccion: "Hochstetter 432"},
		Fallback: []domain.FacilityViewModel{
			{ID: 70, ImageURL: "/static/canchas/escalada/70.jpg", Name: "Muro Principal", Address: "Centro de Escalada Andes - Hochstetter 432", Rating: 4.4, Tags: []string{"Techada", "Disponible", "Muro 12m"}, Description: "Muros de escalada y boulder para todos los niveles.", Price: "10000", NextAvailable: "Disponible ahora", Sport: "escalada"},
		},
	},
}
