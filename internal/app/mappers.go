package app

import (
	"fmt"
	"strconv"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

const (
	availableNow = "Disponible ahora"
	notAvailable = "No disponible"
)

// ToViewModel assembles the display card for one facility. Pure; the image
// URL is derived by convention and never checked for existence (broken images
// are the rendering layer's concern).
func ToViewModel(rec domain.RawFacility, addr EnrichedAddress, sport domain.SportConfig) domain.FacilityViewModel {
	name := rec.Nombre
	if name == "" {
		name = fmt.Sprintf("Cancha %d", rec.ID)
	}

	rating := sport.DefaultRating
	if rec.Rating != nil {
		rating = *rec.Rating
	}

	price := sport.DefaultPrice
	if rec.PrecioPorHora != nil && *rec.PrecioPorHora != 0 {
		price = strconv.FormatFloat(*rec.PrecioPorHora, 'f', -1, 64)
	}

	next := notAvailable
	if rec.Activa {
		next = availableNow
	}

	tags := make([]string, 0, 2+len(sport.Labels))
	if rec.Techada {
		tags = append(tags, "Techada")
	} else {
		tags = append(tags, "Aire libre")
	}
	if rec.Activa {
		tags = append(tags, "Disponible")
	} else {
		tags = append(tags, "No disponible")
	}
	tags = append(tags, sport.Labels...)

	return domain.FacilityViewModel{
		ID:            rec.ID,
		ImageURL:      fmt.Sprintf(sport.ImageTemplate, rec.ID),
		Name:          name,
		Address:       addr.Line,
		Rating:        rating,
		Tags:          tags,
		Description:   sport.Description,
		Price:         price,
		NextAvailable: next,
		Sport:         sport.Key,
		Lat:           addr.Lat,
		Lng:           addr.Lng,
	}
}

// BuildMapPins derives the map widget's input from enriched items. Only items
// whose venue lookup carried coordinates produce a pin.
func BuildMapPins(items []domain.FacilityViewModel) []domain.MapPin {
	pins := make([]domain.MapPin, 0, len(items))
	for _, it := range items {
		if it.Lat == nil || it.Lng == nil {
			continue
		}
		pins = append(pins, domain.MapPin{
			ID:    it.ID,
			Lat:   *it.Lat,
			Lng:   *it.Lng,
			Label: it.Name,
		})
	}
	return pins
}
