package domain

// RawFacility is a catalog record exactly as the reservas backend emits it.
// The backend owns these; we never mutate one after decoding.
type RawFacility struct {
	ID                int64    `json:"id"`
	Nombre            string   `json:"nombre"`
	Tipo              string   `json:"tipo"`
	EstablecimientoID *int64   `json:"establecimientoId"`
	Techada           bool     `json:"techada"`
	Activa            bool     `json:"activa"`
	Rating            *float64 `json:"rating"`
	PrecioPorHora     *float64 `json:"precioPorHora"`
}

// Venue is the complejo that hosts one or more facilities. Coordinates are
// optional; not every venue record carries them.
type Venue struct {
	ID        int64    `json:"id"`
	Nombre    string   `json:"nombre"`
	Direccion string   `json:"direccion"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}

// SportConfig turns one sport category into a data value: everything the
// pipeline needs to aggregate that sport lives here, so adding a sport is a
// registry entry, not a code copy.
type SportConfig struct {
	Key           string   `validate:"required,lowercase"`
	DisplayName   string   `validate:"required"`
	Description   string   `validate:"required"`
	AcceptedTypes []string `validate:"required,min=1,dive,required"`

	// Labels are appended to every card's tag list after the flag-derived ones.
	Labels []string

	DefaultPrice  string  `validate:"required"`
	DefaultRating float64 `validate:"gte=0,lte=5"`

	// ImageTemplate is an fmt template taking the facility id, e.g.
	// "/static/canchas/futbol/%d.jpg".
	ImageTemplate string `validate:"required"`

	// StaticVenues resolves venue addresses when the live lookup fails.
	// DefaultVenue covers every id absent from the table.
	StaticVenues map[int64]Venue
	DefaultVenue Venue

	// Fallback is the hand-authored offline list served while Degraded.
	Fallback []FacilityViewModel `validate:"required,min=1"`
}
