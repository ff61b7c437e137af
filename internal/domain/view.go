package domain

// Phase normalizes the UI contract into a small enum. Loading exposes no
// items yet; Ready may legitimately hold an empty list; Degraded holds the
// sport's offline fallback list and is only left by an explicit refresh.
type Phase string

const (
	PhaseLoading  Phase = "LOADING"
	PhaseReady    Phase = "READY"
	PhaseDegraded Phase = "DEGRADED"
)

// FacilityViewModel is the display-ready card. It is rebuilt on every
// aggregation pass and never persisted.
type FacilityViewModel struct {
	ID            int64    `json:"id"`
	ImageURL      string   `json:"imageUrl"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Rating        float64  `json:"rating"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	NextAvailable string   `json:"nextAvailable"`
	Sport         string   `json:"sport"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
}

// AggregationState is the single source of truth for one sport's listing.
// Illegal combinations (loading with an error, ready with a banner) are
// unrepresentable: ErrorMessage is only set while Degraded.
type AggregationState struct {
	Phase        Phase               `json:"phase"`
	Items        []FacilityViewModel `json:"items"`
	ErrorMessage string              `json:"error,omitempty"`
}

// MapPin is what the map widget consumes. Pins exist only for items whose
// venue lookup returned coordinates.
type MapPin struct {
	ID    int64   `json:"id"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}
