package app

import (
	"strings"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

// FilterBySearch applies the client-side search box: a case-insensitive
// substring match over name and address. An empty term means "no filter",
// not "match nothing". Never re-fetches.
func FilterBySearch(items []domain.FacilityViewModel, term string) []domain.FacilityViewModel {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return items
	}
	out := make([]domain.FacilityViewModel, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), t) ||
			strings.Contains(strings.ToLower(it.Address), t) {
			out = append(out, it)
		}
	}
	return out
}
