package app

import (
	"strings"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

// FilterByType narrows the catalog to records whose tipo is in the accepted
// set. Matching is case-insensitive and exact (not substring); input order is
// preserved. An empty result is valid and distinct from a fetch failure.
func FilterByType(records []domain.RawFacility, acceptedTypes []string) []domain.RawFacility {
	accepted := make(map[string]struct{}, len(acceptedTypes))
	for _, t := range acceptedTypes {
		accepted[strings.ToLower(t)] = struct{}{}
	}
	out := make([]domain.RawFacility, 0, len(records))
	for _, r := range records {
		if _, ok := accepted[strings.ToLower(r.Tipo)]; ok {
			out = append(out, r)
		}
	}
	return out
}
