package dispatch

import "service-assistance/internal/domain"

// nearestProvider selects the provider with the minimum haversine distance to
// (lat, lon). Ties go to the lowest provider id so selection is deterministic.
// The caller guarantees a non-empty slice.
func nearestProvider(lat, lon float64, providers []domain.Provider) (domain.Provider, float64) {
	best := providers[0]
	bestDist := domain.Haversine(lat, lon, best.Lat, best.Lon)

	for _, p := range providers[1:] {
		d := domain.Haversine(lat, lon, p.Lat, p.Lon)
		if d < bestDist || (d == bestDist && p.ID < best.ID) {
			best = p
			bestDist = d
		}
	}
	return best, bestDist
}
