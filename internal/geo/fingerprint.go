package geo

import (
	"encoding/json"
	"math"

	"mdelivery-zones/internal/domain"
)

// Round rounds v to the given number of decimal places.
func Round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// Canonical rounds every vertex to precision decimal places.
func Canonical(pts []domain.Point, precision int) []domain.Point {
	out := make([]domain.Point, len(pts))
	for i, p := range pts {
		out[i] = domain.Point{Lat: Round(p.Lat, precision), Lng: Round(p.Lng, precision)}
	}
	return out
}

// Fingerprint serializes the canonical path; two paths that only differ
// below the precision share a fingerprint.
func Fingerprint(pts []domain.Point, precision int) string {
	raw, err := json.Marshal(Canonical(pts, precision))
	if err != nil {
		// Only NaN/Inf can fail here and those never pass domain.ValidPoint.
		return ""
	}
	return string(raw)
}
