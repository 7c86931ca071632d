package geo

import (
	"github.com/golang/geo/s2"

	"mdelivery-zones/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6371008.8

func latLng(p domain.Point) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// DistanceMeters is the great-circle distance between a and b.
func DistanceMeters(a, b domain.Point) float64 {
	return latLng(a).Distance(latLng(b)).Radians() * EarthRadiusMeters
}

// PolygonContains reports whether p lies inside the polygon described by ring.
// The ring may be given in either winding order.
func PolygonContains(ring []domain.Point, p domain.Point) bool {
	if len(ring) < domain.MinZoneVertices {
		return false
	}
	pts := make([]s2.Point, 0, len(ring))
	for _, v := range ring {
		pts = append(pts, s2.PointFromLatLng(latLng(v)))
	}
	loop := s2.LoopFromPoints(pts)
	loop.Normalize()
	return loop.ContainsPoint(s2.PointFromLatLng(latLng(p)))
}
