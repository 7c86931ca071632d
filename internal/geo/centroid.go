package geo

import "mdelivery-zones/internal/domain"

// Centroid is the arithmetic mean of the vertices, not the area centroid.
// Empty input yields DefaultCenter.
func Centroid(pts []domain.Point) domain.Point {
	if len(pts) == 0 {
		return DefaultCenter
	}
	var lat, lng float64
	for _, p := range pts {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(pts))
	return domain.Point{Lat: lat / n, Lng: lng / n}
}

// DeliveryCenter is the point radii are drawn around: the saved delivery point,
// else the zone centroid.
func DeliveryCenter(z domain.Zone) domain.Point {
	if z.DeliveryPoint != nil {
		return *z.DeliveryPoint
	}
	return Centroid(z.Points)
}
