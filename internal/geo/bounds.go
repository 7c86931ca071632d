// Package geo holds the small amount of geometry the zone editor needs:
// bounding boxes, viewport fitting, centroids, path fingerprints and
// spherical distance/containment.
package geo

import (
	"math"

	"mdelivery-zones/internal/domain"
)

// Bounds is a latitude/longitude box.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BrazilBounds is the national fallback viewport.
var BrazilBounds = Bounds{
	North: 5.27438,
	South: -33.75117,
	West:  -73.98554,
	East:  -34.79299,
}

// DefaultCenter is Brasília, used when nothing else is known.
var DefaultCenter = domain.Point{Lat: -15.7801, Lng: -47.9292}

// BoundsOf returns the box covering pts and false when pts is empty.
func BoundsOf(pts ...domain.Point) (Bounds, bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	b := Bounds{North: pts[0].Lat, South: pts[0].Lat, East: pts[0].Lng, West: pts[0].Lng}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b, true
}

// Extend grows the box to include p.
func (b Bounds) Extend(p domain.Point) Bounds {
	b.North = math.Max(b.North, p.Lat)
	b.South = math.Min(b.South, p.Lat)
	b.East = math.Max(b.East, p.Lng)
	b.West = math.Min(b.West, p.Lng)
	return b
}

// Expand pads each side by margin times the span on that axis.
func (b Bounds) Expand(margin float64) Bounds {
	latPad := (b.North - b.South) * margin
	lngPad := (b.East - b.West) * margin
	return Bounds{
		North: math.Min(b.North+latPad, 85),
		South: math.Max(b.South-latPad, -85),
		East:  math.Min(b.East+lngPad, 180),
		West:  math.Max(b.West-lngPad, -180),
	}
}

// Center is the midpoint of the box.
func (b Bounds) Center() domain.Point {
	return domain.Point{Lat: (b.North + b.South) / 2, Lng: (b.East + b.West) / 2}
}
