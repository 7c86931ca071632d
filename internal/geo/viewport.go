package geo

import (
	"math"

	"mdelivery-zones/internal/domain"
)

const tileSize = 256.0

// ViewportOptions tunes FitViewport.
type ViewportOptions struct {
	Margin  float64
	MinZoom int
	MaxZoom int
}

// DefaultViewportOptions mirrors the editor: 10% padding, zoom 4..15.
var DefaultViewportOptions = ViewportOptions{Margin: 0.1, MinZoom: 4, MaxZoom: 15}

// Viewport is what a map widget needs to frame a set of zones.
type Viewport struct {
	Bounds  Bounds       `json:"bounds"`
	Center  domain.Point `json:"center"`
	Zoom    int          `json:"zoom"`
	Default bool         `json:"default"`
}

// ViewportForZones frames every vertex of zones in a width×height pixel map.
// With no vertices it falls back to the national box.
func ViewportForZones(zones []domain.Zone, width, height int, opts ViewportOptions) Viewport {
	var pts []domain.Point
	for _, z := range zones {
		pts = append(pts, z.Points...)
	}
	b, ok := BoundsOf(pts...)
	if !ok {
		vp := FitViewport(BrazilBounds, width, height, ViewportOptions{MinZoom: opts.MinZoom, MaxZoom: opts.MaxZoom})
		vp.Default = true
		return vp
	}
	return FitViewport(b.Expand(opts.Margin), width, height, ViewportOptions{MinZoom: opts.MinZoom, MaxZoom: opts.MaxZoom})
}

// FitViewport picks the largest Web Mercator zoom at which b fits the map,
// clamped to [MinZoom, MaxZoom]. Degenerate boxes end at MaxZoom.
func FitViewport(b Bounds, width, height int, opts ViewportOptions) Viewport {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}

	latFraction := (mercatorLat(b.North) - mercatorLat(b.South)) / math.Pi
	lngDiff := b.East - b.West
	if lngDiff < 0 {
		lngDiff += 360
	}
	lngFraction := lngDiff / 360

	zoom := math.Min(
		zoomFor(float64(height), latFraction),
		zoomFor(float64(width), lngFraction),
	)

	return Viewport{
		Bounds: b,
		Center: b.Center(),
		Zoom:   clampZoom(zoom, opts.MinZoom, opts.MaxZoom),
	}
}

func mercatorLat(lat float64) float64 {
	sin := math.Sin(lat * math.Pi / 180)
	radX2 := math.Log((1+sin)/(1-sin)) / 2
	return math.Max(math.Min(radX2, math.Pi), -math.Pi) / 2
}

func zoomFor(mapPx, fraction float64) float64 {
	if fraction <= 0 {
		return math.Inf(1)
	}
	return math.Floor(math.Log(mapPx/tileSize/fraction) / math.Ln2)
}

func clampZoom(z float64, minZoom, maxZoom int) int {
	if math.IsInf(z, 1) || z > float64(maxZoom) {
		return maxZoom
	}
	if math.IsNaN(z) || z < float64(minZoom) {
		return minZoom
	}
	return int(z)
}
