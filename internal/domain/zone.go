package domain

import (
	"strings"
	"time"
)

// MinZoneVertices is the smallest polygon a zone may be stored with.
const MinZoneVertices = 3

// Zone is a delivery polygon owned by an account.
type Zone struct {
	ID            int64
	Name          string
	Points        []Point
	AccountPhone  string
	DeliveryPoint *Point
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewZone carries the fields required to draw a zone.
type NewZone struct {
	Name         string
	Points       []Point
	AccountPhone string
}

// PointsUpdate replaces the vertex path of a zone.
// A nil ExpectedVersion skips the version check (last write wins).
type PointsUpdate struct {
	ZoneID          int64
	Points          []Point
	ExpectedVersion *int64
}

// ValidName reports whether name can label a zone.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidPath reports whether pts can be persisted as a zone polygon.
func ValidPath(pts []Point) bool {
	if len(pts) < MinZoneVertices {
		return false
	}
	for _, p := range pts {
		if !ValidPoint(p) {
			return false
		}
	}
	return true
}

// ValidPoint checks the coordinate ranges.
func ValidPoint(p Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
