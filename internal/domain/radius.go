package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Radius is one concentric delivery-fee ring around a zone's delivery point.
type Radius struct {
	ID           int64
	ZoneID       int64
	AccountPhone string
	Meters       int
	Fee          decimal.Decimal
	NightFee     decimal.Decimal
}

// SortRadii orders radii ascending by distance; equal distances keep insertion order.
func SortRadii(list []Radius) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Meters < list[j].Meters
	})
}

// RadiusBoard is everything the radius editor shows for one zone.
type RadiusBoard struct {
	Zone   Zone
	Center Point
	Radii  []Radius
}

// Quote is the fee resolved for a destination.
type Quote struct {
	ZoneID   int64
	Distance float64
	Radius   Radius
	Night    bool
	Fee      decimal.Decimal
	Inside   bool
}
