package handlers

import (
	"time"

	"mdelivery-zones/internal/domain"
)

type zoneDTO struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	AccountPhone  string         `json:"account_phone"`
	Points        []domain.Point `json:"points"`
	DeliveryPoint *domain.Point  `json:"delivery_point,omitempty"`
	Version       int64          `json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type createZoneRequest struct {
	Name   string         `json:"name"`
	Points []domain.Point `json:"points"`
}

type updatePointsRequest struct {
	Points  []domain.Point `json:"points"`
	Version *int64         `json:"version,omitempty"`
}

type renameRequest struct {
	Name    string `json:"name"`
	Version *int64 `json:"version,omitempty"`
}

type pointRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type radiusDTO struct {
	ID       int64  `json:"id"`
	ZoneID   int64  `json:"zone_id"`
	Radius   int    `json:"radius"`
	Fee      string `json:"fee"`
	NightFee string `json:"night_fee"`
}

type createRadiusRequest struct {
	Radius   string `json:"radius"`
	Fee      string `json:"fee"`
	NightFee string `json:"night_fee"`
}

type boardDTO struct {
	Zone   zoneDTO      `json:"zone"`
	Center domain.Point `json:"center"`
	Radii  []radiusDTO  `json:"radii"`
}

type createdRadiusDTO struct {
	Radius radiusDTO   `json:"radius"`
	Radii  []radiusDTO `json:"radii"`
}

type quoteDTO struct {
	ZoneID   int64     `json:"zone_id"`
	Distance float64   `json:"distance_m"`
	Radius   radiusDTO `json:"radius"`
	Night    bool      `json:"night"`
	Fee      string    `json:"fee"`
	Inside   bool      `json:"inside"`
}

type sessionDTO struct {
	ID        string         `json:"id"`
	ZoneID    int64          `json:"zone_id"`
	Name      string         `json:"name"`
	Points    []domain.Point `json:"points"`
	Version   int64          `json:"version"`
	Writes    int            `json:"writes"`
	LastError string         `json:"last_error,omitempty"`
	Stale     bool           `json:"stale"`
	Closed    bool           `json:"closed"`
	OpenedAt  time.Time      `json:"opened_at"`
	TouchedAt time.Time      `json:"touched_at"`
}

type pathRequest struct {
	Points []domain.Point `json:"points"`
}

type nameRequest struct {
	Name string `json:"name"`
}
