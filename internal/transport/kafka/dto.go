package kafka

import (
	"strings"
	"time"

	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/service/editevents"
)

// PointDTO is a vertex on the wire.
type PointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EventDTO is a data transfer object for editevents.Event
type EventDTO struct {
	SessionID string     `json:"session_id"`
	Type      string     `json:"type"`
	Index     *int       `json:"index,omitempty"`
	Point     *PointDTO  `json:"point,omitempty"`
	Points    []PointDTO `json:"points,omitempty"`
	Name      string     `json:"name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToDomain converts EventDTO to editevents.Event
func ToDomain(dto EventDTO) editevents.Event {
	ev := editevents.Event{
		SessionID: strings.TrimSpace(dto.SessionID),
		Type:      strings.TrimSpace(dto.Type),
		Index:     dto.Index,
		Name:      dto.Name,
		CreatedAt: dto.CreatedAt,
	}
	if dto.Point != nil {
		ev.Point = &domain.Point{Lat: dto.Point.Lat, Lng: dto.Point.Lng}
	}
	if dto.Points != nil {
		ev.Points = make([]domain.Point, 0, len(dto.Points))
		for _, p := range dto.Points {
			ev.Points = append(ev.Points, domain.Point{Lat: p.Lat, Lng: p.Lng})
		}
	}
	return ev
}
