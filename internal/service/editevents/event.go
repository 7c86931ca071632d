package editevents

import (
	"time"

	"mdelivery-zones/internal/domain"
)

// Event types.
const (
	TypePath   = "path"
	TypeMove   = "move"
	TypeRemove = "remove"
	TypeRename = "rename"
	TypeSave   = "save"
	TypeCancel = "cancel"
)

// Event is a single front-end edit event
type Event struct {
	SessionID string
	Type      string
	Index     *int
	Point     *domain.Point
	Points    []domain.Point
	Name      string
	CreatedAt time.Time
}
