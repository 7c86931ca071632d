package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mdelivery-zones/internal/domain"
)

// EncodePoints stores vertices as `[{"lat":..,"lng":..}]`.
func EncodePoints(pts []domain.Point) (string, error) {
	if pts == nil {
		pts = []domain.Point{}
	}
	raw, err := json.Marshal(pts)
	if err != nil {
		return "", fmt.Errorf("encode points: %w", err)
	}
	return string(raw), nil
}

// DecodePoints accepts the stored array or the same array wrapped in a JSON
// string, which older rows were written as.
func DecodePoints(raw []byte) ([]domain.Point, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []domain.Point{}, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("decode points: %w", err)
		}
		return DecodePoints([]byte(inner))
	}

	var pts []domain.Point
	if err := json.Unmarshal(raw, &pts); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	if pts == nil {
		pts = []domain.Point{}
	}
	return pts, nil
}
