package handlers

import (
	"mdelivery-zones/internal/domain"
	"mdelivery-zones/internal/money"
	"mdelivery-zones/internal/service/editsession"
	"mdelivery-zones/internal/service/radius"
)

func (r createRadiusRequest) toInput() radius.Input {
	return radius.Input{Radius: r.Radius, Fee: r.Fee, NightFee: r.NightFee}
}

func (r pointRequest) toModel() (domain.Point, bool) {
	if r.Lat == nil || r.Lng == nil {
		return domain.Point{}, false
	}
	return domain.Point{Lat: *r.Lat, Lng: *r.Lng}, true
}

func zoneToResponse(z domain.Zone) zoneDTO {
	pts := z.Points
	if pts == nil {
		pts = []domain.Point{}
	}
	return zoneDTO{
		ID:            z.ID,
		Name:          z.Name,
		AccountPhone:  z.AccountPhone,
		Points:        pts,
		DeliveryPoint: z.DeliveryPoint,
		Version:       z.Version,
		CreatedAt:     z.CreatedAt,
		UpdatedAt:     z.UpdatedAt,
	}
}

func zonesToResponse(list []domain.Zone) []zoneDTO {
	out := make([]zoneDTO, 0, len(list))
	for _, z := range list {
		out = append(out, zoneToResponse(z))
	}
	return out
}

func radiusToResponse(rd domain.Radius) radiusDTO {
	return radiusDTO{
		ID:       rd.ID,
		ZoneID:   rd.ZoneID,
		Radius:   rd.Meters,
		Fee:      money.Format(rd.Fee),
		NightFee: money.Format(rd.NightFee),
	}
}

func radiiToResponse(list []domain.Radius) []radiusDTO {
	out := make([]radiusDTO, 0, len(list))
	for _, rd := range list {
		out = append(out, radiusToResponse(rd))
	}
	return out
}

func boardToResponse(b domain.RadiusBoard) boardDTO {
	return boardDTO{
		Zone:   zoneToResponse(b.Zone),
		Center: b.Center,
		Radii:  radiiToResponse(b.Radii),
	}
}

func quoteToResponse(q domain.Quote) quoteDTO {
	return quoteDTO{
		ZoneID:   q.ZoneID,
		Distance: q.Distance,
		Radius:   radiusToResponse(q.Radius),
		Night:    q.Night,
		Fee:      money.Format(q.Fee),
		Inside:   q.Inside,
	}
}

func statusToResponse(st editsession.Status) sessionDTO {
	pts := st.Points
	if pts == nil {
		pts = []domain.Point{}
	}
	return sessionDTO{
		ID:        st.ID,
		ZoneID:    st.ZoneID,
		Name:      st.Name,
		Points:    pts,
		Version:   st.Version,
		Writes:    st.Writes,
		LastError: st.LastError,
		Stale:     st.Stale,
		Closed:    st.Closed,
		OpenedAt:  st.OpenedAt,
		TouchedAt: st.TouchedAt,
	}
}
