package geo

import (
	geojson "github.com/paulmach/go.geojson"

	"mdelivery-zones/internal/domain"
)

// ZonesFeatureCollection renders zones as GeoJSON polygons with their
// delivery point (or centroid) as a separate point feature.
func ZonesFeatureCollection(zones []domain.Zone) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range zones {
		if len(z.Points) == 0 {
			continue
		}
		ring := make([][]float64, 0, len(z.Points)+1)
		for _, p := range z.Points {
			ring = append(ring, []float64{p.Lng, p.Lat})
		}
		first := z.Points[0]
		ring = append(ring, []float64{first.Lng, first.Lat})

		poly := geojson.NewPolygonFeature([][][]float64{ring})
		poly.SetProperty("id", z.ID)
		poly.SetProperty("name", z.Name)
		poly.SetProperty("account_phone", z.AccountPhone)
		poly.SetProperty("version", z.Version)
		poly.SetProperty("kind", "zone")
		fc.AddFeature(poly)

		center := DeliveryCenter(z)
		pt := geojson.NewPointFeature([]float64{center.Lng, center.Lat})
		pt.SetProperty("zone_id", z.ID)
		pt.SetProperty("kind", "delivery_point")
		pt.SetProperty("saved", z.DeliveryPoint != nil)
		fc.AddFeature(pt)
	}
	return fc
}
