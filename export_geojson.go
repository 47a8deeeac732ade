package osm2routing

import (
	geojson "github.com/paulmach/go.geojson"
)

// GeoJSON returns edges traversable by given transport as collection of LineString features
func (graph *RoutableGraph) GeoJSON(transport TransportType) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range graph.edges {
		edge := &graph.edges[i]
		if !edge.Traversable(transport) {
			continue
		}
		source := graph.vertices[edge.sourceIdx].Point
		target := graph.vertices[edge.targetIdx].Point
		feature := geojson.NewLineStringFeature([][]float64{
			{source.Lon, source.Lat},
			{target.Lon, target.Lat},
		})
		feature.SetProperty("way_id", int64(edge.Way.ID))
		feature.SetProperty("from", int64(edge.Source))
		feature.SetProperty("to", int64(edge.Target))
		feature.SetProperty("direction", edge.Direction.String())
		feature.SetProperty("dist_meters", edge.DistMeters)
		feature.SetProperty("car", edge.Car.String())
		feature.SetProperty("bike", edge.Bike.String())
		feature.SetProperty("foot", edge.Foot.String())
		fc.AddFeature(feature)
	}
	return fc
}
