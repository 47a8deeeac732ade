package osm2routing

import (
	"math"
	"sort"

	"github.com/paulmach/osm"
	"github.com/tidwall/rtree"
)

const (
	// initial search radius for nearest vertex lookup (meters)
	nearestStartRadius = 50.0
	// half of Earth's circumference: nothing could be farther
	maxSearchRadius    = math.Pi * earthRadiusKm * 1000.0
)

type vertexItem struct {
	id osm.NodeID
	pt GeoPoint
}

// VertexIndex is spatial index over graph vertices. It never references the graph it was built from.
type VertexIndex struct {
	tree *rtree.RTreeG[vertexItem]
}

// NewVertexIndex builds spatial index for all vertices of the graph
func (graph *RoutableGraph) NewVertexIndex() *VertexIndex {
	index := &VertexIndex{
		tree: &rtree.RTreeG[vertexItem]{},
	}
	for i := range graph.vertices {
		vertex := &graph.vertices[i]
		pt := [2]float64{vertex.Point.Lon, vertex.Point.Lat}
		index.tree.Insert(pt, pt, vertexItem{id: vertex.ID, pt: vertex.Point})
	}
	return index
}

// Len returns number of indexed vertices
func (index *VertexIndex) Len() int {
	return index.tree.Len()
}

// Nearest returns vertex closest to given point
func (index *VertexIndex) Nearest(pt GeoPoint) (osm.NodeID, bool) {
	if index.tree.Len() == 0 {
		return 0, false
	}
	for radius := nearestStartRadius; ; radius *= 4 {
		found := false
		best := vertexItem{}
		bestDist := math.Inf(1)
		index.search(pt, radius, func(item vertexItem) {
			dist := pt.Distance(item.pt)
			if dist < bestDist || (dist == bestDist && item.id < best.id) {
				best, bestDist, found = item, dist, true
			}
		})
		// Anything closer than found candidate lies inside the box as well
		if found && (bestDist <= radius || radius >= maxSearchRadius) {
			return best.id, true
		}
		if radius >= maxSearchRadius {
			return 0, false
		}
	}
}

// Within returns vertices located not farther than given distance (meters), closest first
func (index *VertexIndex) Within(pt GeoPoint, meters float64) []osm.NodeID {
	type candidate struct {
		id   osm.NodeID
		dist float64
	}
	candidates := make([]candidate, 0)
	index.search(pt, meters, func(item vertexItem) {
		dist := pt.Distance(item.pt)
		if dist <= meters {
			candidates = append(candidates, candidate{id: item.id, dist: dist})
		}
	})
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist == candidates[j].dist {
			return candidates[i].id < candidates[j].id
		}
		return candidates[i].dist < candidates[j].dist
	})
	result := make([]osm.NodeID, len(candidates))
	for i := range candidates {
		result[i] = candidates[i].id
	}
	return result
}

// search visits every vertex inside bounding box which covers circle of given radius (meters)
func (index *VertexIndex) search(pt GeoPoint, meters float64, iter func(item vertexItem)) {
	metersPerDegree := earthRadiusKm * 1000.0 * pi180
	deltaLat := meters / metersPerDegree
	deltaLon := 180.0
	// Widest longitude span of the circle is at latitude closest to the pole
	maxLat := math.Abs(pt.Lat) + deltaLat
	if maxLat < 90.0 {
		cos := math.Cos(maxLat * pi180)
		if span := meters / (metersPerDegree * cos); span < 180.0 {
			deltaLon = span
		}
	}
	minBox := [2]float64{pt.Lon - deltaLon, pt.Lat - deltaLat}
	maxBox := [2]float64{pt.Lon + deltaLon, pt.Lat + deltaLat}
	if deltaLon >= 180.0 {
		minBox[0], maxBox[0] = -180.0, 180.0
	}
	index.tree.Search(minBox, maxBox, func(min, max [2]float64, item vertexItem) bool {
		iter(item)
		return true
	})
	// Box crossing antimeridian is split into second search
	if deltaLon < 180.0 {
		shift := 0.0
		if minBox[0] < -180.0 {
			shift = 360.0
		} else if maxBox[0] > 180.0 {
			shift = -360.0
		}
		if shift != 0 {
			index.tree.Search([2]float64{minBox[0] + shift, minBox[1]}, [2]float64{maxBox[0] + shift, maxBox[1]}, func(min, max [2]float64, item vertexItem) bool {
				iter(item)
				return true
			})
		}
	}
}
