package osm2routing

import (
	"sort"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// WayMap stores all nodes and ways of single OSM input.
// It is not safe for concurrent writers, but once parsed it is safe for concurrent readers.
type WayMap struct {
	nodes  map[osm.NodeID]GeoPoint
	ways   map[osm.WayID]*Way
	logger *zap.Logger
}

// NewWayMap returns empty storage
func NewWayMap(logger *zap.Logger) *WayMap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WayMap{
		nodes:  make(map[osm.NodeID]GeoPoint),
		ways:   make(map[osm.WayID]*Way),
		logger: logger,
	}
}

// AddNode stores point for given node identifier
func (wayMap *WayMap) AddNode(id osm.NodeID, pt GeoPoint) {
	wayMap.nodes[id] = pt
}

// AddWay stores finalized way
func (wayMap *WayMap) AddWay(way *Way) {
	wayMap.ways[way.ID] = way
}

// Node returns point for given node identifier
func (wayMap *WayMap) Node(id osm.NodeID) (GeoPoint, bool) {
	pt, ok := wayMap.nodes[id]
	return pt, ok
}

// Way returns way for given identifier
func (wayMap *WayMap) Way(id osm.WayID) (*Way, bool) {
	way, ok := wayMap.ways[id]
	return way, ok
}

func (wayMap *WayMap) NodesNum() int {
	return len(wayMap.nodes)
}

func (wayMap *WayMap) WaysNum() int {
	return len(wayMap.ways)
}

// WayIDs returns identifiers of all ways in ascending order
func (wayMap *WayMap) WayIDs() []osm.WayID {
	ids := make([]osm.WayID, 0, len(wayMap.ways))
	for id := range wayMap.ways {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

// Streets returns mapping from street name to the way carrying it.
// Only ways with `highway` tag are considered. Duplicate names: the way with the greatest ID wins.
func (wayMap *WayMap) Streets() map[string]*Way {
	streets := make(map[string]*Way)
	for _, id := range wayMap.WayIDs() {
		way := wayMap.ways[id]
		if !way.IsHighway() {
			continue
		}
		name, ok := way.Tag("name")
		if !ok {
			continue
		}
		streets[name] = way
	}
	return streets
}

// Materialize builds directed routing graph.
// Segments referencing unknown nodes are skipped and counted in RoutableGraph.SkippedSegments().
func (wayMap *WayMap) Materialize() *RoutableGraph {
	graph := newRoutableGraph()
	for _, id := range wayMap.WayIDs() {
		way := wayMap.ways[id]
		acc := way.Accessibility()
		direct := acc.DirectAccessible(TRANSPORT_ANY)
		reverse := acc.ReverseAccessible(TRANSPORT_ANY)
		if !direct && !reverse {
			continue
		}
		nodes := way.Nodes()
		for i := 1; i < len(nodes); i++ {
			sourceID, targetID := nodes[i-1], nodes[i]
			source, okSource := wayMap.nodes[sourceID]
			target, okTarget := wayMap.nodes[targetID]
			if !okSource || !okTarget {
				missing := sourceID
				if okSource {
					missing = targetID
				}
				wayMap.logger.Warn("Segment references unknown node, skipping it", zap.Int64("way_id", int64(way.ID)), zap.Int64("node_id", int64(missing)))
				graph.skippedSegments++
				continue
			}
			sourceIdx := graph.ensureVertex(sourceID, source)
			targetIdx := graph.ensureVertex(targetID, target)
			dist := source.Distance(target)
			if direct {
				graph.addEdge(sourceIdx, targetIdx, way, dist, DIRECTION_FORWARD)
			}
			if reverse {
				graph.addEdge(targetIdx, sourceIdx, way, dist, DIRECTION_BACKWARD)
			}
		}
	}
	return graph
}
