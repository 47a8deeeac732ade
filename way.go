package osm2routing

import (
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// Way is finalized OSM way: its nodes, tags and accessibility never change after parsing
type Way struct {
	tags          map[string]string
	nodes         []osm.NodeID
	ID            osm.WayID
	accessibility Accessibility
}

// NewWay classifies given tags and returns finalized way. Both nodes and tags are copied.
func NewWay(id osm.WayID, nodes []osm.NodeID, tags map[string]string, logger *zap.Logger) *Way {
	builder := newWayBuilder(id)
	builder.nodes = append(builder.nodes, nodes...)
	for key, value := range tags {
		builder.setTag(key, value)
	}
	return builder.finalize(logger)
}

// Nodes returns ordered node identifiers. Caller must not modify returned slice.
func (way *Way) Nodes() []osm.NodeID {
	return way.nodes
}

// Tag returns tag value for given key
func (way *Way) Tag(key string) (string, bool) {
	value, ok := way.tags[key]
	return value, ok
}

// Tags returns copy of way's tags
func (way *Way) Tags() map[string]string {
	tags := make(map[string]string, len(way.tags))
	for key, value := range way.tags {
		tags[key] = value
	}
	return tags
}

// Name returns value of `name` tag
func (way *Way) Name() string {
	return way.tags["name"]
}

// Accessibility returns classified permissions of the way
func (way *Way) Accessibility() Accessibility {
	return way.accessibility
}

// IsHighway returns true if way has `highway` tag
func (way *Way) IsHighway() bool {
	_, ok := way.tags["highway"]
	return ok
}

// wayBuilder is way under construction. It lives only while way element is open.
type wayBuilder struct {
	tags  map[string]string
	nodes []osm.NodeID
	id    osm.WayID
}

func newWayBuilder(id osm.WayID) *wayBuilder {
	return &wayBuilder{
		id:    id,
		tags:  make(map[string]string),
		nodes: make([]osm.NodeID, 0),
	}
}

func (builder *wayBuilder) addNode(id osm.NodeID) {
	builder.nodes = append(builder.nodes, id)
}

func (builder *wayBuilder) setTag(key, value string) {
	builder.tags[key] = value
}

// finalize classifies accumulated tags. Builder must not be used afterwards.
func (builder *wayBuilder) finalize(logger *zap.Logger) *Way {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Way{
		ID:            builder.id,
		nodes:         builder.nodes,
		tags:          builder.tags,
		accessibility: ClassifyTags(builder.tags, logger.With(zap.Int64("way_id", int64(builder.id)))),
	}
}
