package osm2routing

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrUnexpectedNesting  = errors.New("unexpected element nesting")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidID          = errors.New("invalid element identifier")
)

// mapHandler consumes structural events of OSM document in document order and fills WayMap.
// At most one way is open at any moment.
type mapHandler struct {
	data       *WayMap
	currentWay *wayBuilder
	logger     *zap.Logger
}

func newMapHandler(logger *zap.Logger) *mapHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &mapHandler{
		data:   NewWayMap(logger),
		logger: logger,
	}
}

// inWay returns true while way element is open
func (handler *mapHandler) inWay() bool {
	return handler.currentWay != nil
}

func (handler *mapHandler) startNode(id osm.NodeID, lat, lon float64) error {
	if id == 0 {
		return errors.Wrap(ErrInvalidID, "Node ID must not be zero")
	}
	pt := GeoPoint{Lat: lat, Lon: lon}
	if !validCoordinates(pt) {
		return errors.Wrapf(ErrInvalidCoordinates, "Node ID: '%d'", id)
	}
	handler.data.AddNode(id, pt)
	return nil
}

func (handler *mapHandler) startWay(id osm.WayID) error {
	if handler.currentWay != nil {
		return errors.Wrapf(ErrUnexpectedNesting, "Way ID: '%d' opened inside way ID: '%d'", id, handler.currentWay.id)
	}
	if id == 0 {
		return errors.Wrap(ErrInvalidID, "Way ID must not be zero")
	}
	handler.currentWay = newWayBuilder(id)
	return nil
}

// nodeRef is ignored outside of way scope
func (handler *mapHandler) nodeRef(ref osm.NodeID) error {
	if handler.currentWay == nil {
		return nil
	}
	if ref == 0 {
		return errors.Wrapf(ErrInvalidID, "Node reference in way ID: '%d' must not be zero", handler.currentWay.id)
	}
	handler.currentWay.addNode(ref)
	return nil
}

// tag is ignored outside of way scope
func (handler *mapHandler) tag(key, value string) {
	if handler.currentWay == nil {
		return
	}
	handler.currentWay.setTag(key, value)
}

func (handler *mapHandler) endWay() error {
	if handler.currentWay == nil {
		return errors.Wrap(ErrUnexpectedNesting, "Way closed while no way is open")
	}
	handler.data.AddWay(handler.currentWay.finalize(handler.logger))
	handler.currentWay = nil
	return nil
}

// handleObject replays decoded OSM object as sequence of events
func (handler *mapHandler) handleObject(obj osm.Object) error {
	switch v := obj.(type) {
	case *osm.Node:
		return handler.startNode(v.ID, v.Lat, v.Lon)
	case *osm.Way:
		err := handler.startWay(v.ID)
		if err != nil {
			return err
		}
		for _, node := range v.Nodes {
			err = handler.nodeRef(node.ID)
			if err != nil {
				return err
			}
		}
		for _, tag := range v.Tags {
			handler.tag(tag.Key, tag.Value)
		}
		return handler.endWay()
	default:
		// Relations, changesets and others are not needed for routing
		return nil
	}
}

// result returns filled WayMap. Open way means document has been truncated.
func (handler *mapHandler) result() (*WayMap, error) {
	if handler.currentWay != nil {
		return nil, errors.Wrapf(ErrUnexpectedNesting, "Way ID: '%d' has not been closed", handler.currentWay.id)
	}
	return handler.data, nil
}
