package osm2routing

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// ReadWayMap opens parser's file and fills WayMap in single pass
func (parser *Parser) ReadWayMap() (*WayMap, error) {
	format, err := parser.resolveFormat()
	if err != nil {
		return nil, err
	}
	parser.logger.Info("Opening file", zap.String("filename", parser.filename), zap.Stringer("format", format))
	file, err := os.Open(parser.filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	var data *WayMap
	switch format {
	case FORMAT_XML:
		data, err = readWayMapXML(file, parser.logger)
	case FORMAT_PBF:
		scanner := osmpbf.New(context.Background(), file, parser.pbfWorkers)
		defer scanner.Close()
		data, err = readWayMap(scanner, parser.logger)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "Format '%s'", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Can't parse OSM data from file '%s'", parser.filename)
	}
	return data, nil
}

// ReadWayMap reads OSM XML document from given stream
func ReadWayMap(r io.Reader, logger *zap.Logger) (*WayMap, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return readWayMapXML(r, logger)
}

// readWayMapXML walks XML tokens, so element nesting and missing attributes reach the handler as is
func readWayMapXML(r io.Reader, logger *zap.Logger) (*WayMap, error) {
	logger.Info("Processing nodes and ways...")
	st := time.Now()
	handler := newMapHandler(logger)
	err := newXMLEventReader(r, handler).run()
	if err != nil {
		return nil, err
	}
	return finishWayMap(handler, logger, st)
}

// readWayMap replays objects of already decoded stream (PBF)
func readWayMap(scanner OSMScanner, logger *zap.Logger) (*WayMap, error) {
	logger.Info("Processing nodes and ways...")
	st := time.Now()
	handler := newMapHandler(logger)
	lastElement := "none"
	for scanner.Scan() {
		obj := scanner.Object()
		err := handler.handleObject(obj)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't process element '%s'", describeObject(obj))
		}
		lastElement = describeObject(obj)
	}
	err := scanner.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't scan OSM data after element '%s'", lastElement)
	}
	return finishWayMap(handler, logger, st)
}

func finishWayMap(handler *mapHandler, logger *zap.Logger, st time.Time) (*WayMap, error) {
	data, err := handler.result()
	if err != nil {
		return nil, err
	}
	logger.Info("Done",
		zap.Duration("elapsed", time.Since(st)),
		zap.Int("nodes", data.NodesNum()),
		zap.Int("ways", data.WaysNum()),
	)
	return data, nil
}

func describeObject(obj osm.Object) string {
	switch v := obj.(type) {
	case *osm.Node:
		return fmt.Sprintf("node/%d", v.ID)
	case *osm.Way:
		return fmt.Sprintf("way/%d", v.ID)
	case *osm.Relation:
		return fmt.Sprintf("relation/%d", v.ID)
	default:
		return fmt.Sprintf("%T", obj)
	}
}
