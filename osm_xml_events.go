package osm2routing

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

var (
	ErrMissingAttribute = errors.New("missing attribute")
	ErrInvalidAttribute = errors.New("invalid numeric attribute")
)

// xmlEventReader turns OSM XML token stream into mapHandler events.
// Only start and end tokens are looked at, so memory does not depend on document size.
type xmlEventReader struct {
	decoder     *xml.Decoder
	handler     *mapHandler
	lastElement string
}

func newXMLEventReader(r io.Reader, handler *mapHandler) *xmlEventReader {
	return &xmlEventReader{
		decoder:     xml.NewDecoder(r),
		handler:     handler,
		lastElement: "none",
	}
}

// run consumes whole document
func (reader *xmlEventReader) run() error {
	for {
		token, err := reader.decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "Can't decode XML after element '%s'", reader.lastElement)
		}
		switch t := token.(type) {
		case xml.StartElement:
			err = reader.startElement(t)
		case xml.EndElement:
			if t.Name.Local == "way" {
				err = reader.handler.endWay()
			}
		}
		if err != nil {
			return errors.Wrapf(err, "Can't process element '%s'", reader.lastElement)
		}
	}
}

func (reader *xmlEventReader) startElement(se xml.StartElement) error {
	attrs := newXMLAttributes(se.Attr)
	switch se.Name.Local {
	case "node":
		id, err := attrs.integer("node", "id")
		if err != nil {
			return err
		}
		reader.lastElement = fmt.Sprintf("node/%d", id)
		lat, err := attrs.float(reader.lastElement, "lat")
		if err != nil {
			return err
		}
		lon, err := attrs.float(reader.lastElement, "lon")
		if err != nil {
			return err
		}
		return reader.handler.startNode(osm.NodeID(id), lat, lon)
	case "way":
		id, err := attrs.integer("way", "id")
		if err != nil {
			return err
		}
		reader.lastElement = fmt.Sprintf("way/%d", id)
		return reader.handler.startWay(osm.WayID(id))
	case "nd":
		if !reader.handler.inWay() {
			return nil
		}
		ref, err := attrs.integer(reader.lastElement+"/nd", "ref")
		if err != nil {
			return err
		}
		return reader.handler.nodeRef(osm.NodeID(ref))
	case "tag":
		if !reader.handler.inWay() {
			return nil
		}
		key, ok := attrs["k"]
		if !ok {
			return errors.Wrapf(ErrMissingAttribute, "Element '%s/tag' has no 'k'", reader.lastElement)
		}
		reader.handler.tag(key, attrs["v"])
	}
	return nil
}

type xmlAttributes map[string]string

func newXMLAttributes(attrs []xml.Attr) xmlAttributes {
	result := make(xmlAttributes, len(attrs))
	for _, attr := range attrs {
		result[attr.Name.Local] = attr.Value
	}
	return result
}

func (attrs xmlAttributes) integer(element, name string) (int64, error) {
	str, ok := attrs[name]
	if !ok {
		return 0, errors.Wrapf(ErrMissingAttribute, "Element '%s' has no '%s'", element, name)
	}
	value, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAttribute, "Element '%s' has bad '%s' value '%s': %s", element, name, str, err.Error())
	}
	return value, nil
}

func (attrs xmlAttributes) float(element, name string) (float64, error) {
	str, ok := attrs[name]
	if !ok {
		return 0, errors.Wrapf(ErrMissingAttribute, "Element '%s' has no '%s'", element, name)
	}
	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAttribute, "Element '%s' has bad '%s' value '%s': %s", element, name, str, err.Error())
	}
	return value, nil
}
