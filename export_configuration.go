package osm2routing

import (
	"strings"

	"github.com/pkg/errors"
)

type UnitsType uint16

const (
	UNITS_METERS = UnitsType(iota + 1)
	UNITS_KILOMETERS
)

func (iotaIdx UnitsType) String() string {
	return enumName([]string{"m", "km"}, int(iotaIdx)-1)
}

// fromMeters converts distance in meters to units
func (iotaIdx UnitsType) fromMeters(meters float64) float64 {
	if iotaIdx == UNITS_KILOMETERS {
		return meters / 1000.0
	}
	return meters
}

type GeomFormat uint16

const (
	GEOM_WKT = GeomFormat(iota + 1)
	GEOM_GEOJSON
)

func (iotaIdx GeomFormat) String() string {
	return enumName([]string{"wkt", "geojson"}, int(iotaIdx)-1)
}

// ExportConfiguration describes how RoutableGraph is serialized
type ExportConfiguration struct {
	Units      UnitsType
	GeomFormat GeomFormat
	// Transport filters edges. TRANSPORT_ANY keeps every edge.
	Transport TransportType
}

// DefaultExportConfiguration returns meters, WKT and every edge
func DefaultExportConfiguration() ExportConfiguration {
	return ExportConfiguration{
		Units:      UNITS_METERS,
		GeomFormat: GEOM_WKT,
		Transport:  TRANSPORT_ANY,
	}
}

// ParseUnits parses units flag
func ParseUnits(str string) (UnitsType, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "m", "meters":
		return UNITS_METERS, nil
	case "km", "kilometers":
		return UNITS_KILOMETERS, nil
	default:
		return UNITS_METERS, errors.Errorf("Unknown units '%s'", str)
	}
}

// ParseGeomFormat parses geometry format flag
func ParseGeomFormat(str string) (GeomFormat, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "wkt":
		return GEOM_WKT, nil
	case "geojson":
		return GEOM_GEOJSON, nil
	default:
		return GEOM_WKT, errors.Errorf("Unknown geometry format '%s'", str)
	}
}
