package osm2routing

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// marshalLineString returns text representation of line in given format
func marshalLineString(line orb.LineString, format GeomFormat) (string, error) {
	if format == GEOM_GEOJSON {
		pts2d := make([][]float64, len(line))
		for i := range line {
			pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
		}
		b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
		if err != nil {
			return "", errors.Wrap(err, "Can't convert geometry to GeoJSON")
		}
		return string(b), nil
	}
	return wkt.MarshalString(line), nil
}

// marshalPoint returns text representation of point in given format
func marshalPoint(pt GeoPoint, format GeomFormat) (string, error) {
	if format == GEOM_GEOJSON {
		b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
		if err != nil {
			return "", errors.Wrap(err, "Can't convert geometry to GeoJSON")
		}
		return string(b), nil
	}
	return wkt.MarshalString(pt.Point()), nil
}
