package osm2routing

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const (
	// earthRadiusKm is the sphere radius used by the haversine distance
	earthRadiusKm = 6367.0
	pi180         = math.Pi / 180.0
)

// GeoPoint representation of point on Earth (decimal degrees)
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// Distance returns great circle distance to other point (meters)
func (gp GeoPoint) Distance(other GeoPoint) float64 {
	return greatCircleDistance(gp, other) * 1000.0
}

// Point returns orb representation of point (X == Lon, Y == Lat)
func (gp GeoPoint) Point() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// greatCircleDistance returns distance between two geo-points (kilometers)
func greatCircleDistance(p, q GeoPoint) float64 {
	lat1 := degreesToRadians(p.Lat)
	lon1 := degreesToRadians(p.Lon)
	lat2 := degreesToRadians(q.Lat)
	lon2 := degreesToRadians(q.Lon)
	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Asin(math.Sqrt(a))
	return c * earthRadiusKm
}

// lineString converts set of points to orb.LineString
func lineString(pts []GeoPoint) orb.LineString {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = pts[i].Point()
	}
	return line
}

// validCoordinates checks that point could be placed on the sphere at all
func validCoordinates(gp GeoPoint) bool {
	if math.IsNaN(gp.Lat) || math.IsNaN(gp.Lon) || math.IsInf(gp.Lat, 0) || math.IsInf(gp.Lon, 0) {
		return false
	}
	return true
}
