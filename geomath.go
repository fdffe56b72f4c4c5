package cityroute

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// orbPoint returns point in orb's (X == Lon, Y == Lat) layout
func (gp GeoPoint) orbPoint() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// greatCircleDistance returns distance between two geo-points (kilometers)
func greatCircleDistance(p, q GeoPoint) float64 {
	return geo.DistanceHaversine(p.orbPoint(), q.orbPoint()) / 1000.0
}

// lineString converts points to orb.LineString
func lineString(pts []GeoPoint) orb.LineString {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = pts[i].orbPoint()
	}
	return line
}

// getSphericalLength returns length for given line (kilometers)
func getSphericalLength(line []GeoPoint) float64 {
	if len(line) < 2 {
		return 0
	}
	return geo.LengthHaversign(lineString(line)) / 1000.0
}

// boundWithPadding returns bounding box of given points extended by padding degrees on every side.
// Empty input gives zero bound
func boundWithPadding(pts []GeoPoint, padding float64) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(pts))
	for i := range pts {
		mp[i] = pts[i].orbPoint()
	}
	bound := mp.Bound()
	return orb.Bound{
		Min: orb.Point{bound.Min.X() - padding, bound.Min.Y() - padding},
		Max: orb.Point{bound.Max.X() + padding, bound.Max.Y() + padding},
	}
}
