package cityroute

import (
	"fmt"

	"github.com/paulmach/orb/encoding/wkt"
)

// PathWKT returns WKT LineString of the path. Single-city path gives a Point
func PathWKT(g *Graph, p PathResult) string {
	pts := p.Geometry(g)
	switch len(pts) {
	case 0:
		return ""
	case 1:
		return PrepareWKTPoint(pts[0])
	}
	return wkt.MarshalString(lineString(pts))
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt GeoPoint) string {
	return fmt.Sprintf("POINT(%f %f)", pt.Lon, pt.Lat)
}
