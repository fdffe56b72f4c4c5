package cityroute

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

const (
	// DefaultMapPadding is a margin (degrees) around cities on rendered map
	DefaultMapPadding = 1.0
)

// MapOptions controls GeoJSON map rendering
type MapOptions struct {
	Title     string
	Padding   float64
	WithEdges bool
}

// DefaultMapOptions returns options used when none are given
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Title:     SampleTitle,
		Padding:   DefaultMapPadding,
		WithEdges: true,
	}
}

// MapOption customizes MapOptions
type MapOption func(*MapOptions)

// WithMapTitle sets title of the map
func WithMapTitle(title string) MapOption {
	return func(opts *MapOptions) {
		opts.Title = title
	}
}

// WithMapPadding sets margin in degrees around the cities
func WithMapPadding(padding float64) MapOption {
	return func(opts *MapOptions) {
		opts.Padding = padding
	}
}

// WithMapEdges enables or disables rendering of every route
func WithMapEdges(withEdges bool) MapOption {
	return func(opts *MapOptions) {
		opts.WithEdges = withEdges
	}
}

// MapFeatureCollection renders cities, routes and optional highlighted path as GeoJSON.
//
// Every city becomes a Point feature with 'name' property, every route a LineString with 'from', 'to' and 'distance'.
// Highlighted path (if it has at least two cities) is the last feature, a LineString with 'highlight' set to true
// and 'name' set to the map title. 'straight_distance' is great-circle distance (kilometers) between path ends
func MapFeatureCollection(g *Graph, highlight []string, options ...MapOption) (*geojson.FeatureCollection, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	opts := DefaultMapOptions()
	for _, option := range options {
		option(&opts)
	}
	for _, id := range highlight {
		if !g.HasNode(id) {
			return nil, errors.Wrapf(ErrInvalidNode, "'%s'", id)
		}
	}

	fc := geojson.NewFeatureCollection()
	nodes := g.Nodes()
	pts := make([]GeoPoint, 0, len(nodes))
	for _, node := range nodes {
		feature := geojson.NewPointFeature([]float64{node.Point.Lon, node.Point.Lat})
		feature.SetProperty("name", node.ID)
		fc.AddFeature(feature)
		pts = append(pts, node.Point)
	}
	if opts.WithEdges {
		for _, edge := range g.Edges() {
			feature := geojson.NewLineStringFeature(coordinates(g.points([]string{edge.From, edge.To})))
			feature.SetProperty("from", edge.From)
			feature.SetProperty("to", edge.To)
			feature.SetProperty("distance", edge.Weight)
			fc.AddFeature(feature)
		}
	}
	if len(highlight) > 1 {
		pathPts := g.points(highlight)
		feature := geojson.NewLineStringFeature(coordinates(pathPts))
		feature.SetProperty("highlight", true)
		feature.SetProperty("straight_distance", greatCircleDistance(pathPts[0], pathPts[len(pathPts)-1]))
		feature.SetProperty("name", opts.Title)
		total := 0.0
		for _, leg := range (PathResult{Nodes: highlight}).Legs(g) {
			if leg.Weight < 0 {
				// not a chain of routes
				total = -1
				break
			}
			total += leg.Weight
		}
		if total >= 0 {
			feature.SetProperty("distance", total)
		}
		fc.AddFeature(feature)
	}
	if len(pts) > 0 {
		bound := boundWithPadding(pts, opts.Padding)
		fc.BoundingBox = []float64{bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y()}
	}
	return fc, nil
}

// RenderMap returns GeoJSON document for MapFeatureCollection
func RenderMap(g *Graph, highlight []string, options ...MapOption) ([]byte, error) {
	fc, err := MapFeatureCollection(g, highlight, options...)
	if err != nil {
		return nil, err
	}
	return fc.MarshalJSON()
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) string {
	b, err := geojson.NewLineStringGeometry(coordinates(pts)).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) string {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

func coordinates(pts []GeoPoint) [][]float64 {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	return pts2d
}
