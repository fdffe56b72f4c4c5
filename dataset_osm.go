package cityroute

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// OSMScanner is the common part of osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// ReadDatasetOSM reads cities and routes from OSM file ('.osm' / '.xml' or '.pbf').
// Nil configuration means DefaultOSMConfiguration
func ReadDatasetOSM(filename string, cfg *OSMConfiguration) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()

	var scanner OSMScanner
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".osm", ".xml":
		scanner = osmxml.New(context.Background(), file)
	case ".pbf":
		scanner = osmpbf.New(context.Background(), file, 4)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
	defer scanner.Close()

	ds, err := scanDatasetOSM(scanner, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't parse OSM data from '%s'", filename)
	}
	if ds.Title == "" {
		ds.Title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return ds, nil
}

// scanDatasetOSM collects named place nodes as cities and tagged ways connecting two cities as routes.
// Ways whose first or last node is not a city are skipped
func scanDatasetOSM(scanner OSMScanner, cfg *OSMConfiguration) (*Dataset, error) {
	if cfg == nil {
		cfg = DefaultOSMConfiguration()
	}
	points := make(map[osm.NodeID]GeoPoint)
	cities := make(map[osm.NodeID]string)
	ds := &Dataset{}
	ways := []*osm.Way{}
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			points[obj.ID] = GeoPoint{Lat: obj.Lat, Lon: obj.Lon}
			if !cfg.CheckPlace(obj.Tags.Find("place")) {
				continue
			}
			name := obj.Tags.Find(cfg.NameTag)
			if name == "" {
				continue
			}
			cities[obj.ID] = name
			ds.Cities = append(ds.Cities, CityRecord{Name: name, Lat: obj.Lat, Lon: obj.Lon})
		case *osm.Way:
			if !cfg.CheckTag(obj.Tags.Find(cfg.EntityName)) {
				continue
			}
			ways = append(ways, obj)
		}
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "Scanner error")
	}

	for _, way := range ways {
		if len(way.Nodes) < 2 {
			continue
		}
		source, ok := cities[way.Nodes[0].ID]
		if !ok {
			continue
		}
		target, ok := cities[way.Nodes[len(way.Nodes)-1].ID]
		if !ok {
			continue
		}
		distance, ok := parseDistance(way.Tags.Find(cfg.DistanceTag))
		if !ok {
			geom := make([]GeoPoint, 0, len(way.Nodes))
			for _, wn := range way.Nodes {
				if pt, ok := points[wn.ID]; ok {
					geom = append(geom, pt)
				}
			}
			if len(geom) < 2 {
				geom = []GeoPoint{points[way.Nodes[0].ID], points[way.Nodes[len(way.Nodes)-1].ID]}
			}
			distance = getSphericalLength(geom)
		}
		ds.Routes = append(ds.Routes, RouteRecord{From: source, To: target, Distance: distance})
	}
	return ds, nil
}
