package cityroute

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportToCSV writes cities and routes into two ';'-separated files.
// E.g.: if file name is 'map.csv' then 'map_cities.csv' and 'map_routes.csv' will be produced
func ExportToCSV(g *Graph, fname string) error {
	if g == nil {
		return ErrNilGraph
	}
	fnameParts := strings.Split(fname, ".csv")
	fnameCities := fnameParts[0] + "_cities.csv"
	fnameRoutes := fnameParts[0] + "_routes.csv"

	err := exportToFile(fnameCities, func(w io.Writer) error { return WriteCitiesCSV(w, g) })
	if err != nil {
		return errors.Wrap(err, "Can't export cities")
	}
	err = exportToFile(fnameRoutes, func(w io.Writer) error { return WriteRoutesCSV(w, g) })
	if err != nil {
		return errors.Wrap(err, "Can't export routes")
	}
	return nil
}

func exportToFile(fname string, write func(w io.Writer) error) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()
	return write(file)
}

// WriteCitiesCSV writes header and one row per city: name, lat, lon, geom (WKT)
func WriteCitiesCSV(w io.Writer, g *Graph) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write([]string{"name", "lat", "lon", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, node := range g.Nodes() {
		err = writer.Write([]string{
			node.ID,
			fmt.Sprintf("%f", node.Point.Lat),
			fmt.Sprintf("%f", node.Point.Lon),
			PrepareWKTPoint(node.Point),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write city")
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteRoutesCSV writes header and one row per route: from, to, distance_km, geom (WKT)
func WriteRoutesCSV(w io.Writer, g *Graph) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write([]string{"from", "to", "distance_km", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, edge := range g.Edges() {
		line := lineString(g.points([]string{edge.From, edge.To}))
		err = writer.Write([]string{
			edge.From,
			edge.To,
			formatDistance(edge.Weight),
			wkt.MarshalString(line),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write route")
		}
	}
	writer.Flush()
	return writer.Error()
}
