package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LdDl/cityroute"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	dataFileName = flag.String("data", "", "Dataset file. Expected extensions: .yaml / .yml (YAML), .osm / .xml / .pbf (OpenStreetMap). Built-in sample is used when empty")
	mapFileName  = flag.String("map", "", "Filename of GeoJSON map with highlighted path. Map is not written when empty")
	printWKT     = flag.Bool("wkt", false, "Print WKT geometry of found path")
	engine       = flag.String("engine", cityroute.EngineDijkstra, "Query engine. Expected values: dijkstra / ch (contraction hierarchies)")
	exportCSV    = flag.String("export", "", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then 'map_cities.csv' and 'map_routes.csv' will be produced")
	metricsFile  = flag.String("metrics", "", "Filename for query metrics in Prometheus text format. Metrics are not written when empty")
	verbose      = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("cityroute failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func run(in io.Reader, out io.Writer, logger *zap.Logger) error {
	dataset := cityroute.SampleDataset()
	if *dataFileName != "" {
		var err error
		dataset, err = cityroute.ReadDatasetFile(*dataFileName, cityroute.DefaultOSMConfiguration())
		if err != nil {
			return errors.Wrap(err, "Can't read dataset")
		}
	}
	graph, err := dataset.Graph()
	if err != nil {
		return errors.Wrap(err, "Can't build graph")
	}
	logger.Debug("dataset loaded",
		zap.String("title", dataset.Title),
		zap.Int("cities", graph.Len()),
		zap.Int("routes", len(graph.Edges())),
	)

	if *exportCSV != "" {
		if err := cityroute.ExportToCSV(graph, *exportCSV); err != nil {
			return errors.Wrap(err, "Can't export CSV")
		}
		logger.Info("dataset exported", zap.String("file", *exportCSV))
	}

	options := []func(*cityroute.Planner){
		cityroute.WithEngine(*engine),
		cityroute.WithLogger(logger),
	}
	var metrics *cityroute.Metrics
	if *metricsFile != "" {
		metrics = cityroute.NewMetrics("cityroute")
		options = append(options, cityroute.WithMetrics(metrics))
	}
	planner, err := cityroute.NewPlanner(graph, options...)
	if err != nil {
		return err
	}
	logger.Debug("planner ready", zap.String("engine", planner.Engine()))

	if err := cityroute.WriteRoster(out, graph); err != nil {
		return err
	}

	title := dataset.Title
	if title == "" {
		title = cityroute.SampleTitle
	}
	reader := bufio.NewReader(in)
	for {
		start, ok := prompt(reader, out, "\nEnter the start city: ")
		if !ok {
			break
		}
		end, ok := prompt(reader, out, "Enter the destination city: ")
		if !ok {
			break
		}
		result, err := planner.Route(start, end)
		if err != nil {
			fmt.Fprintln(out, cityroute.DescribeError(start, end, err))
			continue
		}
		fmt.Fprintln(out, cityroute.FormatPath(result))
		fmt.Fprintln(out, result.String())
		if *printWKT {
			fmt.Fprintln(out, cityroute.PathWKT(graph, result))
		}
		if *mapFileName != "" {
			if err := writeMap(graph, result, title, *mapFileName); err != nil {
				logger.Error("can't write map", zap.String("file", *mapFileName), zap.Error(err))
				continue
			}
			logger.Info("map written", zap.String("file", *mapFileName))
		}
	}

	if metrics != nil {
		if err := metrics.WriteToTextfile(*metricsFile); err != nil {
			return errors.Wrap(err, "Can't write metrics")
		}
	}
	return nil
}

// prompt prints question and reads single trimmed line. False is returned on end of input
func prompt(reader *bufio.Reader, out io.Writer, question string) (string, bool) {
	fmt.Fprint(out, question)
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

func writeMap(graph *cityroute.Graph, result cityroute.PathResult, title, fname string) error {
	b, err := cityroute.RenderMap(graph, result.Nodes, cityroute.WithMapTitle(title))
	if err != nil {
		return err
	}
	return os.WriteFile(fname, b, 0644)
}
