package cityroute

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Dataset is a static description of cities and routes
type Dataset struct {
	Title  string        `yaml:"title"`
	Cities []CityRecord  `yaml:"cities" validate:"required,min=1,dive"`
	Routes []RouteRecord `yaml:"routes" validate:"dive"`
}

// CityRecord describes single city
type CityRecord struct {
	Name string  `yaml:"name" validate:"required"`
	Lat  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `yaml:"lon" validate:"gte=-180,lte=180"`
}

// RouteRecord describes single undirected route. Distance is in kilometers
type RouteRecord struct {
	From     string  `yaml:"from" validate:"required"`
	To       string  `yaml:"to" validate:"required"`
	Distance float64 `yaml:"distance" validate:"gte=0"`
}

// Validate checks field constraints of the dataset. Route endpoints are checked later by Graph
func (ds *Dataset) Validate() error {
	if err := validate.Struct(ds); err != nil {
		return errors.Wrap(ErrInvalidDataset, formatValidationError(err))
	}
	return nil
}

// Graph validates the dataset and builds immutable graph out of it.
// A route which references unknown city fails the whole build
func (ds *Dataset) Graph() (*Graph, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	builder := NewGraphBuilder()
	for _, city := range ds.Cities {
		builder.AddNode(city.Name, city.Lat, city.Lon)
	}
	for i, route := range ds.Routes {
		if err := builder.AddEdge(route.From, route.To, route.Distance); err != nil {
			return nil, errors.Wrapf(err, "route #%d", i)
		}
	}
	return builder.Build(), nil
}

// ReadDatasetYAML decodes dataset from YAML document
func ReadDatasetYAML(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(ds); err != nil {
		return nil, errors.Wrap(err, "Can't decode YAML dataset")
	}
	return ds, nil
}

// ReadDatasetFile reads dataset from file. The format is guessed by file extension:
// '.yaml' / '.yml' for YAML, '.osm' / '.xml' / '.pbf' for OpenStreetMap data
func ReadDatasetFile(filename string, cfg *OSMConfiguration) (*Dataset, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		file, err := os.Open(filename)
		if err != nil {
			return nil, errors.Wrap(err, "File open")
		}
		defer file.Close()
		return ReadDatasetYAML(file)
	case ".osm", ".xml", ".pbf":
		return ReadDatasetOSM(filename, cfg)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

// formatValidationError turns validator errors into single readable message
func formatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must contain at least %s item(s)", field, e.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
