package cityroute

import (
	"strconv"
	"strings"
)

// OSMConfiguration allows to pick cities and routes out of OSM data by certain tags
type OSMConfiguration struct {
	// PlaceTags values of 'place' tag which turn an OSM node into a city
	PlaceTags []string
	// NameTag tag holding city name. Nodes without it are skipped
	NameTag string
	// EntityName tag key for route ways, e.g. 'route' or 'highway'
	EntityName string
	// Tags values of EntityName tag which are accepted as routes. Empty means any value
	Tags []string
	// DistanceTag tag holding route length in kilometers. When absent the way geometry length is used
	DistanceTag string
}

// DefaultOSMConfiguration returns configuration for place=city|town nodes and route=road ways
func DefaultOSMConfiguration() *OSMConfiguration {
	return &OSMConfiguration{
		PlaceTags:   []string{"city", "town"},
		NameTag:     "name",
		EntityName:  "route",
		Tags:        []string{"road"},
		DistanceTag: "distance",
	}
}

// CheckTag checks if incoming route tag is represented in configuration
func (cfg *OSMConfiguration) CheckTag(tag string) bool {
	if len(cfg.Tags) == 0 {
		return tag != ""
	}
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

// CheckPlace checks if incoming place tag is represented in configuration
func (cfg *OSMConfiguration) CheckPlace(place string) bool {
	for i := range cfg.PlaceTags {
		if cfg.PlaceTags[i] == place {
			return true
		}
	}
	return false
}

// parseDistance parses values like '70', '70.5', '70 km' or '70000 m' into kilometers
func parseDistance(value string) (float64, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return 0, false
	}
	multiplier := 1.0
	switch {
	case strings.HasSuffix(value, "km"):
		value = strings.TrimSpace(strings.TrimSuffix(value, "km"))
	case strings.HasSuffix(value, "m"):
		value = strings.TrimSpace(strings.TrimSuffix(value, "m"))
		multiplier = 0.001
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * multiplier, true
}
