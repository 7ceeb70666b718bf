// Package config loads the YAML configuration of the path finder binaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Navigators which can be selected by name
var Navigators = []string{"ucs", "dijkstra", "astar", "astar-precomputed", "bfs"}

type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type GraphConfig struct {
	Nodes    string `yaml:"nodes"`    // node list, one "label" or "label x y" per line
	Arcs     string `yaml:"arcs"`     // arc list, one "from to weight" per line, loaded in both directions
	Fmi      string `yaml:"fmi"`      // directed graph in fmi format, used instead of the lists
	Capacity int    `yaml:"capacity"` // number of slots, 0 for the number of nodes
}

type SearchConfig struct {
	Navigator           string  `yaml:"navigator"`
	HeuristicMultiplier float64 `yaml:"heuristic_multiplier"`
	DiscoveryMarking    bool    `yaml:"discovery_marking"`
}

type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"` // text or json
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

func Default() Config {
	return Config{
		Graph:  GraphConfig{Nodes: "nodes.txt", Arcs: "arcs.txt"},
		Search: SearchConfig{Navigator: "astar", HeuristicMultiplier: 0.9},
		Log:    LogConfig{Verbosity: 1, Format: "text"},
		Server: ServerConfig{Address: ":8081"},
	}
}

// Load reads the YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// Decode parses the YAML document strictly on top of the defaults and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Graph.Fmi == "" && (c.Graph.Nodes == "" || c.Graph.Arcs == "") {
		errs = append(errs, errors.New("graph: either fmi or nodes and arcs are required"))
	}
	if c.Graph.Capacity < 0 {
		errs = append(errs, fmt.Errorf("graph: capacity %v is negative", c.Graph.Capacity))
	}
	if !slices.Contains(Navigators, c.Search.Navigator) {
		errs = append(errs, fmt.Errorf("search: unknown navigator %q", c.Search.Navigator))
	}
	if c.Search.HeuristicMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("search: heuristic multiplier %v has to be positive", c.Search.HeuristicMultiplier))
	}
	if c.Log.Verbosity < 0 {
		errs = append(errs, fmt.Errorf("log: verbosity %v is negative", c.Log.Verbosity))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log: unknown format %q", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
