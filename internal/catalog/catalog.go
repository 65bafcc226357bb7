// Package catalog provides the candidate catalogs the ranking engine
// scores: the built-in symptom catalog and catalogs loaded from YAML or
// JSON files.
package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/triage/internal/ranking"
)

func init() {
	if err := seedConditions.Validate(); err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
}

// Builtin returns a copy of the built-in symptom catalog.
func Builtin() ranking.Catalog {
	out := make(ranking.Catalog, len(seedConditions))
	for i, p := range seedConditions {
		w := make(map[string]float64, len(p.Weights))
		for f, v := range p.Weights {
			w[f] = v
		}
		out[i] = ranking.Profile{Name: p.Name, Weights: w}
	}
	return out
}

// Load reads and validates a catalog file.
func Load(path string) (ranking.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Resolve loads the catalog at path, or returns the built-in catalog when
// path is empty.
func Resolve(path string) (ranking.Catalog, error) {
	if path == "" {
		slog.Debug("using built-in catalog", "candidates", len(seedConditions))
		return Builtin(), nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded catalog", "path", path, "candidates", len(c))
	return c, nil
}
