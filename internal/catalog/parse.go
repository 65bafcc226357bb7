package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/triage/internal/ranking"
)

// ErrInvalidDocument indicates a catalog file that does not match the
// catalog schema.
var ErrInvalidDocument = errors.New("invalid catalog document")

type fileCondition struct {
	Name    string             `json:"name"`
	Weights map[string]float64 `json:"weights"`
}

type fileCatalog struct {
	Conditions []fileCondition `json:"conditions"`
}

// Parse decodes a YAML or JSON catalog document. The document is checked
// against the catalog schema before it is converted, and the result is
// validated with ranking.Catalog.Validate. Condition order is preserved.
func Parse(data []byte) (ranking.Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// Normalize YAML scalars to JSON types for the schema validator.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var fc fileCatalog
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	c := make(ranking.Catalog, 0, len(fc.Conditions))
	for _, cond := range fc.Conditions {
		c = append(c, ranking.Profile{Name: cond.Name, Weights: cond.Weights})
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
