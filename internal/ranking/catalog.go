package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Features returns every distinct feature name across the catalog, sorted.
func (c Catalog) Features() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c {
		for f := range p.Weights {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Lookup returns the profile with the given name.
func (c Catalog) Lookup(name string) (Profile, bool) {
	for _, p := range c {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns candidate names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.Name
	}
	return out
}

// Validate performs structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrInvalidCatalog
	}

	var errs []string
	names := make(map[string]bool, len(c))
	for i, p := range c {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("candidate %d has an empty name", i))
		} else if names[p.Name] {
			errs = append(errs, fmt.Sprintf("duplicate candidate name: %q", p.Name))
		}
		names[p.Name] = true

		if len(p.Weights) == 0 {
			errs = append(errs, fmt.Sprintf("candidate %q has no weighted features", p.Name))
		}

		features := make([]string, 0, len(p.Weights))
		for f := range p.Weights {
			features = append(features, f)
		}
		sort.Strings(features)
		var total float64
		for _, f := range features {
			w := p.Weights[f]
			if strings.TrimSpace(f) == "" {
				errs = append(errs, fmt.Sprintf("candidate %q has an empty feature name", p.Name))
				continue
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				errs = append(errs, fmt.Sprintf("candidate %q feature %q: weight must be finite, got %v", p.Name, f, w))
			} else if w < 0 {
				errs = append(errs, fmt.Sprintf("candidate %q feature %q: weight must be >= 0, got %v", p.Name, f, w))
			} else {
				total += w
			}
		}
		if math.IsInf(total, 0) {
			errs = append(errs, fmt.Sprintf("candidate %q: sum of weights overflows", p.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
