package ranking

import "sort"

// Observations is the set of feature names asserted for one evaluation.
type Observations map[string]struct{}

// NewObservations builds a set from the given feature names. Duplicates
// collapse and empty names are skipped.
func NewObservations(features ...string) Observations {
	obs := make(Observations, len(features))
	for _, f := range features {
		obs.Add(f)
	}
	return obs
}

// Add inserts a feature name.
func (o Observations) Add(feature string) {
	if feature == "" {
		return
	}
	o[feature] = struct{}{}
}

// Remove deletes a feature name. No-op if absent.
func (o Observations) Remove(feature string) {
	delete(o, feature)
}

// Has reports whether the feature was observed.
func (o Observations) Has(feature string) bool {
	_, ok := o[feature]
	return ok
}

// Len returns the number of observed features.
func (o Observations) Len() int {
	return len(o)
}

// Sorted returns the observed features in lexical order.
func (o Observations) Sorted() []string {
	out := make([]string, 0, len(o))
	for f := range o {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
