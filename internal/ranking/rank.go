package ranking

import (
	"math"
	"sort"
)

// Score sums the profile weights of every observed feature. Features the
// profile does not know contribute nothing.
func Score(p Profile, obs Observations) float64 {
	return score(p, obs.Sorted())
}

// score adds weights in the order of the given feature list so repeated
// evaluations produce bit-identical sums.
func score(p Profile, features []string) float64 {
	var total float64
	for _, f := range features {
		if w, ok := p.Weights[f]; ok {
			total += w
		}
	}
	return total
}

// Rank scores every candidate and normalizes the raw scores with a
// max-shifted softmax. Results are ordered by share descending; equal
// shares keep catalog order.
func Rank(c Catalog, obs Observations) ([]Result, error) {
	if len(c) == 0 {
		return nil, ErrInvalidCatalog
	}

	features := obs.Sorted()
	results := make([]Result, len(c))
	maxScore := math.Inf(-1)
	for i, p := range c {
		s := score(p, features)
		results[i] = Result{Name: p.Name, Score: s}
		if s > maxScore {
			maxScore = s
		}
	}

	// Scores that overflowed share the whole mass evenly.
	if math.IsInf(maxScore, 1) {
		var n float64
		for _, r := range results {
			if math.IsInf(r.Score, 1) {
				n++
			}
		}
		for i := range results {
			if math.IsInf(results[i].Score, 1) {
				results[i].Share = 1 / n
			}
		}
		sortByShare(results)
		return results, nil
	}

	var sum float64
	for i := range results {
		e := math.Exp(results[i].Score - maxScore)
		results[i].Share = e
		sum += e
	}
	for i := range results {
		results[i].Share /= sum
	}

	sortByShare(results)
	return results, nil
}

// sortByShare orders results by share descending, keeping catalog order
// for equal shares.
func sortByShare(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Share > results[j].Share
	})
}

// Top returns the highest-ranked result, or false for an empty slice.
func Top(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}
