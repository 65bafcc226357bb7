package ranking

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func twoCandidates() Catalog {
	return Catalog{
		{Name: "A", Weights: map[string]float64{"fever": 2.0, "cough": 1.0}},
		{Name: "B", Weights: map[string]float64{"fever": 1.0, "rash": 3.0}},
	}
}

func sumShares(results []Result) float64 {
	var sum float64
	for _, r := range results {
		sum += r.Share
	}
	return sum
}

func TestScore_SumsObservedWeights(t *testing.T) {
	c := twoCandidates()
	obs := NewObservations("fever", "cough")

	if got := Score(c[0], obs); got != 3.0 {
		t.Errorf("Score(A) = %v, want 3.0", got)
	}
	if got := Score(c[1], obs); got != 1.0 {
		t.Errorf("Score(B) = %v, want 1.0", got)
	}
}

func TestScore_UnknownFeaturesIgnored(t *testing.T) {
	p := Profile{Name: "A", Weights: map[string]float64{"fever": 2.0}}
	got := Score(p, NewObservations("fever", "unheard-of"))
	if got != 2.0 {
		t.Errorf("Score = %v, want 2.0", got)
	}
}

func TestScore_NegativeWeightsSummedAsIs(t *testing.T) {
	p := Profile{Name: "A", Weights: map[string]float64{"x": 2.0, "y": -0.5}}
	got := Score(p, NewObservations("x", "y"))
	if got != 1.5 {
		t.Errorf("Score = %v, want 1.5", got)
	}
}

func TestScore_EmptyObservations(t *testing.T) {
	p := Profile{Name: "A", Weights: map[string]float64{"x": 2.0}}
	if got := Score(p, NewObservations()); got != 0 {
		t.Errorf("Score = %v, want 0", got)
	}
}

func TestRank_ConcreteScenario(t *testing.T) {
	results, err := Rank(twoCandidates(), NewObservations("fever", "cough"))
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if results[0].Name != "A" || results[1].Name != "B" {
		t.Fatalf("order = [%s %s], want [A B]", results[0].Name, results[1].Name)
	}
	if results[0].Score != 3.0 || results[1].Score != 1.0 {
		t.Errorf("scores = [%v %v], want [3 1]", results[0].Score, results[1].Score)
	}

	wantA := 1 / (1 + math.Exp(-2))
	if math.Abs(results[0].Share-wantA) > 1e-12 {
		t.Errorf("share(A) = %v, want %v", results[0].Share, wantA)
	}
	if math.Abs(results[0].Share-0.8808) > 1e-4 {
		t.Errorf("share(A) = %v, want ~0.8808", results[0].Share)
	}
	if math.Abs(results[1].Share-0.1192) > 1e-4 {
		t.Errorf("share(B) = %v, want ~0.1192", results[1].Share)
	}
}

func TestRank_EmptyObservationsUniform(t *testing.T) {
	results, err := Rank(twoCandidates(), NewObservations())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for _, r := range results {
		if r.Score != 0 {
			t.Errorf("%s score = %v, want 0", r.Name, r.Score)
		}
		if r.Share != 0.5 {
			t.Errorf("%s share = %v, want 0.5", r.Name, r.Share)
		}
	}
	// Equal shares keep catalog order.
	if results[0].Name != "A" || results[1].Name != "B" {
		t.Errorf("order = [%s %s], want [A B]", results[0].Name, results[1].Name)
	}
}

func TestRank_UniformOverN(t *testing.T) {
	c := Catalog{
		{Name: "a", Weights: map[string]float64{"x": 1}},
		{Name: "b", Weights: map[string]float64{"y": 1}},
		{Name: "c", Weights: map[string]float64{"z": 1}},
		{Name: "d", Weights: map[string]float64{"w": 1}},
		{Name: "e", Weights: map[string]float64{"v": 1}},
	}
	results, err := Rank(c, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for i, r := range results {
		if r.Share != 0.2 {
			t.Errorf("%s share = %v, want 0.2", r.Name, r.Share)
		}
		if r.Name != c[i].Name {
			t.Errorf("position %d = %s, want %s", i, r.Name, c[i].Name)
		}
	}
}

func TestRank_SingleCandidateShareIsOne(t *testing.T) {
	c := Catalog{{Name: "only", Weights: map[string]float64{"x": 1234.5}}}
	for _, obs := range []Observations{NewObservations(), NewObservations("x")} {
		results, err := Rank(c, obs)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if results[0].Share != 1.0 {
			t.Errorf("share = %v, want exactly 1.0", results[0].Share)
		}
	}
}

func TestRank_EmptyCatalog(t *testing.T) {
	_, err := Rank(nil, NewObservations("fever"))
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("got %v, want ErrInvalidCatalog", err)
	}
	_, err = Rank(Catalog{}, nil)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("got %v, want ErrInvalidCatalog", err)
	}
}

func TestRank_LargeScoresDoNotOverflow(t *testing.T) {
	c := Catalog{
		{Name: "big", Weights: map[string]float64{"x": 5000}},
		{Name: "bigger", Weights: map[string]float64{"x": 5001}},
	}
	results, err := Rank(c, NewObservations("x"))
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for _, r := range results {
		if math.IsNaN(r.Share) || math.IsInf(r.Share, 0) {
			t.Fatalf("%s share = %v, want finite", r.Name, r.Share)
		}
	}
	if results[0].Name != "bigger" {
		t.Errorf("top = %s, want bigger", results[0].Name)
	}
	want := 1 / (1 + math.Exp(-1))
	if math.Abs(results[0].Share-want) > 1e-12 {
		t.Errorf("share = %v, want %v", results[0].Share, want)
	}
}

func TestRank_OverflowingScoresSplitShare(t *testing.T) {
	c := Catalog{
		{Name: "small", Weights: map[string]float64{"x": 1}},
		{Name: "huge", Weights: map[string]float64{"x": 1e308, "y": 1e308}},
		{Name: "huge2", Weights: map[string]float64{"x": 1e308, "y": 1e308}},
	}
	results, err := Rank(c, NewObservations("x", "y"))
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	want := map[string]float64{"huge": 0.5, "huge2": 0.5, "small": 0}
	var sum float64
	for _, r := range results {
		if math.IsNaN(r.Share) || r.Share < 0 || r.Share > 1 {
			t.Fatalf("%s share = %v, want in [0,1]", r.Name, r.Share)
		}
		if r.Share != want[r.Name] {
			t.Errorf("%s share = %v, want %v", r.Name, r.Share, want[r.Name])
		}
		sum += r.Share
	}
	if sum != 1 {
		t.Errorf("shares sum to %v, want 1", sum)
	}
	if results[0].Name != "huge" || results[1].Name != "huge2" {
		t.Errorf("order = %s, %s; want huge, huge2", results[0].Name, results[1].Name)
	}
}

func TestRank_SharesSumToOneAndInRange(t *testing.T) {
	c := Catalog{
		{Name: "a", Weights: map[string]float64{"f1": 0.3, "f2": 2.5, "f3": 0.1}},
		{Name: "b", Weights: map[string]float64{"f1": 1.7, "f4": 0.9}},
		{Name: "c", Weights: map[string]float64{"f2": 0.2, "f3": 3.3, "f4": 1.1}},
		{Name: "d", Weights: map[string]float64{"f5": 7.0}},
	}
	observations := []Observations{
		NewObservations(),
		NewObservations("f1"),
		NewObservations("f1", "f2", "f3"),
		NewObservations("f2", "f4", "f5"),
		NewObservations("f1", "f2", "f3", "f4", "f5", "unknown"),
	}
	for _, obs := range observations {
		results, err := Rank(c, obs)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if len(results) != len(c) {
			t.Fatalf("got %d results, want %d", len(results), len(c))
		}
		if s := sumShares(results); math.Abs(s-1) > 1e-9 {
			t.Errorf("obs %v: shares sum to %v, want 1", obs.Sorted(), s)
		}
		for i, r := range results {
			if r.Share < 0 || r.Share > 1 {
				t.Errorf("%s share %v out of [0,1]", r.Name, r.Share)
			}
			if i > 0 && results[i-1].Share < r.Share {
				t.Errorf("results not sorted by share at %d", i)
			}
			if i > 0 && results[i-1].Score < r.Score {
				t.Errorf("higher share has lower raw score at %d", i)
			}
		}
	}
}

func TestRank_OrderInvariantUnderScaling(t *testing.T) {
	base := Catalog{
		{Name: "a", Weights: map[string]float64{"f1": 0.3, "f2": 2.5}},
		{Name: "b", Weights: map[string]float64{"f1": 1.7, "f3": 0.9}},
		{Name: "c", Weights: map[string]float64{"f2": 0.2, "f3": 3.3}},
	}
	obs := NewObservations("f1", "f2", "f3")

	want, err := Rank(base, obs)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	for _, k := range []float64{0.5, 3, 10} {
		scaled := make(Catalog, len(base))
		for i, p := range base {
			w := make(map[string]float64, len(p.Weights))
			for f, v := range p.Weights {
				w[f] = v * k
			}
			scaled[i] = Profile{Name: p.Name, Weights: w}
		}
		got, err := Rank(scaled, obs)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		for i := range want {
			if got[i].Name != want[i].Name {
				t.Errorf("k=%v: position %d = %s, want %s", k, i, got[i].Name, want[i].Name)
			}
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	c := Catalog{
		{Name: "a", Weights: map[string]float64{"f1": 0.1, "f2": 0.2, "f3": 0.3, "f4": 0.4}},
		{Name: "b", Weights: map[string]float64{"f1": 0.7, "f2": 0.11, "f3": 0.13, "f4": 0.17}},
	}
	obs := NewObservations("f4", "f3", "f2", "f1")

	first, err := Rank(c, obs)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Rank(c, NewObservations("f1", "f2", "f3", "f4"))
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	c := twoCandidates()
	if _, err := Rank(c, NewObservations("rash")); err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if c[0].Name != "A" || c[1].Name != "B" {
		t.Errorf("catalog order changed: %v", c.Names())
	}
}

func TestTop(t *testing.T) {
	if _, ok := Top(nil); ok {
		t.Error("Top(nil) should report false")
	}
	results, _ := Rank(twoCandidates(), NewObservations("rash"))
	top, ok := Top(results)
	if !ok || top.Name != "B" {
		t.Errorf("Top = %v, %v; want B", top, ok)
	}
}
