package ranking

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestFeatures_DistinctSorted(t *testing.T) {
	got := twoCandidates().Features()
	want := []string{"cough", "fever", "rash"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Features = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	c := twoCandidates()
	p, ok := c.Lookup("B")
	if !ok {
		t.Fatal("Lookup(B) not found")
	}
	if p.Weights["rash"] != 3.0 {
		t.Errorf("rash weight = %v, want 3", p.Weights["rash"])
	}
	if _, ok := c.Lookup("Z"); ok {
		t.Error("Lookup(Z) should not be found")
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := twoCandidates().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := (Catalog{}).Validate(); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("got %v, want ErrInvalidCatalog", err)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := Catalog{
		{Name: "a", Weights: map[string]float64{"x": 1}},
		{Name: "a", Weights: map[string]float64{"x": -1}},
		{Name: " ", Weights: map[string]float64{"y": math.NaN()}},
		{Name: "empty"},
	}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate", ">= 0", "empty name", "finite", "no weighted features"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q, got: %v", want, msg)
		}
	}
}

func TestValidate_RejectsOverflowingWeightSum(t *testing.T) {
	c := Catalog{
		{Name: "A", Weights: map[string]float64{"x": 1e308, "y": 1e308}},
		{Name: "B", Weights: map[string]float64{"x": 1}},
	}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected an error for a weight sum that overflows")
	}
	if !strings.Contains(err.Error(), `candidate "A": sum of weights overflows`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestObservations(t *testing.T) {
	obs := NewObservations("b", "a", "b", "")
	if obs.Len() != 2 {
		t.Errorf("Len = %d, want 2", obs.Len())
	}
	if !obs.Has("a") || obs.Has("") {
		t.Error("Has reported wrong membership")
	}
	if got := obs.Sorted(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Sorted = %v", got)
	}
	obs.Remove("a")
	if obs.Has("a") {
		t.Error("Remove did not delete a")
	}
}
