package relevance

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/kailas-cloud/resrank/internal/domain"
)

func TestFit_SortedVocabulary(t *testing.T) {
	v, err := Fit([][]string{{"python", "go"}, {"rust", "go"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"go", "python", "rust"}
	if !reflect.DeepEqual(v.Terms(), want) {
		t.Errorf("Terms() = %v, want %v", v.Terms(), want)
	}
}

func TestFit_Empty(t *testing.T) {
	for _, docs := range [][][]string{nil, {}, {{}, {}}} {
		if _, err := Fit(docs); !errors.Is(err, domain.ErrDegenerateCorpus) {
			t.Errorf("Fit(%v) err = %v, want ErrDegenerateCorpus", docs, err)
		}
	}
}

func TestTransform_UnitLength(t *testing.T) {
	v, err := Fit([][]string{{"a", "b", "b"}, {"c"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vec := v.Transform([]string{"a", "b", "b", "unknown"})
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if math.Abs(norm-1) > 1e-9 {
		t.Errorf("squared norm = %v, want 1", norm)
	}
	if vec[2] != 0 {
		t.Errorf("absent term weight = %v, want 0", vec[2])
	}
}

func TestTransform_EmptyIsZero(t *testing.T) {
	v, err := Fit([][]string{{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, x := range v.Transform(nil) {
		if x != 0 {
			t.Errorf("vec[%d] = %v, want 0", i, x)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  go   python\trust\n")
	want := []string{"go", "python", "rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
	if len(Tokens("")) != 0 {
		t.Error("Tokens(\"\") should be empty")
	}
}
