package namegen

import (
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestNew_EmptyLists(t *testing.T) {
	tests := []struct {
		name       string
		adjectives []string
		nouns      []string
	}{
		{"empty adjectives", nil, []string{"truth"}},
		{"empty nouns", []string{"true"}, nil},
		{"both empty", nil, nil},
		{"empty slices", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.adjectives, tt.nouns, Config{})
			if !errors.Is(err, ErrEmptyWordList) {
				t.Errorf("New() error = %v, want ErrEmptyWordList", err)
			}
			if g != nil {
				t.Error("New() returned a generator for an invalid configuration")
			}
		})
	}
}

func TestNext_NeverTerminates(t *testing.T) {
	g := Default()
	re := regexp.MustCompile(`^[a-z]+-[a-z]+$`)

	for i := 0; i < 1000; i++ {
		name := g.Next()
		if name == "" {
			t.Fatalf("Next() returned empty string on draw %d", i)
		}
		if !re.MatchString(name) {
			t.Fatalf("Next() = %q, want kebab-case adjective-noun", name)
		}
	}
}

func TestNext_RepeatsAllowed(t *testing.T) {
	// A two-word space must repeat quickly; the generator keeps no seen-set.
	g, err := New([]string{"true"}, []string{"truth"}, Config{Style: KebabCase})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := g.Next()
	second := g.Next()
	if first != second {
		t.Errorf("expected identical draws from single-word lists, got %q and %q", first, second)
	}
}

func TestNumberSuffix_Range(t *testing.T) {
	g, err := New([]string{"true"}, []string{"truth"}, Config{
		Style:    KebabCase,
		Numbered: true,
		Rand:     rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5000; i++ {
		name := g.Next()
		suffix, ok := strings.CutPrefix(name, "true-truth-")
		if !ok {
			t.Fatalf("Next() = %q, want true-truth-NNNN", name)
		}
		if len(suffix) != 4 {
			t.Fatalf("suffix %q is not exactly 4 digits", suffix)
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			t.Fatalf("suffix %q is not numeric: %v", suffix, err)
		}
		if n < 1 || n > 9999 {
			t.Fatalf("suffix %04d out of range 0001-9999", n)
		}
	}
}

func TestDeterminism_SameSeed(t *testing.T) {
	newSeeded := func(seed int64) *Generator {
		g, err := New(Adjectives, Nouns, Config{
			Style:    KebabCase,
			Numbered: true,
			Rand:     rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return g
	}

	a := newSeeded(1234)
	b := newSeeded(1234)
	for i := 0; i < 100; i++ {
		got, want := a.Next(), b.Next()
		if got != want {
			t.Fatalf("draw %d diverged: %q vs %q", i, got, want)
		}
	}

	c := newSeeded(5678)
	d := newSeeded(1234)
	same := true
	for i := 0; i < 100; i++ {
		if c.Next() != d.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical 100-name sequences")
	}
}

func TestTake(t *testing.T) {
	g := Default()

	names := g.Take(10)
	if len(names) != 10 {
		t.Fatalf("Take(10) returned %d names", len(names))
	}
	for _, name := range names {
		if name == "" {
			t.Error("Take() returned an empty name")
		}
	}

	if got := g.Take(0); len(got) != 0 {
		t.Errorf("Take(0) returned %d names", len(got))
	}
}

func TestDefault(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+-[a-z]+$`)

	name := Default().Next()
	if !re.MatchString(name) {
		t.Errorf("Default().Next() = %q, want kebab-case adjective-noun", name)
	}
}

func TestWordListCoverage(t *testing.T) {
	// Selection is uniform with replacement; over enough draws both lists
	// should show wide coverage.
	g := Default()

	adjSeen := make(map[string]bool)
	nounSeen := make(map[string]bool)
	for i := 0; i < len(Adjectives)*20; i++ {
		parts := strings.SplitN(g.Next(), "-", 2)
		if len(parts) != 2 {
			t.Fatalf("unexpected shape: %v", parts)
		}
		adjSeen[parts[0]] = true
		nounSeen[parts[1]] = true
	}

	if pct := 100 * len(adjSeen) / len(Adjectives); pct < 50 {
		t.Errorf("suspiciously low adjective coverage: %d%%", pct)
	}
	if pct := 100 * len(nounSeen) / len(Nouns); pct < 50 {
		t.Errorf("suspiciously low noun coverage: %d%%", pct)
	}
}
