// Package namegen generates human-readable random names like "rusty-nail"
// by combining a random adjective, a random noun, and an optional 4-digit
// number, formatted according to a Style.
package namegen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEmptyWordList is returned when a generator is constructed with an
// empty adjective or noun list.
var ErrEmptyWordList = errors.New("empty word list")

// Rand is the source of randomness used by a Generator. *math/rand.Rand
// satisfies it; tests inject a fixed-seed source for deterministic output.
type Rand interface {
	Intn(n int) int
}

// Config holds the optional settings for a Generator.
type Config struct {
	// Style is the casing convention for generated names.
	// The zero value (Plain) formats identically to KebabCase.
	Style Style

	// Numbered appends a random 4-digit number (0001-9999) to every name.
	// The Numbered style appends its own number regardless of this flag.
	Numbered bool

	// Rand overrides the source of randomness. Defaults to a source
	// seeded from the current time.
	Rand Rand
}

// Generator produces an unbounded sequence of random names. Every call to
// Next is an independent draw: names may repeat and the sequence never
// terminates. A Generator is not safe for concurrent use; each goroutine
// should own its own instance.
type Generator struct {
	adjectives []string
	nouns      []string
	style      Style
	numbered   bool
	rng        Rand
}

// New constructs a Generator drawing from the given word lists. Both lists
// must be non-empty; an empty list is a configuration error and no
// generation may proceed on it.
func New(adjectives, nouns []string, cfg Config) (*Generator, error) {
	if len(adjectives) == 0 {
		return nil, fmt.Errorf("%w: adjectives", ErrEmptyWordList)
	}
	if len(nouns) == 0 {
		return nil, fmt.Errorf("%w: nouns", ErrEmptyWordList)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{
		adjectives: adjectives,
		nouns:      nouns,
		style:      cfg.Style,
		numbered:   cfg.Numbered,
		rng:        rng,
	}, nil
}

// Default returns a Generator over the built-in word lists using
// KebabCase and no number suffix.
func Default() *Generator {
	g, err := New(Adjectives, Nouns, Config{Style: DefaultStyle})
	if err != nil {
		// The built-in lists are non-empty by construction.
		panic(err)
	}
	return g
}

// Next returns the next generated name. It draws one adjective and one
// noun with replacement, optionally draws a number, and applies the
// configured style.
func (g *Generator) Next() string {
	adj := g.adjectives[g.rng.Intn(len(g.adjectives))]
	noun := g.nouns[g.rng.Intn(len(g.nouns))]

	num := 0
	if g.numbered {
		num = g.randNum()
	}

	if g.style == Numbered {
		// Numbered always appends its own fresh draw; a numbered-flag
		// draw above is discarded, never reused.
		return Numbered.format(adj, noun, g.randNum(), true)
	}

	return g.style.format(adj, noun, num, g.numbered)
}

// Take returns the next n generated names.
func (g *Generator) Take(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, g.Next())
	}
	return names
}

// randNum draws a number in the inclusive range 1-9999, so the rendered
// suffix is never 0000.
func (g *Generator) randNum() int {
	return g.rng.Intn(9999) + 1
}
