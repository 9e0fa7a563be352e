package namegen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a style name doesn't match any known style.
var ErrUnknownStyle = errors.New("unknown style")

// Style selects the casing convention applied to generated names.
type Style int

// Available styles. The name shapes below use "rusty" and "nail" as the
// example word pair.
const (
	// Plain produces "rusty-nail".
	Plain Style = iota
	// Numbered produces "rusty-nail-0042". It always appends a fresh
	// random number, regardless of the generator's numbered setting.
	Numbered
	// TitleCase produces "Rusty Nail".
	TitleCase
	// CamelCase produces "rustyNail".
	CamelCase
	// ClassCase produces "RustyNail".
	ClassCase
	// KebabCase produces "rusty-nail". This is the default style.
	KebabCase
	// TrainCase produces "Rusty-Nail".
	TrainCase
	// ScreamingSnakeCase produces "RUSTY_NAIL".
	ScreamingSnakeCase
	// TableCase produces "rusty_nail".
	TableCase
	// SentenceCase produces "Rusty nail".
	SentenceCase
	// SnakeCase produces "rusty_nail".
	SnakeCase
	// PascalCase produces "RustyNail".
	PascalCase
)

// DefaultStyle is the style used when none is configured.
const DefaultStyle = KebabCase

// styleOrder fixes the listing order for Styles and StyleNames.
var styleOrder = []Style{
	Plain,
	Numbered,
	TitleCase,
	CamelCase,
	ClassCase,
	KebabCase,
	TrainCase,
	ScreamingSnakeCase,
	TableCase,
	SentenceCase,
	SnakeCase,
	PascalCase,
}

var styleNames = map[Style]string{
	Plain:              "Plain",
	Numbered:           "Numbered",
	TitleCase:          "TitleCase",
	CamelCase:          "CamelCase",
	ClassCase:          "ClassCase",
	KebabCase:          "KebabCase",
	TrainCase:          "TrainCase",
	ScreamingSnakeCase: "ScreamingSnakeCase",
	TableCase:          "TableCase",
	SentenceCase:       "SentenceCase",
	SnakeCase:          "SnakeCase",
	PascalCase:         "PascalCase",
}

// ParseStyle converts a style name into a Style. The match is exact:
// unrecognized names return ErrUnknownStyle.
func ParseStyle(name string) (Style, error) {
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}
	return DefaultStyle, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownStyle, name, strings.Join(StyleNames(), ", "))
}

// String returns the canonical style name accepted by ParseStyle.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Styles returns all styles in listing order.
func Styles() []Style {
	out := make([]Style, len(styleOrder))
	copy(out, styleOrder)
	return out
}

// StyleNames returns the canonical names of all styles in listing order.
func StyleNames() []string {
	names := make([]string, len(styleOrder))
	for i, s := range styleOrder {
		names[i] = s.String()
	}
	return names
}

// format joins the adjective and noun (and, when withNum is set, the
// zero-padded number) according to the style's separator and token casing.
// Numbered is not special-cased here; the generator passes withNum=true
// for it and supplies its own draw.
func (s Style) format(adj, noun string, num int, withNum bool) string {
	var sep string
	var adjCase, nounCase func(string) string

	switch s {
	case Plain, Numbered, KebabCase:
		sep, adjCase, nounCase = "-", strings.ToLower, strings.ToLower
	case TitleCase:
		sep, adjCase, nounCase = " ", capitalize, capitalize
	case CamelCase:
		sep, adjCase, nounCase = "", strings.ToLower, capitalize
	case ClassCase, PascalCase:
		sep, adjCase, nounCase = "", capitalize, capitalize
	case TrainCase:
		sep, adjCase, nounCase = "-", capitalize, capitalize
	case ScreamingSnakeCase:
		sep, adjCase, nounCase = "_", strings.ToUpper, strings.ToUpper
	case TableCase, SnakeCase:
		sep, adjCase, nounCase = "_", strings.ToLower, strings.ToLower
	case SentenceCase:
		sep, adjCase, nounCase = " ", capitalize, strings.ToLower
	default:
		sep, adjCase, nounCase = "-", strings.ToLower, strings.ToLower
	}

	var b strings.Builder
	b.WriteString(adjCase(adj))
	b.WriteString(sep)
	b.WriteString(nounCase(noun))
	if withNum {
		b.WriteString(sep)
		fmt.Fprintf(&b, "%04d", num)
	}
	return b.String()
}

// capitalize upper-cases the first byte and lower-cases the rest.
// Word lists are ASCII, so byte indexing is safe.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
