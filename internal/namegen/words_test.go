package namegen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordLists(t *testing.T) {
	word := regexp.MustCompile(`^[a-z]+$`)

	lists := map[string][]string{
		"adjectives": Adjectives,
		"nouns":      Nouns,
	}

	for name, list := range lists {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, list)

			seen := make(map[string]bool, len(list))
			for _, w := range list {
				assert.Regexp(t, word, w, "words must be non-empty lowercase ASCII")
				assert.False(t, seen[w], "duplicate word %q", w)
				seen[w] = true
			}
		})
	}
}
