package commons

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.yaml.in/yaml/v3"

	"woz/internal/catalog"
)

// LoadVocabulary reads a catalog vocabulary from a YAML file. An empty path
// returns the built-in vocabulary. Markup in entries is stripped since titles
// and provider names end up in rendered cards.
func LoadVocabulary(path string) (catalog.Vocabulary, error) {
	if path == "" {
		return catalog.DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Vocabulary{}, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var vocab catalog.Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return catalog.Vocabulary{}, fmt.Errorf("parsing vocabulary file: %w", err)
	}

	vocab = sanitizeVocabulary(vocab)
	if err := vocab.Validate(); err != nil {
		return catalog.Vocabulary{}, fmt.Errorf("validating vocabulary file: %w", err)
	}

	return vocab, nil
}

func sanitizeVocabulary(v catalog.Vocabulary) catalog.Vocabulary {
	policy := bluemonday.StrictPolicy()
	// The policy entity-encodes its output; templates escape again on render.
	plain := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
	}
	clean := func(words []string) []string {
		out := make([]string, 0, len(words))
		for _, w := range words {
			if w = plain(w); w != "" {
				out = append(out, w)
			}
		}
		return out
	}

	v.Adjectives = clean(v.Adjectives)
	v.Nouns = clean(v.Nouns)
	for i := range v.Providers {
		v.Providers[i].Name = plain(v.Providers[i].Name)
	}
	return v
}
