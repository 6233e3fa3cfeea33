// Package vocab loads the controlled vocabularies that drive skill and
// title extraction. Vocabularies are configuration, not code: the
// extractor is a pure function over (text, vocabulary), so synthetic
// vocabularies can be injected in tests.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// vocabularySchema validates vocabulary files before use. A file that
// fails validation is rejected outright; only an unconfigured path
// degrades to the built-in defaults.
const vocabularySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "skills": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "titles": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  },
  "additionalProperties": false
}`

// Vocabulary holds the ordered-unique term lists used for extraction.
// Terms are stored in normalized form so matching and storage agree on
// casing and whitespace.
type Vocabulary struct {
	Skills []string `json:"skills"`
	Titles []string `json:"titles"`
}

// Load reads and validates a vocabulary JSON file. An empty path returns
// the built-in default vocabulary.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(vocabularySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary file %s: %w", path, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("invalid vocabulary file " + path + ":")
		for _, desc := range result.Errors() {
			sb.WriteString("\n  " + desc.String())
		}
		return nil, fmt.Errorf("%s", sb.String())
	}

	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	v.normalize()
	return &v, nil
}

// normalize rewrites both term lists into normalized, deduplicated form,
// preserving the file's entry order.
func (v *Vocabulary) normalize() {
	v.Skills = normalizeTerms(v.Skills)
	v.Titles = normalizeTerms(v.Titles)
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		normalized := ingestion.NormalizeText(term)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
