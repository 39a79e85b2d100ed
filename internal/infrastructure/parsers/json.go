package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser reads and writes ideas as a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed ideas.
func (p *JSONParser) Parse(r io.Reader) ([]RawIdea, error) {
	var ideas []RawIdea

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&ideas); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set record numbers (array index + 1, 1-indexed)
	for i := range ideas {
		ideas[i].LineNum = i + 1
	}

	return ideas, nil
}

// Encode writes ideas as indented JSON.
func (p *JSONParser) Encode(w io.Writer, ideas []RawIdea) error {
	if ideas == nil {
		ideas = []RawIdea{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(ideas)
}
