package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads and writes ideas as a YAML sequence.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed ideas.
func (p *YAMLParser) Parse(r io.Reader) ([]RawIdea, error) {
	var ideas []RawIdea

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&ideas); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	for i := range ideas {
		ideas[i].LineNum = i + 1
	}

	return ideas, nil
}

// Encode writes ideas as YAML.
func (p *YAMLParser) Encode(w io.Writer, ideas []RawIdea) error {
	if ideas == nil {
		ideas = []RawIdea{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(ideas); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}
