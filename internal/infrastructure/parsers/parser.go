// Package parsers reads and writes idea catalogs in JSON, YAML and CSV.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// Supported catalog formats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Parser defines the interface for parsing ideas from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawIdea, error)
}

// Encoder writes ideas in one format.
type Encoder interface {
	Encode(w io.Writer, ideas []RawIdea) error
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONParser{}
	case FormatYAML, "yml":
		return &YAMLParser{}
	case FormatCSV:
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(FormatOf(filename))
}

// FormatOf returns the format implied by a file extension, or "".
func FormatOf(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return ""
	}
}

// EncoderFor returns the encoder for format, or nil if unsupported.
// Markdown is write-only.
func EncoderFor(format string) Encoder {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONParser{}
	case FormatYAML, "yml":
		return &YAMLParser{}
	case FormatCSV:
		return &CSVParser{}
	case FormatMarkdown, "md":
		return &MarkdownEncoder{}
	default:
		return nil
	}
}
