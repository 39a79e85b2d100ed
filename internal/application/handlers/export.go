package handlers

import (
	"fmt"
	"io"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/infrastructure/parsers"
)

// ExportHandler writes the catalog in an external format.
type ExportHandler struct{}

// NewExportHandler creates a new export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// Handle writes ideas to w as json, yaml, csv or markdown.
func (h *ExportHandler) Handle(w io.Writer, ideas []entities.Idea, format string) error {
	encoder := parsers.EncoderFor(format)
	if encoder == nil {
		return fmt.Errorf("%w: unsupported export format %q (use json, yaml, csv or markdown)", entities.ErrInvalidArgument, format)
	}
	if err := encoder.Encode(w, parsers.FromIdeas(ideas)); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}
