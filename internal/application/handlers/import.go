package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/adwaits94/datepicker/internal/domain/services"
	"github.com/adwaits94/datepicker/internal/infrastructure/parsers"
)

// ImportHandler handles importing ideas from files.
type ImportHandler struct {
	service *services.ImportService
	manager *Manager
}

// NewImportHandler creates a new import handler. manager may be nil, in
// which case nothing is reloaded after an import.
func NewImportHandler(service *services.ImportService, manager *Manager) *ImportHandler {
	return &ImportHandler{
		service: service,
		manager: manager,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format     string                    // "json", "yaml", "csv", or "auto"
	DryRun     bool                      // Validate without saving
	OnConflict services.ConflictStrategy // How to handle existing ideas
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []services.ImportError
}

// Handle imports ideas from a file.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	// Get parser
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	// Open file
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	// Parse ideas
	raws, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if len(raws) == 0 {
		return &ImportResult{}, nil
	}

	if opts.OnConflict == "" {
		opts.OnConflict = services.ConflictSkip
	}

	serviceResult, err := h.service.Import(ctx, raws, services.ImportOptions{
		DryRun:     opts.DryRun,
		OnConflict: opts.OnConflict,
	})
	if err != nil {
		return nil, err
	}

	if h.manager != nil && !opts.DryRun && serviceResult.Imported > 0 {
		if err := h.manager.CatalogSaved(ctx, OperationImport, filePath); err != nil {
			return nil, err
		}
	}

	return &ImportResult{
		Imported: serviceResult.Imported,
		Skipped:  serviceResult.Skipped,
		Errors:   serviceResult.Errors,
	}, nil
}
