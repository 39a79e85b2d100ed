package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
	"github.com/adwaits94/datepicker/internal/infrastructure/parsers"
)

// ConflictStrategy defines how to handle ideas whose name is already in the catalog.
type ConflictStrategy string

const (
	// ConflictSkip keeps the catalog's version of an existing idea.
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite replaces an existing idea in place.
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ParseConflictStrategy validates a strategy name.
func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch ConflictStrategy(s) {
	case ConflictSkip, ConflictOverwrite:
		return ConflictStrategy(s), nil
	default:
		return "", fmt.Errorf("%w: invalid conflict strategy %q (valid: skip, overwrite)", entities.ErrInvalidArgument, s)
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun     bool             // Validate without saving
	OnConflict ConflictStrategy // How to handle existing ideas
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportService merges ideas from an external file into the catalog.
type ImportService struct {
	source ports.CatalogSource
}

// NewImportService creates a new import service.
func NewImportService(source ports.CatalogSource) *ImportService {
	return &ImportService{
		source: source,
	}
}

// Import validates raw ideas and merges the valid ones into the catalog.
// Invalid records are reported in the result and do not stop the import.
// The catalog is saved once, after all records are merged.
func (s *ImportService) Import(ctx context.Context, raws []parsers.RawIdea, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	ideas, validationErrors := validateIdeas(raws)
	result.Errors = validationErrors

	if len(ideas) == 0 {
		return result, nil
	}

	existing, err := s.source.LoadIdeas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading catalog: %w", entities.ErrStorageUnavailable, err)
	}

	merged, imported, skipped := mergeIdeas(existing, ideas, opts.OnConflict)
	result.Imported = imported
	result.Skipped = skipped

	if opts.DryRun || imported == 0 {
		return result, nil
	}

	if err := s.source.SaveIdeas(ctx, merged); err != nil {
		return nil, fmt.Errorf("%w: saving catalog: %w", entities.ErrStorageWrite, err)
	}

	return result, nil
}

// validateIdeas converts raw records and collects per-record errors.
// A name repeated within the file is an error on its later occurrences.
func validateIdeas(raws []parsers.RawIdea) ([]entities.Idea, []ImportError) {
	valid := make([]entities.Idea, 0, len(raws))
	var errs []ImportError
	seen := make(map[string]int, len(raws))

	for i := range raws {
		raw := &raws[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		idea, err := raw.ToIdea()
		if err != nil {
			errs = append(errs, toImportError(raw, lineNum, err))
			continue
		}

		if first, dup := seen[idea.Name()]; dup {
			errs = append(errs, ImportError{
				Line:    lineNum,
				Field:   "name",
				Value:   idea.Name(),
				Message: fmt.Sprintf("duplicate name %q (first seen on line %d)", idea.Name(), first),
			})
			continue
		}
		seen[idea.Name()] = lineNum

		valid = append(valid, idea)
	}

	return valid, errs
}

func toImportError(raw *parsers.RawIdea, lineNum int, err error) ImportError {
	ie := ImportError{Line: lineNum, Message: err.Error()}

	var verr *entities.IdeaValidationError
	switch {
	case raw.Name == "":
		ie.Field = "name"
		ie.Message = "missing required field: name"
	case errors.As(err, &verr):
		ie.Field = "idea"
	default:
		ie.Field = "cost_type"
		ie.Value = raw.CostType
	}

	return ie
}

// mergeIdeas applies incoming ideas to the existing catalog.
func mergeIdeas(existing, incoming []entities.Idea, onConflict ConflictStrategy) ([]entities.Idea, int, int) {
	merged := make([]entities.Idea, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	var imported, skipped int
	for _, idea := range incoming {
		idx := indexOf(merged, idea.Name())
		switch {
		case idx < 0:
			merged = append(merged, idea)
			imported++
		case onConflict == ConflictOverwrite:
			merged[idx] = idea
			imported++
		default:
			skipped++
		}
	}

	return merged, imported, skipped
}
