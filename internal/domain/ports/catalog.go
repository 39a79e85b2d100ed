// Package ports defines interfaces for external storage and collaborators.
package ports

import (
	"context"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// CatalogSource loads and saves the idea catalog wholesale.
type CatalogSource interface {
	// LoadIdeas reads every idea, in stored order.
	LoadIdeas(ctx context.Context) ([]entities.Idea, error)

	// SaveIdeas replaces the stored catalog with ideas.
	SaveIdeas(ctx context.Context, ideas []entities.Idea) error
}
