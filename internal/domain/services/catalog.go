package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
)

// CatalogService edits the idea catalog. Every change loads the stored
// catalog, applies the edit and saves the whole catalog back.
type CatalogService struct {
	source ports.CatalogSource
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(source ports.CatalogSource) *CatalogService {
	return &CatalogService{
		source: source,
	}
}

// List returns all ideas in stored order.
func (s *CatalogService) List(ctx context.Context) ([]entities.Idea, error) {
	ideas, err := s.source.LoadIdeas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading catalog: %w", entities.ErrStorageUnavailable, err)
	}
	return ideas, nil
}

// Get returns the idea with the given name.
func (s *CatalogService) Get(ctx context.Context, name string) (entities.Idea, error) {
	ideas, err := s.List(ctx)
	if err != nil {
		return entities.Idea{}, err
	}
	idea, ok := entities.FindIdea(ideas, name)
	if !ok {
		return entities.Idea{}, fmt.Errorf("idea %q: %w", name, entities.ErrNotFound)
	}
	return idea, nil
}

// Add appends a new idea. Names must be unique.
func (s *CatalogService) Add(ctx context.Context, idea entities.Idea) error {
	ideas, err := s.List(ctx)
	if err != nil {
		return err
	}
	if _, ok := entities.FindIdea(ideas, idea.Name()); ok {
		return fmt.Errorf("idea %q: %w", idea.Name(), entities.ErrAlreadyExists)
	}
	return s.save(ctx, append(ideas, idea))
}

// Replace swaps the idea called name for idea, keeping its position.
// idea may carry a new name as long as no other idea uses it.
func (s *CatalogService) Replace(ctx context.Context, name string, idea entities.Idea) error {
	ideas, err := s.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(ideas, name)
	if idx < 0 {
		return fmt.Errorf("idea %q: %w", name, entities.ErrNotFound)
	}
	if idea.Name() != name && indexOf(ideas, idea.Name()) >= 0 {
		return fmt.Errorf("idea %q: %w", idea.Name(), entities.ErrAlreadyExists)
	}
	ideas[idx] = idea
	return s.save(ctx, ideas)
}

// Delete removes the idea called name. History records naming it are kept.
func (s *CatalogService) Delete(ctx context.Context, name string) error {
	ideas, err := s.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(ideas, name)
	if idx < 0 {
		return fmt.Errorf("idea %q: %w", name, entities.ErrNotFound)
	}
	return s.save(ctx, slices.Delete(ideas, idx, idx+1))
}

func (s *CatalogService) save(ctx context.Context, ideas []entities.Idea) error {
	if err := s.source.SaveIdeas(ctx, ideas); err != nil {
		return fmt.Errorf("%w: saving catalog: %w", entities.ErrStorageWrite, err)
	}
	return nil
}

func indexOf(ideas []entities.Idea, name string) int {
	return slices.IndexFunc(ideas, func(i entities.Idea) bool { return i.Name() == name })
}
