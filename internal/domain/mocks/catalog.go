// Package mocks provides in-memory implementations of the domain ports for tests.
package mocks

import (
	"context"
	"slices"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// CatalogSource is a mock implementation of ports.CatalogSource.
type CatalogSource struct {
	Ideas   []entities.Idea
	LoadErr error
	SaveErr error

	// Call tracking
	LoadCallCount int
	SaveCallCount int
}

// NewCatalogSource creates a mock catalog holding ideas.
func NewCatalogSource(ideas ...entities.Idea) *CatalogSource {
	return &CatalogSource{Ideas: ideas}
}

// LoadIdeas returns a copy of the stored ideas.
func (m *CatalogSource) LoadIdeas(_ context.Context) ([]entities.Idea, error) {
	m.LoadCallCount++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.Ideas), nil
}

// SaveIdeas replaces the stored ideas.
func (m *CatalogSource) SaveIdeas(_ context.Context, ideas []entities.Idea) error {
	m.SaveCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Ideas = slices.Clone(ideas)
	return nil
}
