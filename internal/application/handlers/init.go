// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/infrastructure/catalogfile"
	"github.com/adwaits94/datepicker/internal/infrastructure/config"
)

// InitHandler sets up a datepicker directory.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath     string
	CatalogPath    string
	CatalogCreated bool
}

// Handle writes the default config and, unless a catalog already exists,
// a starter catalog.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("datepicker already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		CatalogPath: cfg.CatalogPath(basePath),
	}

	if _, err := os.Stat(result.CatalogPath); err == nil {
		return result, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking catalog: %w", err)
	}

	source, err := catalogfile.NewSource(result.CatalogPath, cfg.Catalog.Format)
	if err != nil {
		return nil, err
	}
	ideas, err := StarterIdeas()
	if err != nil {
		return nil, err
	}
	if err := source.SaveIdeas(ctx, ideas); err != nil {
		return nil, fmt.Errorf("writing starter catalog: %w", err)
	}
	result.CatalogCreated = true

	return result, nil
}

// StarterIdeas returns the catalog written by init.
func StarterIdeas() ([]entities.Idea, error) {
	builders := []*entities.IdeaBuilder{
		entities.NewIdeaBuilder("Movie night").LikedBy("bf", "gf").Locations("home").Tags("relaxed").Cost(300, entities.CostTypeTotal),
		entities.NewIdeaBuilder("Cook dinner together").LikedBy("gf").Locations("home").Tags("food").Cost(800, entities.CostTypeTotal),
		entities.NewIdeaBuilder("Picnic in the park").LikedBy("bf", "gf").Locations("outside").Tags("food", "nature").Cost(600, entities.CostTypeTotal),
		entities.NewIdeaBuilder("Board game cafe").LikedBy("bf").Locations("outside").Tags("games").Cost(250, entities.CostTypePerPerson).MaxPeople(6),
		entities.NewIdeaBuilder("Stargazing").LikedBy("bf").Locations("outside").Tags("nature", "night"),
	}

	ideas := make([]entities.Idea, 0, len(builders))
	for _, b := range builders {
		idea, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("building starter idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}
