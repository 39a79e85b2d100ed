package a

import "context"

type Idea struct{ Name string }

type CatalogSource interface {
	LoadIdeas(ctx context.Context) ([]Idea, error)
	SaveIdeas(ctx context.Context, ideas []Idea) error
}

func bad(ctx context.Context, source CatalogSource, incoming []Idea) {
	for _, idea := range incoming {
		existing, _ := source.LoadIdeas(ctx) // want "LoadIdeas rewrites the whole store"
		existing = append(existing, idea)
		source.SaveIdeas(ctx, existing) // want "SaveIdeas rewrites the whole store"
	}
}

func good(ctx context.Context, source CatalogSource, incoming []Idea) {
	existing, _ := source.LoadIdeas(ctx)
	for _, idea := range incoming {
		existing = append(existing, idea)
	}
	source.SaveIdeas(ctx, existing)
}

func deferred(ctx context.Context, source CatalogSource, batches [][]Idea) []func() {
	var saves []func()
	for _, batch := range batches {
		saves = append(saves, func() { source.SaveIdeas(ctx, batch) })
	}
	return saves
}
