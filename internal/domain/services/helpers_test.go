package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

type ideaSpec struct {
	name      string
	likedBy   []string
	locations []string
	tags      []string
	cost      float64
	costType  entities.CostType
	maxPeople int
}

func newIdea(t *testing.T, s ideaSpec) entities.Idea {
	t.Helper()
	if s.costType == "" {
		s.costType = entities.CostTypeTotal
	}
	b := entities.NewIdeaBuilder(s.name).
		LikedBy(s.likedBy...).
		Locations(s.locations...).
		Tags(s.tags...).
		Cost(s.cost, s.costType)
	if s.maxPeople > 0 {
		b.MaxPeople(s.maxPeople)
	}
	idea, err := b.Build()
	require.NoError(t, err)
	return idea
}

func sampleCatalog(t *testing.T) []entities.Idea {
	t.Helper()
	return []entities.Idea{
		newIdea(t, ideaSpec{name: "Movie night", likedBy: []string{"bf", "gf"}, locations: []string{"home"}, tags: []string{"relaxed"}, cost: 200}),
		newIdea(t, ideaSpec{name: "Picnic", likedBy: []string{"gf"}, locations: []string{"outside"}, tags: []string{"food"}, cost: 600}),
		newIdea(t, ideaSpec{name: "Spa day", likedBy: []string{"gf"}, locations: []string{"outside"}, tags: []string{"relaxed"}, cost: 1500, costType: entities.CostTypePerPerson}),
		newIdea(t, ideaSpec{name: "Board games", likedBy: []string{"bf"}, locations: []string{"home"}, tags: []string{"games"}, cost: 0, maxPeople: 6}),
	}
}

func intPtr(v int) *int { return &v }

func names(ideas []entities.Idea) []string {
	out := make([]string, len(ideas))
	for i, idea := range ideas {
		out[i] = idea.Name()
	}
	return out
}
