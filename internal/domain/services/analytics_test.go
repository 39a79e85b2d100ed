package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

func history(names ...string) []entities.HistoryRecord {
	records := make([]entities.HistoryRecord, len(names))
	for i, n := range names {
		records[i] = entities.HistoryRecord{ActivityName: n, Date: "2024-03-01"}
	}
	return records
}

func TestAnalyze_SuggestsLeastUsed(t *testing.T) {
	catalog := sampleCatalog(t)

	result := Analyze(catalog, history("Movie night", "Board games", "Movie night"))

	assert.Equal(t, []string{
		"Try more dates at: outside (done 0 times)",
		"Try more dates liked by: gf (done 2 times)",
		"Try more dates tagged: food (done 0 times)",
	}, result.SuggestionStrings())

	assert.Equal(t, []entities.Count{
		{Value: "Movie night", Count: 2},
		{Value: "Picnic", Count: 0},
		{Value: "Spa day", Count: 0},
		{Value: "Board games", Count: 1},
	}, result.Breakdown.Ideas)
	assert.Equal(t, []entities.Count{{Value: "home", Count: 3}, {Value: "outside", Count: 0}}, result.Breakdown.Locations)
	assert.Equal(t, 3, result.Breakdown.Total)
	assert.Equal(t, 0, result.Breakdown.Skipped)
}

func TestAnalyze_SkipsUnknownIdeas(t *testing.T) {
	catalog := sampleCatalog(t)

	result := Analyze(catalog, history("Bowling", "Picnic"))

	assert.Equal(t, 1, result.Breakdown.Total)
	assert.Equal(t, 1, result.Breakdown.Skipped)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, entities.DimensionLocation, result.Suggestions[0].Dimension)
	assert.Equal(t, []string{"home"}, result.Suggestions[0].Values)
}

func TestAnalyze_EmptyHistoryListsAllTies(t *testing.T) {
	catalog := sampleCatalog(t)

	result := Analyze(catalog, nil)

	require.Len(t, result.Suggestions, 3)
	assert.Equal(t, []string{"home", "outside"}, result.Suggestions[0].Values)
	assert.Equal(t, 0, result.Suggestions[0].Count)
	assert.Equal(t, []string{"bf", "gf"}, result.Suggestions[1].Values)
	assert.Equal(t, []string{"relaxed", "food", "games"}, result.Suggestions[2].Values)
	assert.Equal(t, "Try more dates at: home, outside (done 0 times)", result.Suggestions[0].String())
}

func TestAnalyze_SingleValueGivesNoSuggestion(t *testing.T) {
	catalog := []entities.Idea{
		newIdea(t, ideaSpec{name: "Walk", likedBy: []string{"bf"}, locations: []string{"outside"}}),
		newIdea(t, ideaSpec{name: "Hike", likedBy: []string{"bf"}, locations: []string{"outside"}}),
	}

	result := Analyze(catalog, history("Walk", "Walk"))

	assert.Empty(t, result.Suggestions)
	assert.Equal(t, []entities.Count{{Value: "Walk", Count: 2}, {Value: "Hike", Count: 0}}, result.Breakdown.Ideas)
}

func TestAnalyze_EmptyCatalog(t *testing.T) {
	result := Analyze(nil, history("Picnic"))

	assert.Empty(t, result.Suggestions)
	assert.Empty(t, result.Breakdown.Ideas)
	assert.Equal(t, 0, result.Breakdown.Total)
	assert.Equal(t, 1, result.Breakdown.Skipped)
}

func TestAnalyze_MultiValueIdeasCountEachValue(t *testing.T) {
	catalog := []entities.Idea{
		newIdea(t, ideaSpec{name: "Flexible", likedBy: []string{"bf"}, locations: []string{"home", "outside"}}),
		newIdea(t, ideaSpec{name: "Beach", likedBy: []string{"gf"}, locations: []string{"beach"}}),
	}

	result := Analyze(catalog, history("Flexible"))

	assert.Equal(t, []entities.Count{
		{Value: "home", Count: 1},
		{Value: "outside", Count: 1},
		{Value: "beach", Count: 0},
	}, result.Breakdown.Locations)
	assert.Equal(t, "Try more dates at: beach (done 0 times)", result.Suggestions[0].String())
	assert.Equal(t, "Try more dates liked by: gf (done 0 times)", result.Suggestions[1].String())
}

func TestSuggestion_String_SingleTime(t *testing.T) {
	s := entities.Suggestion{Dimension: entities.DimensionTag, Values: []string{"food"}, Count: 1}
	assert.Equal(t, "Try more dates tagged: food (done 1 time)", s.String())
}
