package services

import (
	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// tally counts occurrences of values while remembering first-seen order.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

// register adds value with a zero count if it is new.
func (t *tally) register(value string) {
	if _, ok := t.counts[value]; ok {
		return
	}
	t.order = append(t.order, value)
	t.counts[value] = 0
}

func (t *tally) inc(value string) {
	t.register(value)
	t.counts[value]++
}

func (t *tally) list() []entities.Count {
	out := make([]entities.Count, len(t.order))
	for i, v := range t.order {
		out[i] = entities.Count{Value: v, Count: t.counts[v]}
	}
	return out
}

// least returns the lowest count and every value tied at it.
func (t *tally) least() (int, []string) {
	if len(t.order) == 0 {
		return 0, nil
	}
	low := t.counts[t.order[0]]
	for _, v := range t.order[1:] {
		low = min(low, t.counts[v])
	}
	var values []string
	for _, v := range t.order {
		if t.counts[v] == low {
			values = append(values, v)
		}
	}
	return low, values
}

// indexByName maps idea names to ideas. The first idea wins on duplicates.
func indexByName(catalog []entities.Idea) map[string]entities.Idea {
	byName := make(map[string]entities.Idea, len(catalog))
	for _, idea := range catalog {
		if _, ok := byName[idea.Name()]; !ok {
			byName[idea.Name()] = idea
		}
	}
	return byName
}

// Analyze counts history against the catalog and suggests the least-used
// location, liked-by and tag values. The set of values comes from the
// catalog, so values never chosen still count as zero. Records naming an
// idea that is not in the catalog are skipped.
func Analyze(catalog []entities.Idea, history []entities.HistoryRecord) entities.Analysis {
	ideas, likedBy, locations, tags := newTally(), newTally(), newTally(), newTally()
	for _, idea := range catalog {
		ideas.register(idea.Name())
		for _, v := range idea.LikedBy() {
			likedBy.register(v)
		}
		for _, v := range idea.Locations() {
			locations.register(v)
		}
		for _, v := range idea.Tags() {
			tags.register(v)
		}
	}

	byName := indexByName(catalog)
	var breakdown entities.Breakdown
	for _, record := range history {
		idea, ok := byName[record.ActivityName]
		if !ok {
			breakdown.Skipped++
			continue
		}
		ideas.inc(idea.Name())
		for _, v := range idea.LikedBy() {
			likedBy.inc(v)
		}
		for _, v := range idea.Locations() {
			locations.inc(v)
		}
		for _, v := range idea.Tags() {
			tags.inc(v)
		}
		breakdown.Total++
	}

	breakdown.Ideas = ideas.list()
	breakdown.LikedBy = likedBy.list()
	breakdown.Locations = locations.list()
	breakdown.Tags = tags.list()

	var suggestions []entities.Suggestion
	for _, dim := range []struct {
		name  entities.Dimension
		tally *tally
	}{
		{entities.DimensionLocation, locations},
		{entities.DimensionLikedBy, likedBy},
		{entities.DimensionTag, tags},
	} {
		if len(dim.tally.order) < 2 {
			continue
		}
		low, values := dim.tally.least()
		suggestions = append(suggestions, entities.Suggestion{
			Dimension: dim.name,
			Values:    values,
			Count:     low,
		})
	}

	return entities.Analysis{
		Suggestions: suggestions,
		Breakdown:   breakdown,
	}
}
