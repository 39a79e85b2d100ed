package services

import (
	"cmp"
	"slices"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// ChartData summarizes history for count and spending charts.
//
// Activities counts every record by name, including ideas no longer in the
// catalog. Tags and the liked-by overlap only use records that resolve to a
// catalog idea. Monthly sums per-person cost by YYYY-MM and ignores records
// without a cost or with an unparsable date.
//
// first and second name the two people compared in the overlap; when either
// is empty the first two liked-by values in the catalog are used. Overlap is
// nil when fewer than two people are known or nobody liked any date.
func ChartData(catalog []entities.Idea, history []entities.HistoryRecord, first, second string) entities.ChartData {
	byName := indexByName(catalog)

	activities := newTally()
	tags := newTally()
	months := newTally()
	spend := make(map[string]float64)
	for _, record := range history {
		activities.inc(record.ActivityName)
		if idea, ok := byName[record.ActivityName]; ok {
			for _, tag := range idea.Tags() {
				tags.inc(tag)
			}
		}
		if record.CostPerPerson == nil {
			continue
		}
		if month, ok := record.Month(); ok {
			months.register(month)
			spend[month] += *record.CostPerPerson
		}
	}

	data := entities.ChartData{
		Activities: sortByCount(activities.list()),
		Tags:       sortByCount(tags.list()),
		Monthly:    make([]entities.MonthlySpend, 0, len(months.order)),
	}

	keys := slices.Clone(months.order)
	slices.Sort(keys)
	for _, m := range keys {
		data.Monthly = append(data.Monthly, entities.MonthlySpend{Month: m, Amount: spend[m]})
	}

	if first == "" || second == "" {
		first, second = firstTwoPeople(catalog)
	}
	if first != "" && second != "" && first != second {
		data.Overlap = likedByOverlap(byName, history, first, second)
	}
	return data
}

// sortByCount orders counts descending, breaking ties by value.
func sortByCount(counts []entities.Count) []entities.Count {
	slices.SortStableFunc(counts, func(a, b entities.Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return counts
}

func firstTwoPeople(catalog []entities.Idea) (string, string) {
	people := newTally()
	for _, idea := range catalog {
		for _, p := range idea.LikedBy() {
			people.register(p)
			if len(people.order) == 2 {
				return people.order[0], people.order[1]
			}
		}
	}
	return "", ""
}

// likedByOverlap treats each (name, date) pair as one date, so the same
// idea done twice on one day counts once.
func likedByOverlap(byName map[string]entities.Idea, history []entities.HistoryRecord, first, second string) *entities.LikedByOverlap {
	type dateKey struct{ name, date string }
	firstSet := make(map[dateKey]bool)
	secondSet := make(map[dateKey]bool)
	for _, record := range history {
		idea, ok := byName[record.ActivityName]
		if !ok {
			continue
		}
		key := dateKey{record.ActivityName, record.Date}
		if idea.IsLikedBy(first) {
			firstSet[key] = true
		}
		if idea.IsLikedBy(second) {
			secondSet[key] = true
		}
	}
	if len(firstSet) == 0 && len(secondSet) == 0 {
		return nil
	}

	overlap := &entities.LikedByOverlap{First: first, Second: second}
	for key := range firstSet {
		if secondSet[key] {
			overlap.Both++
		} else {
			overlap.OnlyFirst++
		}
	}
	for key := range secondSet {
		if !firstSet[key] {
			overlap.OnlySec++
		}
	}
	return overlap
}
