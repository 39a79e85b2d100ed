// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"slices"
	"strings"
)

// CostType describes how an idea's cost is split between participants.
type CostType string

const (
	// CostTypeTotal means the cost covers the whole party and is split evenly.
	CostTypeTotal CostType = "total"
	// CostTypePerPerson means the cost already applies to one participant.
	CostTypePerPerson CostType = "per_person"
)

// ParseCostType converts a stored value to a CostType.
// An empty value is treated as CostTypeTotal.
func ParseCostType(s string) (CostType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(CostTypeTotal):
		return CostTypeTotal, nil
	case string(CostTypePerPerson), "per-person", "perperson":
		return CostTypePerPerson, nil
	default:
		return "", fmt.Errorf("%w: unknown cost type %q (valid: total, per_person)", ErrInvalidArgument, s)
	}
}

// IsValid reports whether the cost type is one of the known values.
func (c CostType) IsValid() bool {
	return c == CostTypeTotal || c == CostTypePerPerson
}

// Idea is one date idea in the catalog. It is immutable: accessors return
// copies and edits go through IdeaBuilder, which produces a new value.
type Idea struct {
	name      string
	likedBy   []string
	locations []string
	tags      []string
	cost      float64
	maxPeople int
	costType  CostType
}

// Name returns the idea name. Lookups assume names are unique.
func (i Idea) Name() string { return i.name }

// LikedBy returns the people who like this idea.
func (i Idea) LikedBy() []string { return slices.Clone(i.likedBy) }

// Locations returns the location tags this idea applies to.
func (i Idea) Locations() []string { return slices.Clone(i.locations) }

// Tags returns the category labels of the idea.
func (i Idea) Tags() []string { return slices.Clone(i.tags) }

// Cost returns the raw cost, interpreted according to CostType.
func (i Idea) Cost() float64 { return i.cost }

// MaxPeople returns the largest party size the idea supports.
func (i Idea) MaxPeople() int { return i.maxPeople }

// CostType returns how Cost is split.
func (i Idea) CostType() CostType { return i.costType }

// IsLikedBy reports whether person is in the liked-by list.
func (i Idea) IsLikedBy(person string) bool {
	return slices.Contains(i.likedBy, person)
}

// HasLocation reports whether location is one of the idea's locations.
func (i Idea) HasLocation(location string) bool {
	return slices.Contains(i.locations, location)
}

// ToBuilder returns a builder pre-filled with this idea's values.
func (i Idea) ToBuilder() *IdeaBuilder {
	return &IdeaBuilder{
		name:      i.name,
		likedBy:   slices.Clone(i.likedBy),
		locations: slices.Clone(i.locations),
		tags:      slices.Clone(i.tags),
		cost:      i.cost,
		maxPeople: i.maxPeople,
		costType:  i.costType,
	}
}

// String implements fmt.Stringer.
func (i Idea) String() string {
	return fmt.Sprintf("%s (%s) - %s", i.name, strings.Join(i.likedBy, ", "), strings.Join(i.locations, ", "))
}

// FindIdea returns the idea with the given name, or false if none matches.
// Matching is exact.
func FindIdea(ideas []Idea, name string) (Idea, bool) {
	for _, idea := range ideas {
		if idea.name == name {
			return idea, true
		}
	}
	return Idea{}, false
}
