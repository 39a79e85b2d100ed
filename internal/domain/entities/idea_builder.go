package entities

import (
	"errors"
	"math"
	"strings"
)

// DefaultMaxPeople is used when a builder is not given a party size limit.
const DefaultMaxPeople = 2

// IdeaBuilder assembles an Idea for the add and edit flows.
// The zero value is not usable; create one with NewIdeaBuilder or Idea.ToBuilder.
type IdeaBuilder struct {
	name      string
	likedBy   []string
	locations []string
	tags      []string
	cost      float64
	maxPeople int
	costType  CostType
}

// NewIdeaBuilder starts a new idea with the given name and default values.
func NewIdeaBuilder(name string) *IdeaBuilder {
	return &IdeaBuilder{
		name:      name,
		maxPeople: DefaultMaxPeople,
		costType:  CostTypeTotal,
	}
}

// Name replaces the idea name.
func (b *IdeaBuilder) Name(name string) *IdeaBuilder {
	b.name = name
	return b
}

// LikedBy replaces the liked-by list.
func (b *IdeaBuilder) LikedBy(people ...string) *IdeaBuilder {
	b.likedBy = cleanList(people)
	return b
}

// Locations replaces the location list.
func (b *IdeaBuilder) Locations(locations ...string) *IdeaBuilder {
	b.locations = cleanList(locations)
	return b
}

// Tags replaces the tag list.
func (b *IdeaBuilder) Tags(tags ...string) *IdeaBuilder {
	b.tags = cleanList(tags)
	return b
}

// Cost sets the raw cost and how it is split.
func (b *IdeaBuilder) Cost(cost float64, costType CostType) *IdeaBuilder {
	b.cost = cost
	b.costType = costType
	return b
}

// MaxPeople sets the largest supported party size.
func (b *IdeaBuilder) MaxPeople(n int) *IdeaBuilder {
	b.maxPeople = n
	return b
}

// Build validates the collected values and returns the Idea.
// Empty liked-by and location lists are accepted; sampling and analysis
// tolerate them.
func (b *IdeaBuilder) Build() (Idea, error) {
	name := strings.TrimSpace(b.name)
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if b.cost < 0 || math.IsNaN(b.cost) || math.IsInf(b.cost, 0) {
		errs = append(errs, errors.New("cost must be a non-negative number"))
	}
	if b.maxPeople < 1 {
		errs = append(errs, errors.New("max people must be at least 1"))
	}
	if !b.costType.IsValid() {
		errs = append(errs, errors.New("cost type must be total or per_person"))
	}
	if len(errs) > 0 {
		return Idea{}, &IdeaValidationError{Name: name, Errs: errs}
	}

	return Idea{
		name:      name,
		likedBy:   nonNil(b.likedBy),
		locations: nonNil(b.locations),
		tags:      nonNil(b.tags),
		cost:      b.cost,
		maxPeople: b.maxPeople,
		costType:  b.costType,
	}, nil
}

// cleanList trims entries, drops blanks and removes duplicates, keeping order.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
