package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

func TestPerPersonCost(t *testing.T) {
	total := newIdea(t, ideaSpec{name: "Dinner", cost: 1000})
	perPerson := newIdea(t, ideaSpec{name: "Concert", cost: 800, costType: entities.CostTypePerPerson})

	tests := []struct {
		name      string
		idea      entities.Idea
		partySize int
		expected  float64
	}{
		{"total split for two", total, 2, 500},
		{"total split for four", total, 4, 250},
		{"total with zero party uses raw cost", total, 0, 1000},
		{"total with negative party uses raw cost", total, -3, 1000},
		{"per person ignores party size", perPerson, 4, 800},
		{"per person with zero party", perPerson, 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PerPersonCost(tt.idea, tt.partySize), 1e-9)
		})
	}
}

func TestLocationNormalizer_Normalize(t *testing.T) {
	defaults := NewLocationNormalizer(nil)
	custom := NewLocationNormalizer(map[string]string{"Park": "outside", "couch": "home"})

	tests := []struct {
		name       string
		normalizer *LocationNormalizer
		input      string
		expected   string
	}{
		{"indoor alias", defaults, "indoor", "home"},
		{"outdoor alias", defaults, "outdoor", "outside"},
		{"alias is case-insensitive", defaults, "OutDoor", "outside"},
		{"canonical unchanged", defaults, "home", "home"},
		{"unknown unchanged", defaults, "beach", "beach"},
		{"whitespace trimmed", defaults, "  indoor ", "home"},
		{"custom alias", custom, "park", "outside"},
		{"custom map replaces defaults", custom, "indoor", "indoor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.normalizer.Normalize(tt.input))
		})
	}
}
