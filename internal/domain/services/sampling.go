package services

import (
	"fmt"
	"math"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
)

// SampleParams constrains which ideas may be sampled.
// PartySize and MaxCostPerPerson are required; empty LikedBy and Location
// mean "any".
type SampleParams struct {
	LikedBy          string
	Location         string
	MaxCostPerPerson *float64
	PartySize        *int
}

// Validate checks the required parameters.
func (p SampleParams) Validate() error {
	if p.PartySize == nil {
		return fmt.Errorf("%w: party size is required", entities.ErrInvalidArgument)
	}
	if *p.PartySize < 0 {
		return fmt.Errorf("%w: party size must not be negative (got %d)", entities.ErrInvalidArgument, *p.PartySize)
	}
	if p.MaxCostPerPerson == nil {
		return fmt.Errorf("%w: max cost per person is required", entities.ErrInvalidArgument)
	}
	if c := *p.MaxCostPerPerson; c < 0 || math.IsNaN(c) {
		return fmt.Errorf("%w: max cost per person must be a non-negative number", entities.ErrInvalidArgument)
	}
	return nil
}

// Sampler filters the catalog by constraints and picks one idea at random.
type Sampler struct {
	chooser    ports.Chooser
	normalizer *LocationNormalizer
}

// NewSampler creates a Sampler drawing indexes from chooser.
func NewSampler(chooser ports.Chooser, normalizer *LocationNormalizer) *Sampler {
	if normalizer == nil {
		normalizer = NewLocationNormalizer(nil)
	}
	return &Sampler{
		chooser:    chooser,
		normalizer: normalizer,
	}
}

// Candidates returns every idea matching params, in catalog order.
func (s *Sampler) Candidates(ideas []entities.Idea, params SampleParams) ([]entities.Idea, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	partySize := *params.PartySize
	maxCost := *params.MaxCostPerPerson
	location := ""
	if params.Location != "" {
		location = s.normalizer.Normalize(params.Location)
	}

	candidates := make([]entities.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if params.LikedBy != "" && !idea.IsLikedBy(params.LikedBy) {
			continue
		}
		if location != "" && !idea.HasLocation(location) {
			continue
		}
		if partySize > idea.MaxPeople() {
			continue
		}
		if PerPersonCost(idea, partySize) > maxCost {
			continue
		}
		candidates = append(candidates, idea)
	}
	return candidates, nil
}

// Sample returns one matching idea chosen uniformly at random, or nil when
// nothing matches. It has no side effects beyond drawing from the chooser.
func (s *Sampler) Sample(ideas []entities.Idea, params SampleParams) (*entities.Idea, error) {
	candidates, err := s.Candidates(ideas, params)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[s.chooser.IntN(len(candidates))]
	return &picked, nil
}
