package parsers

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// RawIdea represents an idea read from a catalog file before validation.
type RawIdea struct {
	Name      string     `json:"name" yaml:"name"`
	LikedBy   StringList `json:"liked_by" yaml:"liked_by"`
	Location  StringList `json:"location" yaml:"location"`
	Tags      StringList `json:"tags" yaml:"tags"`
	Cost      *float64   `json:"cost,omitempty" yaml:"cost,omitempty"`           // Pointer to distinguish 0 from unset
	MaxPeople *int       `json:"max_people,omitempty" yaml:"max_people,omitempty"` // Pointer to distinguish 0 from unset
	CostType  string     `json:"cost_type,omitempty" yaml:"cost_type,omitempty"`
	LineNum   int        `json:"-" yaml:"-"` // Line or record number in source file (set by parser)
}

// ToIdea validates the raw record and converts it to an Idea.
// Missing cost means free, missing max_people means a couple, and missing
// cost_type means total.
func (r RawIdea) ToIdea() (entities.Idea, error) {
	costType, err := entities.ParseCostType(r.CostType)
	if err != nil {
		return entities.Idea{}, err
	}

	b := entities.NewIdeaBuilder(r.Name).
		LikedBy(r.LikedBy...).
		Locations(r.Location...).
		Tags(r.Tags...)

	cost := 0.0
	if r.Cost != nil {
		cost = *r.Cost
	}
	b.Cost(cost, costType)
	if r.MaxPeople != nil {
		b.MaxPeople(*r.MaxPeople)
	}

	return b.Build()
}

// FromIdea converts an Idea to its stored form.
func FromIdea(idea entities.Idea) RawIdea {
	cost := idea.Cost()
	maxPeople := idea.MaxPeople()
	return RawIdea{
		Name:      idea.Name(),
		LikedBy:   idea.LikedBy(),
		Location:  idea.Locations(),
		Tags:      idea.Tags(),
		Cost:      &cost,
		MaxPeople: &maxPeople,
		CostType:  string(idea.CostType()),
	}
}

// FromIdeas converts a catalog to its stored form.
func FromIdeas(ideas []entities.Idea) []RawIdea {
	raws := make([]RawIdea, len(ideas))
	for i, idea := range ideas {
		raws[i] = FromIdea(idea)
	}
	return raws
}

// ToIdeas converts every record, failing on the first invalid one.
func ToIdeas(raws []RawIdea) ([]entities.Idea, error) {
	ideas := make([]entities.Idea, 0, len(raws))
	for i, raw := range raws {
		idea, err := raw.ToIdea()
		if err != nil {
			line := raw.LineNum
			if line == 0 {
				line = i + 1
			}
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

// StringList is a list of strings that also accepts a single string,
// so `"location": "home"` reads the same as `"location": ["home"]`.
type StringList []string

// UnmarshalJSON accepts either a string or an array of strings.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = StringList{single}
	return nil
}

// UnmarshalYAML accepts either a scalar or a sequence.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" || node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}
