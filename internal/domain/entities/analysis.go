package entities

import (
	"fmt"
	"strings"
)

// Dimension names a catalog attribute that history can be counted over.
type Dimension string

// Dimensions counted by the analytics engine.
const (
	DimensionIdea     Dimension = "idea"
	DimensionLocation Dimension = "location"
	DimensionLikedBy  Dimension = "liked_by"
	DimensionTag      Dimension = "tag"
)

// Count pairs a dimension value with how many history records touched it.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Breakdown holds per-dimension counts over the history, in catalog order.
type Breakdown struct {
	Ideas     []Count `json:"ideas"`
	LikedBy   []Count `json:"liked_by"`
	Locations []Count `json:"locations"`
	Tags      []Count `json:"tags"`
	// Total is the number of history records that resolved to a catalog idea.
	Total int `json:"total"`
	// Skipped is the number of records whose idea is no longer in the catalog.
	Skipped int `json:"skipped"`
}

// Suggestion names the least-used values of one dimension.
type Suggestion struct {
	Dimension Dimension `json:"dimension"`
	Values    []string  `json:"values"`
	Count     int       `json:"count"`
}

// String renders the suggestion as a user-facing sentence.
func (s Suggestion) String() string {
	values := strings.Join(s.Values, ", ")
	switch s.Dimension {
	case DimensionLocation:
		return fmt.Sprintf("Try more dates at: %s (done %s)", values, times(s.Count))
	case DimensionLikedBy:
		return fmt.Sprintf("Try more dates liked by: %s (done %s)", values, times(s.Count))
	case DimensionTag:
		return fmt.Sprintf("Try more dates tagged: %s (done %s)", values, times(s.Count))
	default:
		return fmt.Sprintf("Try more %s: %s (done %s)", s.Dimension, values, times(s.Count))
	}
}

func times(n int) string {
	if n == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d times", n)
}

// Analysis is the result of analyzing history against the catalog.
type Analysis struct {
	Suggestions []Suggestion `json:"suggestions"`
	Breakdown   Breakdown    `json:"breakdown"`
}

// SuggestionStrings returns the suggestions as sentences, in order.
func (a Analysis) SuggestionStrings() []string {
	out := make([]string, len(a.Suggestions))
	for i, s := range a.Suggestions {
		out[i] = s.String()
	}
	return out
}

// LikedByOverlap counts dates liked by one person, the other, or both.
type LikedByOverlap struct {
	First     string `json:"first"`
	Second    string `json:"second"`
	OnlyFirst int    `json:"only_first"`
	OnlySec   int    `json:"only_second"`
	Both      int    `json:"both"`
}

// Total returns the number of distinct dates in the overlap.
func (o LikedByOverlap) Total() int {
	return o.OnlyFirst + o.OnlySec + o.Both
}

// MonthlySpend is the summed per-person cost of one calendar month.
type MonthlySpend struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// ChartData is the history summary used to draw charts.
type ChartData struct {
	Activities []Count         `json:"activities"`
	Tags       []Count         `json:"tags"`
	Overlap    *LikedByOverlap `json:"overlap,omitempty"`
	Monthly    []MonthlySpend  `json:"monthly"`
}
