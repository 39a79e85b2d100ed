package entities

import "time"

// DateLayout is the calendar date format stored in history records.
const DateLayout = "2006-01-02"

// HistoryRecord is one accepted idea in the history log.
// ActivityName refers to an Idea by name only; the idea may since have been
// renamed or deleted.
type HistoryRecord struct {
	ID            string   `json:"id,omitempty"`
	ActivityName  string   `json:"activity_name"`
	Date          string   `json:"date"`
	CostPerPerson *float64 `json:"cost_per_person"`
}

// Month returns the YYYY-MM part of the record date, or false when the date
// does not parse.
func (r HistoryRecord) Month() (string, bool) {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01"), true
}

// Float64 returns a pointer to v, for optional cost fields.
func Float64(v float64) *float64 {
	return &v
}
