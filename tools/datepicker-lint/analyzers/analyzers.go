// Package analyzers provides all custom static analyzers for datepicker.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/adwaits94/datepicker/tools/datepicker-lint/analyzers/loopsave"
	"github.com/adwaits94/datepicker/tools/datepicker-lint/analyzers/randglobal"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopsave.Analyzer,
		randglobal.Analyzer,
	}
}
