// datepicker-lint is a custom static analyzer for datepicker storage and sampling patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/adwaits94/datepicker/tools/datepicker-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
