// Package randglobal detects draws from the global math/rand source.
package randglobal

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports package-level math/rand draws. Sampling must go through
// an injected Chooser so tests can seed it.
var Analyzer = &analysis.Analyzer{
	Name:     "randglobal",
	Doc:      "detects draws from the global math/rand source; inject a Chooser instead",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var randPackages = map[string]bool{
	"math/rand":    true,
	"math/rand/v2": true,
}

// draws are the global functions that pick values. Seeding helpers such as
// Uint64 and constructors such as New and NewPCG are allowed.
var draws = map[string]bool{
	"Int":     true,
	"IntN":    true,
	"Intn":    true,
	"Int64N":  true,
	"Int63n":  true,
	"N":       true,
	"Perm":    true,
	"Shuffle": true,
	"Float64": true,
	"Float32": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		fun := call.Fun
		if idx, ok := fun.(*ast.IndexExpr); ok {
			fun = idx.X // rand.N[time.Duration]
		}

		sel, ok := fun.(*ast.SelectorExpr)
		if !ok || !draws[sel.Sel.Name] {
			return
		}

		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}
		pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok || !randPackages[pkgName.Imported().Path()] {
			return
		}

		pass.Reportf(call.Pos(),
			"rand.%s draws from the global source: use an injected Chooser",
			sel.Sel.Name)
	})

	return nil, nil
}
