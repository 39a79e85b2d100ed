// Package loopsave detects whole-file storage calls inside loops.
package loopsave

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects catalog and history load/save calls inside loops.
// Both stores reread or rewrite everything, so a call per iteration turns
// one batch into N full rewrites.
var Analyzer = &analysis.Analyzer{
	Name:     "loopsave",
	Doc:      "detects whole-file catalog and history storage calls inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// storageMethods are the CatalogSource and HistoryStorage methods.
var storageMethods = map[string]bool{
	"LoadIdeas":   true,
	"SaveIdeas":   true,
	"LoadHistory": true,
	"SaveHistory": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Closures run on their own schedule.
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			if name := sel.Sel.Name; storageMethods[name] {
				pass.Reportf(call.Pos(),
					"%s rewrites the whole store: call it once after the loop",
					name)
			}

			return true
		})
	})

	return nil, nil
}
