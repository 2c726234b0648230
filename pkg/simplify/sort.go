package simplify

import (
	"sort"

	"github.com/casforge/algebra/pkg/ast"
)

// stableSort returns exprs sorted in ascending canonical order, preserving
// relative order of equal elements (§4.6: "stable-sort by canonical order").
func stableSort(exprs []ast.Expr) []ast.Expr {
	sort.SliceStable(exprs, func(i, j int) bool {
		return ast.Compare(exprs[i], exprs[j]) < 0
	})
	return exprs
}
