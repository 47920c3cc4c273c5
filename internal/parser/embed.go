package parser

import (
	"go/ast"
)

// embeddedName returns the field name Go gives an embedded field: the
// unqualified type name without pointer or type arguments.
func embeddedName(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.StarExpr:
		return embeddedName(v.X)
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(v.X)
	case *ast.IndexListExpr:
		return embeddedName(v.X)
	case *ast.ParenExpr:
		return embeddedName(v.X)
	default:
		return ""
	}
}
