package parser

import "github.com/seitarof/gen-cfgdoc/internal/decl"

// Package holds the type declarations of one loaded package.
type Package struct {
	Name  string
	Path  string
	Dir   string
	Decls []*decl.Declaration
}

// Lookup returns the declaration with the given name.
func (p *Package) Lookup(name string) *decl.Declaration {
	for _, d := range p.Decls {
		if d.Name == name {
			return d
		}
	}
	return nil
}
