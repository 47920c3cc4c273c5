package decl

import (
	"go/token"
	"go/types"
	"strings"
)

// Declaration is the structural description of one named type.
type Declaration struct {
	Name        string
	TypeParams  []TypeParam
	Kind        Kind
	Shape       Shape
	Annotations []Annotation
	Fields      []Field
	Pos         token.Position
}

// TypeParam is one type parameter of a generic declaration.
type TypeParam struct {
	Name       string
	Constraint string
}

// Field is one member of a struct declaration.
type Field struct {
	// Name is empty for blank (`_`) fields.
	Name        string
	Type        string
	Annotations []Annotation
	Embedded    bool
	Pos         token.Position

	// GoType is the resolved type when the declaration came from a
	// type-checked package. It may be nil.
	GoType types.Type
}

// TypeParamNames returns the names of d's type parameters in order.
func (d *Declaration) TypeParamNames() []string {
	if len(d.TypeParams) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.TypeParams))
	for _, tp := range d.TypeParams {
		names = append(names, tp.Name)
	}
	return names
}

// HasDirective reports whether d carries the given directive.
func (d *Declaration) HasDirective(name string) bool {
	return hasDirective(d.Annotations, name)
}

// HasDirective reports whether f carries the given directive.
func (f *Field) HasDirective(name string) bool {
	return hasDirective(f.Annotations, name)
}

// Named reports whether the field has a usable identifier.
func (f *Field) Named() bool {
	return strings.TrimSpace(f.Name) != "" && f.Name != "_"
}

func hasDirective(annotations []Annotation, name string) bool {
	for _, a := range annotations {
		if a.Key != KeyDirective {
			continue
		}
		if m, ok := a.Value.(Meta); ok && m.Name == name {
			return true
		}
	}
	return false
}
