// Package synth turns a record declaration into the rendering routine that
// prints its configuration reference.
package synth

import (
	"errors"
	"fmt"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
	"github.com/seitarof/gen-cfgdoc/internal/docs"
)

// Synthesize builds the rendering routine for d. On error no routine is
// returned.
func Synthesize(d *decl.Declaration) (*Routine, error) {
	if d.Kind != decl.KindStruct {
		return nil, &Error{
			Kind: UnsupportedKind,
			Decl: d.Name,
			Pos:  d.Pos,
			Msg:  fmt.Sprintf("%s (%s %s)", ErrUnsupportedKind, d.Kind, d.Name),
			Err:  ErrUnsupportedKind,
		}
	}

	steps := []Step{LiteralLine{Text: HeaderLine(d.Name)}}

	lines, err := docs.Extract(d.Annotations)
	if err != nil {
		return nil, annotationError(d, err)
	}
	for _, line := range lines {
		steps = append(steps, LiteralLine{Text: DocLine(line)})
	}
	steps = append(steps, LiteralLine{})

	switch d.Shape {
	case decl.ShapeNamed:
		for _, f := range d.Fields {
			if !f.Named() {
				continue
			}
			fieldDocs, err := docs.Extract(f.Annotations)
			if err != nil {
				return nil, annotationError(d, err)
			}
			steps = append(steps, FieldDocBlock{
				Name:   f.Name,
				Type:   f.Type,
				Docs:   fieldDocs,
				GoType: f.GoType,
			})
		}
	default:
		steps = append(steps, Passthrough{})
	}

	return &Routine{
		TypeName:   d.Name,
		TypeParams: d.TypeParams,
		Steps:      steps,
		Pos:        d.Pos,
	}, nil
}

func annotationError(d *decl.Declaration, err error) error {
	e := &Error{
		Kind: MalformedAnnotation,
		Decl: d.Name,
		Pos:  d.Pos,
		Msg:  err.Error(),
		Err:  err,
	}
	var annErr *docs.AnnotationError
	if errors.As(err, &annErr) && annErr.Pos.IsValid() {
		e.Pos = annErr.Pos
	}
	return e
}
