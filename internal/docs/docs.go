// Package docs extracts documentation lines from declaration and field
// annotations.
package docs

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
)

// ErrMalformedAnnotation is matched by every AnnotationError.
var ErrMalformedAnnotation = errors.New("malformed documentation annotation")

// AnnotationError reports a documentation annotation without literal text.
type AnnotationError struct {
	Pos   token.Position
	Value decl.Value
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("%s: %q carries no literal text", ErrMalformedAnnotation, describe(e.Value))
}

func (e *AnnotationError) Unwrap() error { return ErrMalformedAnnotation }

// Extract returns the text of every documentation annotation, verbatim and
// in input order. Non-documentation annotations are skipped.
func Extract(annotations []decl.Annotation) ([]string, error) {
	var lines []string
	for _, a := range annotations {
		if a.Key != decl.KeyDoc {
			continue
		}
		text, ok := a.Value.(decl.Text)
		if !ok {
			return nil, &AnnotationError{Pos: a.Pos, Value: a.Value}
		}
		lines = append(lines, string(text))
	}
	return lines, nil
}

func describe(v decl.Value) string {
	if v == nil {
		return "<empty>"
	}
	return v.String()
}
