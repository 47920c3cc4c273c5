package synth

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/seitarof/gen-cfgdoc/internal/docs"
)

// ErrorKind classifies synthesis failures.
type ErrorKind int

const (
	UnsupportedKind ErrorKind = iota + 1
	MalformedAnnotation
)

// String returns the diagnostic name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedKind:
		return "UnsupportedKind"
	case MalformedAnnotation:
		return "MalformedAnnotation"
	default:
		return "Unknown"
	}
}

var (
	// ErrUnsupportedKind is matched by errors for non-struct declarations.
	ErrUnsupportedKind = errors.New("unions and enumerations are not supported")

	// ErrMalformedAnnotation is matched by errors for doc annotations
	// without literal text.
	ErrMalformedAnnotation = docs.ErrMalformedAnnotation
)

// Error is the diagnostic returned when a declaration cannot be synthesized.
type Error struct {
	Kind ErrorKind
	Decl string
	Pos  token.Position
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Decl, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Decl, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }
