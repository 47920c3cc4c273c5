package decl

import (
	"go/token"
	"strings"
)

// Key identifies the category of an annotation.
type Key string

const (
	KeyDoc       Key = "doc"
	KeyDirective Key = "directive"
)

// Value is the payload of an annotation: Text or Meta.
type Value interface {
	annotationValue()
	String() string
}

// Text is a literal line of text.
type Text string

func (Text) annotationValue() {}

func (t Text) String() string { return string(t) }

// Meta is a structured annotation such as //cfgdoc:hidden or //go:generate.
type Meta struct {
	Name string
	Args []string
}

func (Meta) annotationValue() {}

func (m Meta) String() string {
	if len(m.Args) == 0 {
		return m.Name
	}
	return m.Name + " " + strings.Join(m.Args, " ")
}

// Annotation is one key/value pair attached to a declaration or a field.
type Annotation struct {
	Key   Key
	Value Value
	Pos   token.Position
}

// Doc returns a documentation annotation carrying literal text.
func Doc(text string) Annotation {
	return Annotation{Key: KeyDoc, Value: Text(text)}
}

// Docs returns one documentation annotation per line.
func Docs(lines ...string) []Annotation {
	out := make([]Annotation, 0, len(lines))
	for _, line := range lines {
		out = append(out, Doc(line))
	}
	return out
}

// Directive returns a non-documentation annotation.
func Directive(name string, args ...string) Annotation {
	return Annotation{Key: KeyDirective, Value: Meta{Name: name, Args: args}}
}
