package synth

import (
	"go/token"
	"go/types"
	"strings"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
)

// Line prefixes of the rendered reference.
const (
	HeaderPrefix = "### "
	LinePrefix   = "# "
)

// Step is one emission step of a rendering routine.
type Step interface {
	// Lines returns the text lines the step prints, without their line
	// terminators. With values set, field blocks include a value line
	// carrying a placeholder.
	Lines(values bool) []string
}

// LiteralLine writes Text followed by a newline.
type LiteralLine struct {
	Text string
}

// FieldDocBlock writes the name, type and documentation of one field,
// followed by a blank line.
type FieldDocBlock struct {
	Name string
	Type string
	Docs []string

	// GoType is forwarded from the declaration for value adapters.
	GoType types.Type
}

// Passthrough writes nothing. It stands in for records whose fields have no
// names.
type Passthrough struct{}

// Routine is the synthesized rendering routine of one declaration.
type Routine struct {
	TypeName   string
	TypeParams []decl.TypeParam
	Steps      []Step
	Pos        token.Position
}

// TypeParamNames returns the names of the routine's type parameters.
func (r *Routine) TypeParamNames() []string {
	d := decl.Declaration{TypeParams: r.TypeParams}
	return d.TypeParamNames()
}

// FieldBlocks returns the field steps of the routine in order.
func (r *Routine) FieldBlocks() []FieldDocBlock {
	var out []FieldDocBlock
	for _, s := range r.Steps {
		if b, ok := s.(FieldDocBlock); ok {
			out = append(out, b)
		}
	}
	return out
}

// Render returns the text the generated method prints. When values is set,
// value lines carry a placeholder naming the field type.
func (r *Routine) Render(values bool) string {
	var b strings.Builder
	for _, s := range r.Steps {
		for _, line := range s.Lines(values) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (l LiteralLine) Lines(bool) []string { return []string{l.Text} }

// Head returns the lines printed before the value line.
func (f FieldDocBlock) Head() []string {
	return []string{NameLine(f.Name), TypeLine(f.Type)}
}

// Tail returns the lines printed after the value line.
func (f FieldDocBlock) Tail() []string {
	out := make([]string, 0, len(f.Docs)+2)
	out = append(out, DescLine)
	for _, d := range f.Docs {
		out = append(out, DocLine(d))
	}
	return append(out, "")
}

func (f FieldDocBlock) Lines(values bool) []string {
	out := f.Head()
	if values {
		out = append(out, ValueLine("<"+f.Type+">"))
	}
	return append(out, f.Tail()...)
}

func (Passthrough) Lines(bool) []string { return nil }

// DescLine opens the documentation of a field block.
const DescLine = "# desc:"

// HeaderLine returns the first line of a routine.
func HeaderLine(name string) string { return HeaderPrefix + name }

// DocLine returns one documentation line.
func DocLine(text string) string { return LinePrefix + text }

// NameLine returns the name line of a field block.
func NameLine(name string) string { return "# name: '" + name + "'" }

// TypeLine returns the type line of a field block.
func TypeLine(typ string) string { return "# type: '" + typ + "'" }

// ValueLine returns the value line of a field block.
func ValueLine(value string) string { return "# value: '" + value + "'" }
