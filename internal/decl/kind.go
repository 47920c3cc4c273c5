package decl

// Kind is the coarse category of a type declaration.
type Kind int

const (
	KindStruct Kind = iota
	KindInterface
	KindEnum // named basic type, usually paired with iota constants
	KindAlias
	KindOther // func, map, chan, slice, array and pointer definitions
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enumeration"
	case KindAlias:
		return "alias"
	default:
		return "type"
	}
}

// Shape describes how the fields of a struct are identified.
type Shape int

const (
	ShapeNamed Shape = iota
	ShapePositional
	ShapeUnit
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeNamed:
		return "named"
	case ShapePositional:
		return "positional"
	case ShapeUnit:
		return "unit"
	default:
		return "unknown"
	}
}
