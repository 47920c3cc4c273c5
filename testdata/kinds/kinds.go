package kinds

import "io"

// Level is an enumeration.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
)

// Source is an interface.
type Source interface {
	io.Reader
}

// Alias of Plain.
type Alias = Plain

// Plain has documented fields and one ignored field.
type Plain struct {
	Name string // inline note
	/*
		Block comment
		over two lines
	*/
	Retries int

	//cfgdoc:ignore
	Secret string

	Timeout int //nolint:lll
}

// Hidden carries a directive where text is expected.
//
//cfgdoc:hidden
type Hidden struct {
	Value int
}

// Pair has only blank fields.
type Pair struct {
	_ int
	_ string
}

type Empty struct{}

type (
	// Grouped has its own comment.
	Grouped struct {
		On bool
	}

	Handler func()
)
