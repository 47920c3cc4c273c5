package simple

//go:generate gen-cfgdoc -t Special,Config

type Special struct {
	// foobar
	test uint8
}

// Our configuration
//
//cfgdoc:generate
type Config struct {
	// foo
	address string
	// bar
	number uint16
	// baz
	debug bool
	// wtf
	// really
	test *string
	// special
	special Special
}

// Token is not a config record.
type Token string
