package generic

import (
	"net"
	"os"
	"time"
)

// Box holds two values.
type Box[T any, U comparable] struct {
	// first value
	First T
	// second value
	Second U
}

// Inner is embedded below.
type Inner struct {
	Enabled bool
}

// Files exercises the value adapters.
type Files struct {
	*Inner
	// log destination
	Log *os.File
	// listen address
	Addr net.IP
	// request timeout
	Timeout time.Duration
	// failure reason
	Reason error
	// raw payload
	Payload []byte
	// worker count
	Workers int
}
