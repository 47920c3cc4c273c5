package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"
)

// Suffix derives the identifier suffix for the helpers of one generated
// file. It only depends on the file's base name.
func Suffix(filename string) string {
	return fmt.Sprintf("%08x", uint32(xxhash.Sum64String(filepath.Base(filename))))
}

// HelperName returns the identifier of helper in the file with suffix.
func HelperName(helper, suffix string) string {
	return helper + "_" + suffix
}

const helperSource = `
// cfgdocNativeKinds_SUFFIX is satisfied by every type fmt prints as a
// plain value.
type cfgdocNativeKinds_SUFFIX interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

func cfgdocNative_SUFFIX[T cfgdocNativeKinds_SUFFIX](v T) string {
	return fmt.Sprint(v)
}

func cfgdocStringer_SUFFIX[T fmt.Stringer](v T) string {
	return fmt.Sprint(v)
}

func cfgdocError_SUFFIX[T error](v T) string {
	return fmt.Sprint(v)
}

func cfgdocPointer_SUFFIX[T cfgdocNativeKinds_SUFFIX](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprint(*v)
}

func cfgdocBytes_SUFFIX[T ~[]byte](v T) string {
	return string(v)
}

func cfgdocPath_SUFFIX[T interface{ Name() string }](v T) (name string) {
	defer func() {
		if recover() != nil {
			name = "<nil>"
		}
	}()
	return v.Name()
}
`

// HelperSource returns the dispatch helpers of one generated file. The
// source needs the "fmt" import.
func HelperSource(suffix string) string {
	return strings.ReplaceAll(helperSource, "SUFFIX", suffix)
}
