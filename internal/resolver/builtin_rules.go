package resolver

import (
	"go/token"
	"go/types"
)

const (
	helperNative   = "cfgdocNative"
	helperStringer = "cfgdocStringer"
	helperError    = "cfgdocError"
	helperPath     = "cfgdocPath"
	helperBytes    = "cfgdocBytes"
	helperPointer  = "cfgdocPointer"
)

var nativeAdapter = Adapter{Rule: "native", Helper: helperNative}

// DefaultRules returns built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		&PathRule{},
		&ErrorRule{},
		&StringerRule{},
		&BytesRule{},
		&PointerRule{},
		&NativeRule{},
	}
}

// pathTypes lists filesystem types that expose their path only through
// Name().
var pathTypes = map[typeKey]bool{
	{pkg: "os", name: "File", pointer: true}: true,
	{pkg: "io/fs", name: "DirEntry"}:         true, // os.DirEntry
	{pkg: "io/fs", name: "FileInfo"}:         true, // os.FileInfo
}

type typeKey struct {
	pkg     string
	name    string
	pointer bool
}

// PathRule renders filesystem path types through Name().
type PathRule struct{}

func (r *PathRule) Name() string { return "path" }

func (r *PathRule) Try(t types.Type) (Adapter, bool) {
	key, ok := keyOf(t)
	if !ok || !pathTypes[key] {
		return Adapter{}, false
	}
	return Adapter{Rule: r.Name(), Helper: helperPath}, true
}

// BytesRule renders byte slices as strings.
type BytesRule struct{}

func (r *BytesRule) Name() string { return "bytes" }

func (r *BytesRule) Try(t types.Type) (Adapter, bool) {
	s, ok := t.Underlying().(*types.Slice)
	if !ok {
		return Adapter{}, false
	}
	b, ok := s.Elem().Underlying().(*types.Basic)
	if !ok || b.Kind() != types.Byte {
		return Adapter{}, false
	}
	return Adapter{Rule: r.Name(), Helper: helperBytes}, true
}

// ErrorRule renders error values through Error().
type ErrorRule struct{}

func (r *ErrorRule) Name() string { return "error" }

func (r *ErrorRule) Try(t types.Type) (Adapter, bool) {
	if !types.Implements(t, errorInterface) {
		return Adapter{}, false
	}
	return Adapter{Rule: r.Name(), Helper: helperError}, true
}

// StringerRule renders fmt.Stringer values through String().
type StringerRule struct{}

func (r *StringerRule) Name() string { return "stringer" }

func (r *StringerRule) Try(t types.Type) (Adapter, bool) {
	if !types.Implements(t, stringerInterface) {
		return Adapter{}, false
	}
	return Adapter{Rule: r.Name(), Helper: helperStringer}, true
}

// PointerRule renders pointers to native values, printing "<nil>" for nil.
type PointerRule struct{}

func (r *PointerRule) Name() string { return "pointer" }

func (r *PointerRule) Try(t types.Type) (Adapter, bool) {
	p, ok := types.Unalias(t).(*types.Pointer)
	if !ok || !Native(p.Elem()) {
		return Adapter{}, false
	}
	return Adapter{Rule: r.Name(), Helper: helperPointer}, true
}

// NativeRule is the generic fallback. It always matches; types the native
// helper cannot accept fail when the generated file is compiled.
type NativeRule struct{}

func (r *NativeRule) Name() string { return nativeAdapter.Rule }

func (r *NativeRule) Try(types.Type) (Adapter, bool) {
	return nativeAdapter, true
}

// Native reports whether t is accepted by the native helper.
func Native(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	return b.Info()&(types.IsBoolean|types.IsNumeric|types.IsString) != 0
}

func keyOf(t types.Type) (typeKey, bool) {
	pointer := false
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		pointer = true
		t = p.Elem()
	}
	n, ok := types.Unalias(t).(*types.Named)
	if !ok || n.Obj().Pkg() == nil {
		return typeKey{}, false
	}
	return typeKey{pkg: n.Obj().Pkg().Path(), name: n.Obj().Name(), pointer: pointer}, true
}

var (
	errorInterface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

	stringerInterface = types.NewInterfaceType([]*types.Func{
		types.NewFunc(token.NoPos, nil, "String", types.NewSignatureType(
			nil, nil, nil,
			nil,
			types.NewTuple(types.NewVar(token.NoPos, nil, "", types.Typ[types.String])),
			false,
		)),
	}, nil).Complete()
)

// GeneratedRule renders the types that receive a generated String method
// in the same run. The loader cannot see those methods yet, so the rule
// matches by name.
type GeneratedRule struct {
	PkgPath string
	Types   map[string]bool

	// PointerReceiver is set when the generated method has a pointer
	// receiver; values are then passed by address.
	PointerReceiver bool
}

// NewGeneratedRule returns a rule for the named types of the package at
// pkgPath.
func NewGeneratedRule(pkgPath string, names []string, pointerReceiver bool) *GeneratedRule {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return &GeneratedRule{PkgPath: pkgPath, Types: set, PointerReceiver: pointerReceiver}
}

func (r *GeneratedRule) Name() string { return "generated" }

func (r *GeneratedRule) Try(t types.Type) (Adapter, bool) {
	key, ok := keyOf(t)
	if !ok || key.pkg != r.PkgPath || !r.Types[key.name] {
		return Adapter{}, false
	}
	return Adapter{
		Rule:   r.Name(),
		Helper: helperStringer,
		Addr:   r.PointerReceiver && !key.pointer,
	}, true
}
