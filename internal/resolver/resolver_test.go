package resolver

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_DefaultRules(t *testing.T) {
	osPkg := types.NewPackage("os", "os")
	fsPkg := types.NewPackage("io/fs", "fs")
	netPkg := types.NewPackage("net", "net")
	jsonPkg := types.NewPackage("encoding/json", "json")
	local := types.NewPackage("example.com/cfg", "cfg")

	osFile := newNamed(osPkg, "File", types.NewStruct(nil, nil))
	dirEntry := newNamed(fsPkg, "DirEntry", types.NewInterfaceType(nil, nil).Complete())
	fileInfo := newNamed(fsPkg, "FileInfo", types.NewInterfaceType(nil, nil).Complete())
	netIP := newNamed(netPkg, "IP", types.NewSlice(types.Typ[types.Byte]))
	addStringMethod(netIP, "String")
	rawMessage := newNamed(jsonPkg, "RawMessage", types.NewSlice(types.Typ[types.Byte]))
	level := newNamed(local, "Level", types.Typ[types.Int])
	addStringMethod(level, "String")
	port := newNamed(local, "Port", types.Typ[types.Uint16])
	failure := newNamed(local, "Failure", types.NewStruct(nil, nil))
	addStringMethod(failure, "Error")
	opaque := newNamed(local, "Opaque", types.NewStruct(nil, nil))

	tests := []struct {
		name string
		typ  types.Type
		rule string
	}{
		{name: "os.File pointer", typ: types.NewPointer(osFile), rule: "path"},
		{name: "fs.DirEntry", typ: dirEntry, rule: "path"},
		{name: "fs.FileInfo", typ: fileInfo, rule: "path"},
		{name: "os.File value is not a path", typ: osFile, rule: "native"},
		{name: "error interface", typ: types.Universe.Lookup("error").Type(), rule: "error"},
		{name: "error implementation", typ: failure, rule: "error"},
		{name: "stringer", typ: level, rule: "stringer"},
		{name: "net.IP keeps String", typ: netIP, rule: "stringer"},
		{name: "byte slice", typ: types.NewSlice(types.Typ[types.Byte]), rule: "bytes"},
		{name: "json.RawMessage", typ: rawMessage, rule: "bytes"},
		{name: "pointer to string", typ: types.NewPointer(types.Typ[types.String]), rule: "pointer"},
		{name: "pointer to named basic", typ: types.NewPointer(port), rule: "pointer"},
		{name: "pointer to struct", typ: types.NewPointer(opaque), rule: "native"},
		{name: "pointer to stringer", typ: types.NewPointer(level), rule: "stringer"},
		{name: "string", typ: types.Typ[types.String], rule: "native"},
		{name: "named basic", typ: port, rule: "native"},
		{name: "struct falls back to native", typ: opaque, rule: "native"},
		{name: "no type information", typ: nil, rule: "native"},
	}

	r := New(DefaultRules()...)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.rule, r.Resolve(tc.typ).Rule)
		})
	}
}

func TestResolver_FirstMatchWins(t *testing.T) {
	r := New(&NativeRule{}, &StringerRule{})
	level := newNamed(types.NewPackage("example.com/cfg", "cfg"), "Level", types.Typ[types.Int])
	addStringMethod(level, "String")

	assert.Equal(t, "native", r.Resolve(level).Rule)
}

func TestGeneratedRule(t *testing.T) {
	local := types.NewPackage("example.com/cfg", "cfg")
	other := types.NewPackage("example.com/other", "other")
	special := newNamed(local, "Special", types.NewStruct(nil, nil))
	notSelected := newNamed(local, "Plain", types.NewStruct(nil, nil))
	foreign := newNamed(other, "Special", types.NewStruct(nil, nil))

	tests := []struct {
		name    string
		pointer bool
		typ     types.Type
		rule    string
		expr    string
	}{
		{name: "value", typ: special, rule: "generated", expr: "cfgdocStringer_0badcafe(c.special)"},
		{name: "pointer field", typ: types.NewPointer(special), rule: "generated", expr: "cfgdocStringer_0badcafe(c.special)"},
		{name: "value with pointer receiver", pointer: true, typ: special, rule: "generated", expr: "cfgdocStringer_0badcafe(&c.special)"},
		{name: "pointer field with pointer receiver", pointer: true, typ: types.NewPointer(special), rule: "generated", expr: "cfgdocStringer_0badcafe(c.special)"},
		{name: "not selected", typ: notSelected, rule: "native", expr: "cfgdocNative_0badcafe(c.special)"},
		{name: "other package", typ: foreign, rule: "native", expr: "cfgdocNative_0badcafe(c.special)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := WithRule(New(DefaultRules()...), NewGeneratedRule("example.com/cfg", []string{"Special"}, tc.pointer))
			a := r.Resolve(tc.typ)
			assert.Equal(t, tc.rule, a.Rule)
			assert.Equal(t, tc.expr, a.Expr("c.special", "0badcafe"))
		})
	}
}

func TestWithRule_NilType(t *testing.T) {
	r := WithRule(New(), NewGeneratedRule("example.com/cfg", []string{"Special"}, false))
	assert.Equal(t, "native", r.Resolve(nil).Rule)
}

func TestNative(t *testing.T) {
	assert.True(t, Native(types.Typ[types.Bool]))
	assert.True(t, Native(types.Typ[types.Float64]))
	assert.True(t, Native(types.Typ[types.Complex128]))
	assert.True(t, Native(newNamed(types.NewPackage("x", "x"), "Mode", types.Typ[types.Uint8])))
	assert.False(t, Native(types.Typ[types.UnsafePointer]))
	assert.False(t, Native(types.NewSlice(types.Typ[types.Int])))
	assert.False(t, Native(types.NewPointer(types.Typ[types.Int])))
}

func TestAdapter_Expr(t *testing.T) {
	a := Adapter{Rule: "path", Helper: helperPath}
	assert.Equal(t, "cfgdocPath_0badcafe(c.Root)", a.Expr("c.Root", "0badcafe"))
}

func TestSuffix(t *testing.T) {
	s := Suffix("/tmp/a/config_cfgdoc.go")
	assert.Len(t, s, 8)
	assert.Equal(t, s, Suffix("config_cfgdoc.go"), "suffix depends on the base name only")
	assert.NotEqual(t, s, Suffix("server_cfgdoc.go"))
}

func TestHelperSource_Compiles(t *testing.T) {
	src := "package p\n\nimport \"fmt\"\n" + HelperSource("abc12345")
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "helper.go", src, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("p", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	for _, helper := range []string{helperNative, helperStringer, helperError, helperBytes, helperPath, helperPointer} {
		assert.True(t, strings.Contains(src, "func "+HelperName(helper, "abc12345")+"["), helper)
	}
	assert.NotContains(t, src, "SUFFIX")
}

func newNamed(pkg *types.Package, name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, underlying, nil)
}

func addStringMethod(n *types.Named, method string) {
	recv := types.NewVar(token.NoPos, n.Obj().Pkg(), "v", n)
	result := types.NewTuple(types.NewVar(token.NoPos, nil, "", types.Typ[types.String]))
	sig := types.NewSignatureType(recv, nil, nil, nil, result, false)
	n.AddMethod(types.NewFunc(token.NoPos, n.Obj().Pkg(), method, sig))
}
