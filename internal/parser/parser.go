package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
)

// BuildTag excludes generated files while the parser loads a package, so a
// stale generated file never breaks regeneration.
const BuildTag = "cfgdocgen"

// Parser builds declaration models from Go packages.
type Parser interface {
	Load(pattern string) (*Package, error)
}

type parserImpl struct {
	dir string
}

// New returns default parser. Patterns are resolved relative to the current
// directory.
func New() Parser {
	return &parserImpl{}
}

// NewInDir returns a parser resolving patterns relative to dir.
func NewInDir(dir string) Parser {
	return &parserImpl{dir: dir}
}

func (p *parserImpl) Load(pattern string) (*Package, error) {
	if pattern == "" {
		pattern = "."
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedTypesInfo,
		Dir:        p.dir,
		BuildFlags: []string{"-tags=" + BuildTag},
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pattern)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("pattern %q matches %d packages, want 1", pattern, len(pkgs))
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has compilation errors", pattern)
	}

	pkg := pkgs[0]
	out := &Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
	}
	if len(pkg.GoFiles) > 0 {
		out.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	b := &builder{fset: pkg.Fset, info: pkg.TypesInfo}
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		out.Decls = append(out.Decls, b.fileDecls(file)...)
	}
	return out, nil
}

type builder struct {
	fset *token.FileSet
	info *types.Info
}

func (b *builder) fileDecls(file *ast.File) []*decl.Declaration {
	var out []*decl.Declaration
	for _, d := range file.Decls {
		genDecl, ok := d.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil && !genDecl.Lparen.IsValid() {
				doc = genDecl.Doc
			}
			out = append(out, b.declaration(typeSpec, doc))
		}
	}
	return out
}

func (b *builder) declaration(spec *ast.TypeSpec, doc *ast.CommentGroup) *decl.Declaration {
	d := &decl.Declaration{
		Name:        spec.Name.Name,
		TypeParams:  typeParams(spec.TypeParams),
		Kind:        b.kindOf(spec),
		Shape:       decl.ShapeNamed,
		Annotations: annotations(b.fset, doc),
		Pos:         b.fset.Position(spec.Name.Pos()),
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok || d.Kind != decl.KindStruct {
		return d
	}

	named := 0
	for _, field := range st.Fields.List {
		for _, f := range b.fields(field) {
			if f.Named() {
				named++
			}
			d.Fields = append(d.Fields, f)
		}
	}
	if len(d.Fields) > 0 && named == 0 {
		d.Shape = decl.ShapePositional
	}
	return d
}

func (b *builder) kindOf(spec *ast.TypeSpec) decl.Kind {
	if spec.Assign.IsValid() {
		return decl.KindAlias
	}

	var under types.Type
	if b.info != nil {
		if obj, ok := b.info.Defs[spec.Name].(*types.TypeName); ok && obj != nil {
			under = obj.Type().Underlying()
		}
	}
	switch under.(type) {
	case *types.Struct:
		return decl.KindStruct
	case *types.Interface:
		return decl.KindInterface
	case *types.Basic:
		return decl.KindEnum
	case nil:
		// No type information: fall back to the syntax.
		switch spec.Type.(type) {
		case *ast.StructType:
			return decl.KindStruct
		case *ast.InterfaceType:
			return decl.KindInterface
		case *ast.Ident:
			return decl.KindEnum
		}
	}
	return decl.KindOther
}

func (b *builder) fields(field *ast.Field) []decl.Field {
	typeText := types.ExprString(field.Type)
	anns := annotations(b.fset, field.Doc, field.Comment)

	var goType types.Type
	if b.info != nil {
		goType = b.info.TypeOf(field.Type)
	}

	if len(field.Names) == 0 {
		return []decl.Field{{
			Name:        embeddedName(field.Type),
			Type:        typeText,
			Annotations: anns,
			Embedded:    true,
			Pos:         b.fset.Position(field.Pos()),
			GoType:      goType,
		}}
	}

	out := make([]decl.Field, 0, len(field.Names))
	for _, ident := range field.Names {
		name := ident.Name
		if name == "_" {
			name = ""
		}
		out = append(out, decl.Field{
			Name:        name,
			Type:        typeText,
			Annotations: anns,
			Pos:         b.fset.Position(ident.Pos()),
			GoType:      goType,
		})
	}
	return out
}

func typeParams(list *ast.FieldList) []decl.TypeParam {
	if list == nil {
		return nil
	}
	var out []decl.TypeParam
	for _, field := range list.List {
		constraint := types.ExprString(field.Type)
		for _, ident := range field.Names {
			out = append(out, decl.TypeParam{Name: ident.Name, Constraint: constraint})
		}
	}
	return out
}
