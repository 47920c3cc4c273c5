package generator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/token"
	"os"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-cfgdoc/internal/parser"
	"github.com/seitarof/gen-cfgdoc/internal/resolver"
	"github.com/seitarof/gen-cfgdoc/internal/synth"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator writes rendering routines as Go methods.
type Generator interface {
	Generate(cfg Config, file File) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
	MethodName() string
	PointerReceiver() bool
	RenderValues() bool
}

// File is the content of one generated file.
type File struct {
	Package  string
	PkgPath  string
	Routines []*synth.Routine
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	resolver  resolver.Resolver
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	BuildTag string
	Package  string
	Imports  []string
	Methods  []methodTemplateData
	Helpers  string
}

type methodTemplateData struct {
	Name     string
	TypeName string
	Recv     string
	RecvType string
	Stmts    []string
}

// New creates a code generator. r picks the value adapters when values are
// rendered.
func New(f Formatter, w FileWriter, r resolver.Resolver) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, resolver: r, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a file writer that leaves files with identical
// content untouched.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, file File) error {
	if len(file.Routines) == 0 {
		return errors.New("no routines to generate")
	}
	if !token.IsIdentifier(cfg.MethodName()) {
		return fmt.Errorf("method name %q is not a Go identifier", cfg.MethodName())
	}
	for _, r := range file.Routines {
		for _, b := range r.FieldBlocks() {
			if b.Name == cfg.MethodName() {
				return fmt.Errorf("%s: field %s has the name of the generated method", r.TypeName, b.Name)
			}
		}
	}

	data := g.buildTemplateData(cfg, file)
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "cfgdoc.go.tmpl", data); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	if old, err := os.ReadFile(filename); err == nil && bytes.Equal(old, data) {
		return nil
	}
	return os.WriteFile(filename, data, 0o644)
}

func (g *generatorImpl) buildTemplateData(cfg Config, file File) templateData {
	suffix := resolver.Suffix(cfg.OutputFilename())
	data := templateData{
		BuildTag: parser.BuildTag,
		Package:  file.Package,
		Imports:  []string{"fmt", "strings"},
		Helpers:  strings.TrimSpace(resolver.HelperSource(suffix)),
	}

	res := ForFile(g.resolver, cfg, file)
	for _, r := range file.Routines {
		recv := receiverName(r)
		recvType := r.TypeName
		if params := r.TypeParamNames(); len(params) > 0 {
			recvType += "[" + strings.Join(params, ", ") + "]"
		}
		if cfg.PointerReceiver() {
			recvType = "*" + recvType
		}

		data.Methods = append(data.Methods, methodTemplateData{
			Name:     cfg.MethodName(),
			TypeName: r.TypeName,
			Recv:     recv,
			RecvType: recvType,
			Stmts:    renderSteps(res, r.Steps, recv, suffix, cfg.RenderValues()),
		})
	}
	return data
}

// ForFile returns r extended with the types that receive a String method
// from file.
func ForFile(r resolver.Resolver, cfg Config, file File) resolver.Resolver {
	if cfg.MethodName() != "String" || len(file.Routines) == 0 {
		return r
	}
	names := make([]string, 0, len(file.Routines))
	for _, routine := range file.Routines {
		names = append(names, routine.TypeName)
	}
	return resolver.WithRule(r, resolver.NewGeneratedRule(file.PkgPath, names, cfg.PointerReceiver()))
}

func renderSteps(res resolver.Resolver, steps []synth.Step, recv, suffix string, values bool) []string {
	var out []string
	for _, s := range steps {
		switch step := s.(type) {
		case synth.FieldDocBlock:
			if !values {
				out = appendLines(out, step.Lines(false))
				continue
			}
			out = appendLines(out, step.Head())
			expr := res.Resolve(step.GoType).Expr(recv+"."+step.Name, suffix)
			out = append(out, "fmt.Fprintf(&out, "+strconv.Quote(synth.ValueLine("%s")+"\n")+", "+expr+")")
			out = appendLines(out, step.Tail())
		case synth.Passthrough:
			out = append(out, "// Fields without names are not rendered.")
		default:
			out = appendLines(out, s.Lines(false))
		}
	}
	return out
}

func appendLines(out, lines []string) []string {
	for _, line := range lines {
		out = append(out, "out.WriteString("+strconv.Quote(line+"\n")+")")
	}
	return out
}

// reservedNames are identifiers the generated method body refers to.
var reservedNames = map[string]bool{"out": true, "fmt": true, "strings": true}

// receiverName returns the lowercased first letter of the type name, or a
// fallback when that letter names a type parameter.
func receiverName(r *synth.Routine) string {
	taken := make(map[string]bool, len(r.TypeParams))
	for _, name := range r.TypeParamNames() {
		taken[name] = true
	}

	var candidates []string
	if first, _ := utf8.DecodeRuneInString(r.TypeName); first != utf8.RuneError && first != '_' {
		candidates = append(candidates, string(unicode.ToLower(first)))
	}
	candidates = append(candidates, "c", "v", "recv")
	for _, c := range candidates {
		if !taken[c] && !reservedNames[c] {
			return c
		}
	}
	for i := 0; ; i++ {
		c := fmt.Sprintf("recv%d", i)
		if !taken[c] {
			return c
		}
	}
}
