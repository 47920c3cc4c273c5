package cli

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
	"github.com/seitarof/gen-cfgdoc/internal/generator"
	"github.com/seitarof/gen-cfgdoc/internal/matcher"
	"github.com/seitarof/gen-cfgdoc/internal/parser"
	"github.com/seitarof/gen-cfgdoc/internal/resolver"
	"github.com/seitarof/gen-cfgdoc/internal/synth"
)

// Runner orchestrates parser/matcher/synth/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser     parser.Parser
	declMatch  matcher.DeclMatcher
	fieldMatch matcher.FieldMatcher
	resolver   resolver.Resolver
	generator  generator.Generator
	out        io.Writer
}

// NewRunner creates a default runner implementation. Previews are written
// to out.
func NewRunner(
	p parser.Parser,
	dm matcher.DeclMatcher,
	fm matcher.FieldMatcher,
	r resolver.Resolver,
	g generator.Generator,
	out io.Writer,
) Runner {
	return &runnerImpl{
		parser:     p,
		declMatch:  dm,
		fieldMatch: fm,
		resolver:   r,
		generator:  g,
		out:        out,
	}
}

// debugDump prints declarations without descending into go/types graphs.
var debugDump = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	pkg, err := r.parser.Load(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	selected, err := r.declMatch.Match(pkg.Decls, cfg.Types)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	routines := make([]*synth.Routine, 0, len(selected))
	for _, d := range selected {
		d = r.fieldMatch.Filter(d, cfg.IgnoreFields)
		if cfg.Debug {
			log.Printf("gen-cfgdoc: debug: %s", debugDump.Sdump(d))
		}

		routine, err := synth.Synthesize(d)
		if err != nil {
			return err
		}
		logPassthrough(d)
		routines = append(routines, routine)
	}
	file := generator.File{Package: pkg.Name, PkgPath: pkg.Path, Routines: routines}
	if cfg.Values {
		logMissingAdapters(generator.ForFile(r.resolver, cfg, file), routines)
	}

	if cfg.Preview {
		for _, routine := range routines {
			if _, err := io.WriteString(r.out, routine.Render(cfg.Values)); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
		}
		return nil
	}

	genCfg := *cfg
	if genCfg.Output == "" {
		genCfg.Output = filepath.Join(pkg.Dir, pkg.Name+"_cfgdoc.go")
	}
	return r.generator.Generate(&genCfg, file)
}

func logPassthrough(d *decl.Declaration) {
	if d.Shape != decl.ShapePositional {
		return
	}
	log.Printf("gen-cfgdoc: warning: %s: %s has no named fields, only the header is rendered", d.Pos, d.Name)
}

// logMissingAdapters warns about fields whose values no adapter can render.
// The generated code does not compile for them.
func logMissingAdapters(res resolver.Resolver, routines []*synth.Routine) {
	native := (&resolver.NativeRule{}).Name()
	for _, routine := range routines {
		for _, b := range routine.FieldBlocks() {
			if res.Resolve(b.GoType).Rule != native {
				continue
			}
			if b.GoType != nil && resolver.Native(b.GoType) {
				continue
			}
			log.Printf(
				"gen-cfgdoc: warning: %s.%s (%s): no text adapter for this type, generated code will not compile",
				routine.TypeName,
				b.Name,
				b.Type,
			)
		}
	}
}
