package matcher

import (
	"fmt"
	"strings"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
	"github.com/seitarof/gen-cfgdoc/internal/parser"
)

// DeclMatcher selects the declarations to generate for.
type DeclMatcher interface {
	Match(decls []*decl.Declaration, names []string) ([]*decl.Declaration, error)
}

// FieldMatcher drops fields excluded from the reference.
type FieldMatcher interface {
	Filter(d *decl.Declaration, ignoreFields []string) *decl.Declaration
}

type declMatcherImpl struct{}

type fieldMatcherImpl struct{}

// NewDeclMatcher returns default declaration matcher.
func NewDeclMatcher() DeclMatcher {
	return &declMatcherImpl{}
}

// NewFieldMatcher returns default field matcher.
func NewFieldMatcher() FieldMatcher {
	return &fieldMatcherImpl{}
}

// Match returns the declarations named by names in source order. Without
// names it returns every declaration marked with //cfgdoc:generate.
func (m *declMatcherImpl) Match(decls []*decl.Declaration, names []string) ([]*decl.Declaration, error) {
	if len(names) == 0 {
		var out []*decl.Declaration
		for _, d := range decls {
			if d.HasDirective(parser.DirectiveGenerate) {
				out = append(out, d)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("no types selected: pass --type or mark a type with //%s", parser.DirectiveGenerate)
		}
		return out, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	out := make([]*decl.Declaration, 0, len(names))
	for _, d := range decls {
		if wanted[d.Name] {
			out = append(out, d)
			delete(wanted, d.Name)
		}
	}
	for _, n := range names {
		if wanted[n] {
			return nil, fmt.Errorf("type %q not found", n)
		}
	}
	return out, nil
}

// Filter returns a copy of d without the fields named in ignoreFields
// (case-insensitive) or marked with //cfgdoc:ignore.
func (m *fieldMatcherImpl) Filter(d *decl.Declaration, ignoreFields []string) *decl.Declaration {
	ignoreSet := toIgnoreSet(ignoreFields)

	out := *d
	out.Fields = make([]decl.Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Named() && ignoreSet[strings.ToLower(f.Name)] {
			continue
		}
		if f.HasDirective(parser.DirectiveIgnore) {
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	return &out
}

func toIgnoreSet(ignoreFields []string) map[string]bool {
	set := make(map[string]bool, len(ignoreFields))
	for _, f := range ignoreFields {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" {
			continue
		}
		set[f] = true
	}
	return set
}
