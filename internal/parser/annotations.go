package parser

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/seitarof/gen-cfgdoc/internal/decl"
)

// DirectivePrefix starts every directive understood by gen-cfgdoc.
const DirectivePrefix = "cfgdoc:"

// Directives understood by gen-cfgdoc.
const (
	DirectiveGenerate = DirectivePrefix + "generate"
	DirectiveIgnore   = DirectivePrefix + "ignore"
	DirectiveHidden   = DirectivePrefix + "hidden"
)

// annotations converts comment groups into annotations in source order.
// Plain comment lines become documentation text with the comment marker and
// one following space removed. Directives keep their structure;
// //cfgdoc:hidden is a documentation annotation without text.
func annotations(fset *token.FileSet, groups ...*ast.CommentGroup) []decl.Annotation {
	var out []decl.Annotation
	for _, g := range groups {
		if g == nil {
			continue
		}
		var group []decl.Annotation
		for _, c := range g.List {
			pos := fset.Position(c.Pos())
			if body, ok := strings.CutPrefix(c.Text, "//"); ok {
				group = append(group, lineAnnotation(body, pos))
				continue
			}
			for _, line := range blockLines(c.Text) {
				group = append(group, decl.Annotation{Key: decl.KeyDoc, Value: decl.Text(line), Pos: pos})
			}
		}
		out = append(out, trimTrailingBlank(group)...)
	}
	return out
}

// trimTrailingBlank drops empty text lines that only separate the prose of
// a comment group from its trailing directives.
func trimTrailingBlank(group []decl.Annotation) []decl.Annotation {
	out := make([]decl.Annotation, 0, len(group))
	for i, a := range group {
		if a.Key == decl.KeyDoc && a.Value == decl.Text("") && onlyDirectivesAfter(group[i+1:]) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func onlyDirectivesAfter(rest []decl.Annotation) bool {
	for _, a := range rest {
		if a.Key == decl.KeyDirective {
			continue
		}
		if a.Key == decl.KeyDoc && a.Value == decl.Text("") {
			continue
		}
		return false
	}
	return true
}

func lineAnnotation(body string, pos token.Position) decl.Annotation {
	if isDirective(body) {
		fields := strings.Fields(body)
		meta := decl.Meta{Name: fields[0], Args: fields[1:]}
		key := decl.KeyDirective
		if meta.Name == DirectiveHidden {
			key = decl.KeyDoc
		}
		return decl.Annotation{Key: key, Value: meta, Pos: pos}
	}
	text := strings.TrimPrefix(body, " ")
	return decl.Annotation{Key: decl.KeyDoc, Value: decl.Text(text), Pos: pos}
}

// blockLines splits a /* */ comment into lines, dropping the blank first
// and last lines of the usual multi-line layout and the indentation common
// to all remaining lines.
func blockLines(text string) []string {
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	indent := commonIndent(lines)
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimPrefix(line, indent), " \t")
	}
	return lines
}

func commonIndent(lines []string) string {
	var indent string
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			indent, found = lead, true
			continue
		}
		for !strings.HasPrefix(lead, indent) {
			indent = indent[:len(indent)-1]
		}
	}
	return indent
}

// isDirective reports whether a line comment body is a tool directive such
// as "go:generate", "cfgdoc:ignore", "line ..." or "nolint".
func isDirective(body string) bool {
	for _, p := range []string{"line ", "extern ", "export ", "nolint"} {
		if strings.HasPrefix(body, p) {
			return true
		}
	}

	colon := strings.Index(body, ":")
	if colon <= 0 || colon+1 >= len(body) {
		return false
	}
	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}
		b := body[i]
		if !('a' <= b && b <= 'z' || '0' <= b && b <= '9') {
			return false
		}
	}
	return true
}
