package resolver

import (
	"go/types"
)

// Resolver picks the text adapter used to render a field value.
type Resolver interface {
	Resolve(t types.Type) Adapter
}

// Rule tries to produce an adapter for one field type.
type Rule interface {
	Name() string
	Try(t types.Type) (Adapter, bool)
}

// Adapter names the helper that turns a field value into text.
type Adapter struct {
	Rule   string
	Helper string

	// Addr passes the address of the field to the helper.
	Addr bool
}

// Expr returns the call expression rendering sel with the helper of the
// generated file identified by suffix. sel must be addressable when Addr is
// set.
func (a Adapter) Expr(sel, suffix string) string {
	if a.Addr {
		sel = "&" + sel
	}
	return HelperName(a.Helper, suffix) + "(" + sel + ")"
}

type resolverImpl struct {
	rules []Rule
}

// New builds a resolver with rule chain. Rules are tried in order and the
// first match wins, so more specific rules go first.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

func (r *resolverImpl) Resolve(t types.Type) Adapter {
	if t != nil {
		for _, rule := range r.rules {
			if adapter, ok := rule.Try(t); ok {
				return adapter
			}
		}
	}
	return nativeAdapter
}

type chainedResolver struct {
	first Rule
	next  Resolver
}

// WithRule returns a resolver trying rule before r.
func WithRule(r Resolver, rule Rule) Resolver {
	return &chainedResolver{first: rule, next: r}
}

func (r *chainedResolver) Resolve(t types.Type) Adapter {
	if t != nil {
		if adapter, ok := r.first.Try(t); ok {
			return adapter
		}
	}
	return r.next.Resolve(t)
}
