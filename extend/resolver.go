package extend

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/scss/ast"
)

// Resolver resolves extend directives. The zero value is not usable, create
// resolvers with NewResolver. A Resolver holds configuration only and may be
// used for any number of trees, also concurrently.
type Resolver struct {
	boundaries bool   // substring matches must start and end at selector boundaries
	dedup      bool   // do not add selectors a block already has
	traceKey   string // key for tracing.Select
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBoundaryMatch makes the substring fallback respect selector boundaries:
// an index key ".btn" will then match ".panel .btn" and ".btn:hover", but not
// ".btn-large". The default is plain substring matching; structural
// replacement will filter most spurious matches anyway.
func WithBoundaryMatch(on bool) Option {
	return func(r *Resolver) {
		r.boundaries = on
	}
}

// WithDeduplication suppresses adding selectors to a rule block which are
// already part of its selector list. The default is to add every selector
// produced.
func WithDeduplication(on bool) Option {
	return func(r *Resolver) {
		r.dedup = on
	}
}

// WithTraceKey selects the tracer for a resolver.
func WithTraceKey(key string) Option {
	return func(r *Resolver) {
		if key != "" {
			r.traceKey = key
		}
	}
}

// NewResolver creates a resolver with options applied.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{traceKey: DefaultTraceKey}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) tracer() tracing.Trace {
	return tracing.Select(r.traceKey)
}

// Resolve resolves all extend directives of the tree under root. root is
// modified in place: directives are removed, and rule blocks gain the
// selectors of blocks extending them.
//
// Errors are returned for malformed trees only (nodes without payload,
// rule blocks or directives without selectors). In this case the tree may
// have been partially modified.
func (r *Resolver) Resolve(root *ast.StyleNode) error {
	idx, err := r.BuildIndex(root)
	if err != nil {
		return err
	}
	r.tracer().Debugf("extension index: %s", idx)
	return r.Rewrite(root, idx)
}

// Resolve resolves all extend directives of the tree under root, using a
// resolver configured with opts. See Resolver.Resolve.
func Resolve(root *ast.StyleNode, opts ...Option) error {
	return NewResolver(opts...).Resolve(root)
}

// BuildIndex collects the extend directives of the tree under root into a
// fresh index and removes them from the tree, using the default resolver
// configuration. See Resolver.BuildIndex.
func BuildIndex(root *ast.StyleNode) (*Index, error) {
	return NewResolver().BuildIndex(root)
}

// Rewrite extends the rule blocks of the tree under root with the selector
// lists registered in idx, using the default resolver configuration. See
// Resolver.Rewrite.
func Rewrite(root *ast.StyleNode, idx *Index) error {
	return NewResolver().Rewrite(root, idx)
}
