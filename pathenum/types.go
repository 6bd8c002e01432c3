// Package pathenum types and options: Group, Library, functional Options,
// and the package's sentinel errors.
package pathenum

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Enumerate.
	ErrGraphNil = errors.New("pathenum: graph is nil")

	// ErrNonPositiveK is returned when the requested group size is <= 0.
	ErrNonPositiveK = errors.New("pathenum: k must be positive")
)

// keySep separates member IDs inside a canonical key. A control rune keeps
// keys unambiguous for IDs containing ordinary punctuation.
const keySep = "\x1f"

// Group is a set of exactly k node IDs, stored in the order the discovering
// path first visited them. Two Groups are the same group iff their member
// sets are equal; use Key for that comparison.
type Group []string

// Canonical returns the members sorted under lexicographic order.
// The receiver is not modified.
func (gr Group) Canonical() []string {
	out := make([]string, len(gr))
	copy(out, gr)
	sort.Strings(out)

	return out
}

// Key returns the canonical identity of the member set, suitable for
// dedup-map keys and set-equality checks.
func (gr Group) Key() string {
	return strings.Join(gr.Canonical(), keySep)
}

// Contains reports whether id is a member of the group.
// Time Complexity: O(k).
func (gr Group) Contains(id string) bool {
	for _, m := range gr {
		if m == id {
			return true
		}
	}

	return false
}

// Library is the deduplicated collection of discovered Groups for one
// Enumerate call, in first-discovery order.
type Library struct {
	groups []Group
}

// Groups returns the discovered groups in first-discovery order.
// The slice header is shared; treat the contents as read-only.
func (l *Library) Groups() []Group { return l.groups }

// Len returns the number of distinct groups in the library.
func (l *Library) Len() int { return len(l.groups) }

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds configurable parameters for enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the walk early.
	Ctx context.Context

	// Workers sets the number of concurrent per-start-node walks. Values
	// <= 1 select the single-threaded walk. The parallel walk produces
	// output identical to the serial one: per-start results are merged in
	// start order by a single-threaded dedup pass.
	Workers int

	// OnGroup, if non-nil, is invoked once per recorded group after the
	// walk completes, in library order. Returning an error aborts
	// Enumerate with that error.
	OnGroup func(Group) error
}

// DefaultOptions returns Options with a background context, single-threaded
// traversal, and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnGroup: nil,
	}
}

// WithContext returns an Option that sets the context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that enables parallel enumeration with up to
// n concurrent start-node walks. Values <= 1 keep the serial walk.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithOnGroup returns an Option that installs fn as a per-group hook,
// called in library order once enumeration has finished.
func WithOnGroup(fn func(Group) error) Option {
	return func(o *Options) {
		o.OnGroup = fn
	}
}
