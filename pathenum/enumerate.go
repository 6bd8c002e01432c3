package pathenum

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/champlab/champnet/core"
)

// walker encapsulates the state of one depth-first simple-path walk.
type walker struct {
	graph  *core.Graph
	k      int
	opts   Options
	seen   map[string]struct{} // canonical keys already recorded
	out    []Group             // recorded groups, in discovery order
	path   []string            // current simple path, discovery order
	onPath map[string]struct{} // membership index over path
}

// Enumerate discovers every distinct k-node group of g reachable as a simple
// path of exactly k nodes.
//
// Behavior highlights:
//   - k = 1 yields every node as a trivial singleton group.
//   - k > g.NodeCount() yields an empty library; never an error.
//   - Each distinct member set appears exactly once, identified by its
//     canonical form, regardless of which traversal first discovered it.
//   - Running twice over the same graph yields identical libraries, in
//     identical order (core's insertion-order iteration contract).
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrNonPositiveK: k <= 0.
//   - the context's error if cancelled, or an OnGroup hook error.
func Enumerate(g *core.Graph, k int, opts ...Option) (*Library, error) {
	// 1. Validate structural parameters up front.
	if g == nil {
		return nil, ErrGraphNil
	}
	if k <= 0 {
		return nil, ErrNonPositiveK
	}

	// 2. Resolve options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Oversized k can never be satisfied by a simple path: empty result.
	starts := g.Nodes()
	if k > len(starts) {
		return &Library{}, nil
	}

	// 4. Walk: serial or per-start parallel with ordered merge.
	var (
		groups []Group
		err    error
	)
	if o.Workers > 1 {
		groups, err = enumerateParallel(g, k, o, starts)
	} else {
		groups, err = enumerateSerial(g, k, o, starts)
	}
	if err != nil {
		return nil, err
	}

	// 5. Fire the per-group hook in final library order.
	if o.OnGroup != nil {
		for _, gr := range groups {
			if hookErr := o.OnGroup(gr); hookErr != nil {
				return nil, fmt.Errorf("pathenum: OnGroup hook: %w", hookErr)
			}
		}
	}

	return &Library{groups: groups}, nil
}

// enumerateSerial runs one walker over all start nodes with a shared dedup
// set, exactly reproducing the reference single-threaded semantics.
func enumerateSerial(g *core.Graph, k int, o Options, starts []string) ([]Group, error) {
	w := &walker{
		graph:  g,
		k:      k,
		opts:   o,
		seen:   make(map[string]struct{}),
		onPath: make(map[string]struct{}, k),
		path:   make([]string, 0, k),
	}

	for _, s := range starts {
		if err := w.walkFrom(s); err != nil {
			return nil, err
		}
	}

	return w.out, nil
}

// enumerateParallel fans the start nodes out over o.Workers goroutines, each
// running an independent walker with a private dedup set, then merges the
// per-start buckets in start order under a fresh global dedup set. The merge
// re-imposes the serial discovery order, so the result is identical to
// enumerateSerial byte for byte.
func enumerateParallel(g *core.Graph, k int, o Options, starts []string) ([]Group, error) {
	buckets := make([][]Group, len(starts))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)

	for i, s := range starts {
		i, s := i, s
		eg.Go(func() error {
			lo := o
			lo.Ctx = ctx
			w := &walker{
				graph:  g,
				k:      k,
				opts:   lo,
				seen:   make(map[string]struct{}),
				onPath: make(map[string]struct{}, k),
				path:   make([]string, 0, k),
			}
			if err := w.walkFrom(s); err != nil {
				return err
			}
			buckets[i] = w.out

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Single-threaded merge: global dedup in start order restores the exact
	// serial representative (first global discovery) for every member set.
	seen := make(map[string]struct{})
	var out []Group
	for _, bucket := range buckets {
		for _, gr := range bucket {
			key := gr.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, gr)
		}
	}

	return out, nil
}

// walkFrom resets the walker's path to the single start node and explores
// every simple-path extension of length k rooted there.
func (w *walker) walkFrom(start string) error {
	w.path = append(w.path[:0], start)
	w.onPath[start] = struct{}{}
	err := w.extend()
	delete(w.onPath, start)

	return err
}

// extend recurses depth-first from the path's last node. At length k the
// path is recorded (dedup permitting) and the branch terminates; otherwise
// every neighbor absent from the path is appended, explored, and removed
// again on the way out, restoring the path on every exit.
func (w *walker) extend() error {
	// Cancellation check once per frame.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if len(w.path) == w.k {
		w.record()
		return nil
	}

	last := w.path[len(w.path)-1]
	nbs, err := w.graph.Neighbors(last)
	if err != nil {
		return fmt.Errorf("pathenum: Neighbors(%q): %w", last, err)
	}

	for _, nid := range nbs {
		if _, on := w.onPath[nid]; on {
			continue // simple-path constraint: no revisits
		}

		w.path = append(w.path, nid)
		w.onPath[nid] = struct{}{}

		err = w.extend()

		// Backtrack before inspecting err so the path is restored on every
		// exit, including aborts.
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, nid)

		if err != nil {
			return err
		}
	}

	return nil
}

// record captures the current length-k path as a Group unless its member set
// was already recorded. The stored copy preserves discovery order.
func (w *walker) record() {
	key := Group(w.path).Key()
	if _, dup := w.seen[key]; dup {
		return
	}
	w.seen[key] = struct{}{}
	w.out = append(w.out, append(Group(nil), w.path...))
}
