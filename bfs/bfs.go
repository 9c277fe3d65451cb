// Package bfs walks a network.Network breadth-first along directed routes,
// reporting which stations can be reached from a start station and in how
// many hops.
//
// Reachable runs in O(V + E) time and O(V) space.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/tanroute/network"
)

// walker encapsulates mutable walk state, indexed by arena position.
type walker struct {
	n       *network.Network
	opts    Options
	queue   []int
	depth   []int
	visited []bool
	res     *Result
}

// Reachable walks n from startID following route direction.
// Returns ErrNilNetwork, ErrStartNotFound, ErrOptionViolation, ctx errors,
// or any OnVisit error.
func Reachable(n *network.Network, startID string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := n.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	size := n.Len()
	w := &walker{
		n:       n,
		opts:    o,
		queue:   make([]int, 0, size),
		depth:   make([]int, size),
		visited: make([]bool, size),
		res: &Result{
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(i, d, parent int) {
	w.visited[i] = true
	w.depth[i] = d
	id := w.n.Station(i).ID
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.n.Station(parent).ID
	}
	w.queue = append(w.queue, i)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		id := w.n.Station(u).ID
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, w.depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}

		if w.opts.MaxDepth > 0 && w.depth[u] >= w.opts.MaxDepth {
			continue
		}
		for _, v := range w.n.Successors(u) {
			if !w.visited[v] {
				w.enqueue(v, w.depth[u]+1, u)
			}
		}
	}

	return nil
}
