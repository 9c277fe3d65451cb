package dijkstra

import "container/heap"

// heapSelector keeps candidates in a min-heap ordered by (dist, index).
// Outdated entries stay in the heap and are skipped when popped.
type heapSelector struct {
	r  *runner
	pq nodePQ
}

func newHeapSelector(r *runner) *heapSelector {
	s := &heapSelector{r: r, pq: make(nodePQ, 0, r.n.Len())}
	heap.Push(&s.pq, nodeItem{idx: r.origin, dist: 0})

	return s
}

func (s *heapSelector) next() (int, bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(nodeItem)
		if s.r.settled[item.idx] || item.dist > s.r.dist[item.idx] {
			continue // stale entry
		}

		return item.idx, true
	}

	return noPred, false
}

func (s *heapSelector) improved(idx int) {
	heap.Push(&s.pq, nodeItem{idx: idx, dist: s.r.dist[idx]})
}

// nodeItem is a heap entry: a station index and its distance when pushed.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem. Equal distances pop in index order so
// the heap settles stations in the same order as the linear scan.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
