package pathsep

import (
	"sync"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// CutPool stores generated cuts. It is append-only from the separator's side
// and safe for concurrent Add calls from separators running on independent
// search nodes; the pool owns the synchronization discipline.
type CutPool struct {
	mu   sync.Mutex
	cuts []Cut
}

func NewCutPool() *CutPool {
	return new(CutPool)
}

// Add copies the given cut sum(vals[k]*x[inds[k]]) <= upper into the pool.
func (p *CutPool) Add(inds []int, vals []float64, upper, efficacy float64) {
	cut := Cut{
		Indices:  make([]int, len(inds)),
		Values:   make([]float64, len(vals)),
		Upper:    upper,
		Efficacy: efficacy,
	}
	copy(cut.Indices, inds)
	copy(cut.Values, vals)

	p.mu.Lock()
	p.cuts = append(p.cuts, cut)
	p.mu.Unlock()
}

func (p *CutPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cuts)
}

// Cuts returns a snapshot of the stored cuts in insertion order.
func (p *CutPool) Cuts() []Cut {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Cut, len(p.cuts))
	copy(out, p.cuts)
	return out
}

// TakeBest removes and returns up to k cuts ordered by decreasing efficacy.
// A non-positive k takes nothing.
func (p *CutPool) TakeBest(k int) []Cut {
	if k < 0 {
		k = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pq := priorityqueue.New[int, float64](priorityqueue.MaxHeap)
	for i, cut := range p.cuts {
		pq.Put(i, cut.Efficacy)
	}

	taken := make([]Cut, 0, min(k, len(p.cuts)))
	keep := make([]bool, len(p.cuts))
	for i := range keep {
		keep[i] = true
	}
	for range k {
		if pq.Len() == 0 {
			break
		}
		item := pq.Get()
		taken = append(taken, p.cuts[item.Value])
		keep[item.Value] = false
	}

	remaining := p.cuts[:0]
	for i, cut := range p.cuts {
		if keep[i] {
			remaining = append(remaining, cut)
		}
	}
	p.cuts = remaining

	return taken
}
