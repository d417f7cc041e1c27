package internal

import (
	"container/heap"
	"strings"

	"unobot/internal/domain"
)

// searchState is one best-first frontier entry. hand and path are owned by the
// state and never shared with another entry.
type searchState struct {
	cost  int
	hand  []domain.Card
	path  []domain.Card
	color domain.Color
	seq   int
}

// compareStates orders states by cost, then hand, then path, then active
// color, then push order. Only cost matters to the search; the rest makes the
// order total so equal-cost pops are reproducible.
func compareStates(a, b *searchState) int {
	if a.cost != b.cost {
		if a.cost < b.cost {
			return -1
		}
		return 1
	}
	if c := compareCards(a.hand, b.hand); c != 0 {
		return c
	}
	if c := compareCards(a.path, b.path); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.color), string(b.color)); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// compareCards compares card sequences lexicographically; a proper prefix sorts first.
func compareCards(a, b []domain.Card) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

type stateHeap []*searchState

func (h stateHeap) Len() int           { return len(h) }
func (h stateHeap) Less(i, j int) bool { return compareStates(h[i], h[j]) < 0 }
func (h stateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) { *h = append(*h, x.(*searchState)) }

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// frontier is a min-priority queue of search states.
type frontier struct {
	h    stateHeap
	next int
}

func (f *frontier) Len() int { return f.h.Len() }

func (f *frontier) push(s *searchState) {
	s.seq = f.next
	f.next++
	heap.Push(&f.h, s)
}

func (f *frontier) pop() *searchState {
	return heap.Pop(&f.h).(*searchState)
}

func (f *frontier) peek() *searchState {
	if len(f.h) == 0 {
		return nil
	}
	return f.h[0]
}
