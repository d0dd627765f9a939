package player

import (
	"container/heap"
	"fmt"
	"math"
)

// Priority represents the move order priority.
type Priority int16

// MoveList is a move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities. PASS is
// always included, whether or not moves lists it, and ordered last: it is
// never worth exploring before a real move.
func NewMoveList(moves []string, fn func(move string) Priority) *MoveList {
	h := make(moveHeap, 0, len(moves))
	for _, m := range moves {
		if m == "PASS" {
			continue
		}
		h = append(h, elm{m: m, val: fn(m)})
	}
	h = append(h, elm{m: "PASS", val: math.MinInt16})
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move, highest priority first.
func (ml *MoveList) Next() (string, bool) {
	if ml.Size() == 0 {
		return "", false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   string
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(elm))
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
