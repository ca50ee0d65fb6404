package domain_util

import (
	"container/heap"
	"sort"
)

// TopK 有界最小堆 (基于container/heap)，只保留 better 顺序下最靠前的 k 个元素。
// better 必须是严格全序，否则与全量排序后截断的结果可能不一致。
type TopK[T any] struct {
	k      int
	better func(a, b T) bool
	h      *minHeap[T]
}

type minHeap[T any] struct {
	items  []T
	better func(a, b T) bool
}

// 堆顶是当前保留集合中最差的元素
func (h minHeap[T]) Len() int           { return len(h.items) }
func (h minHeap[T]) Less(i, j int) bool { return h.better(h.items[j], h.items[i]) }
func (h minHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *minHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(T)) }
func (h *minHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[0 : n-1]
	return x
}

func NewTopK[T any](k int, better func(a, b T) bool) *TopK[T] {
	if k < 0 {
		k = 0
	}
	return &TopK[T]{
		k:      k,
		better: better,
		h:      &minHeap[T]{items: make([]T, 0, k), better: better},
	}
}

// Offer 尝试放入一个元素，返回是否被保留
func (t *TopK[T]) Offer(v T) bool {
	if t.k == 0 {
		return false
	}
	if t.h.Len() < t.k {
		heap.Push(t.h, v)
		return true
	}
	if !t.better(v, t.h.items[0]) {
		return false
	}
	t.h.items[0] = v
	heap.Fix(t.h, 0)
	return true
}

func (t *TopK[T]) Len() int { return t.h.Len() }

// Sorted 按 better 顺序（最优在前）返回保留的元素，不修改堆
func (t *TopK[T]) Sorted() []T {
	out := make([]T, len(t.h.items))
	copy(out, t.h.items)
	sort.Slice(out, func(i, j int) bool { return t.better(out[i], out[j]) })
	return out
}
