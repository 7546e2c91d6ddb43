package reporting

import "sort"

// Group is one key with its folded value.
type Group[K comparable, V any] struct {
	Key   K
	Value V
}

// Grouper folds values into groups keyed by K, remembering first-seen order.
type Grouper[K comparable, V any] struct {
	index  map[K]int
	groups []Group[K, V]
}

// NewGrouper returns an empty grouper.
func NewGrouper[K comparable, V any]() *Grouper[K, V] {
	return &Grouper[K, V]{index: make(map[K]int)}
}

// Add folds into the group for key, creating it with V's zero value on first sight.
func (g *Grouper[K, V]) Add(key K, fold func(v *V)) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.groups)
		g.index[key] = i
		g.groups = append(g.groups, Group[K, V]{Key: key})
	}
	fold(&g.groups[i].Value)
}

// Len is the number of distinct keys.
func (g *Grouper[K, V]) Len() int {
	return len(g.groups)
}

// Sorted returns a copy of the groups stably sorted by less.
func (g *Grouper[K, V]) Sorted(less func(a, b Group[K, V]) bool) []Group[K, V] {
	out := make([]Group[K, V], len(g.groups))
	copy(out, g.groups)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
