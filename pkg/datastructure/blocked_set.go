package datastructure

import "sort"

// BlockedSet holds the zones routing must avoid.
type BlockedSet map[Index]struct{}

func NewBlockedSet(zones ...Index) BlockedSet {
	b := make(BlockedSet, len(zones))
	for _, z := range zones {
		b.Add(z)
	}
	return b
}

func (b BlockedSet) Add(z Index) {
	b[z] = struct{}{}
}

func (b BlockedSet) Contains(z Index) bool {
	_, ok := b[z]
	return ok
}

func (b BlockedSet) Len() int {
	return len(b)
}

// Sorted returns the members in ascending index order.
func (b BlockedSet) Sorted() []Index {
	out := make([]Index, 0, len(b))
	for z := range b {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (b BlockedSet) Clone() BlockedSet {
	c := make(BlockedSet, len(b))
	for z := range b {
		c[z] = struct{}{}
	}
	return c
}
