// Package alias implements Vose's alias method: O(n) table build,
// O(1) weighted sampling with one raw draw per sample.
package alias

import (
	"errors"
	"math"

	"github.com/pavlosg/whirl"
)

var (
	ErrNoEntries = errors.New("alias: no entries")
	ErrNoWeight  = errors.New("alias: total weight is not positive")
	ErrEmpty     = errors.New("alias: sampling from an empty table")
)

// Entry pairs an item with a non-negative weight. Entries with weight
// <= 0 (or NaN) keep their slot in the table but are never selected.
type Entry[T any] struct {
	Item   T
	Weight float64
}

type cell struct {
	threshold uint32
	alias     int32
}

// Table samples from a fixed weighted multiset in O(1) per draw. The
// bound generator is shared, not owned; the derived table is rebuilt
// wholesale by Reset and never updated incrementally.
type Table[T any] struct {
	src   whirl.Source
	items []T
	cells []cell
}

// New returns an empty table bound to src. Sampling before the first
// Reset reports ErrEmpty.
func New[T any](src whirl.Source) *Table[T] {
	return &Table[T]{src: src}
}

// NewTable returns a table bound to src and built from entries.
func NewTable[T any](src whirl.Source, entries []Entry[T]) (*Table[T], error) {
	t := New[T](src)
	if err := t.Reset(entries); err != nil {
		return nil, err
	}
	return t, nil
}

// Len reports the number of item slots.
func (t *Table[T]) Len() int { return len(t.items) }

// Reset rebuilds the whole table from entries in O(n). Weights are
// scaled by their mean; each below-mean slot is paired with an
// at-or-above-mean slot, recording a threshold and an alias, and the
// donor's surplus is redistributed. Slots left over from floating-point
// drift keep their full column.
func (t *Table[T]) Reset(entries []Entry[T]) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	n := len(entries)
	items := make([]T, n)
	scaled := make([]float64, n)
	total := 0.0
	for i, e := range entries {
		items[i] = e.Item
		if e.Weight > 0 {
			scaled[i] = e.Weight
			total += e.Weight
		}
	}
	if !(total > 0) {
		return ErrNoWeight
	}
	mean := total / float64(n)
	for i := range scaled {
		scaled[i] /= mean
	}

	cells := make([]cell, n)
	small := make([]int32, 0, n)
	large := make([]int32, 0, n)
	for i := n - 1; i >= 0; i-- {
		if scaled[i] < 1 {
			small = append(small, int32(i))
		} else {
			large = append(large, int32(i))
		}
	}
	for len(small) > 0 && len(large) > 0 {
		i := small[len(small)-1]
		small = small[:len(small)-1]
		j := large[len(large)-1]
		cells[i] = cell{threshold: uint32(scaled[i] * math.MaxUint32), alias: j}
		scaled[j] -= 1 - scaled[i]
		if scaled[j] < 1 {
			large = large[:len(large)-1]
			small = append(small, j)
		}
	}
	for _, i := range small {
		cells[i] = cell{threshold: math.MaxUint32, alias: i}
	}
	for _, i := range large {
		cells[i] = cell{threshold: math.MaxUint32, alias: i}
	}

	t.items = items
	t.cells = cells
	return nil
}

// Next samples one item with one raw draw: the low 32 bits select a
// column by scaled multiply, the high 32 bits arbitrate between the
// column's own item and its alias.
func (t *Table[T]) Next() (T, error) {
	n := len(t.cells)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	u := t.src.Uint64()
	col := int(uint64(uint32(u)) * uint64(n) >> 32)
	c := t.cells[col]
	if uint32(u>>32) < c.threshold {
		return t.items[col], nil
	}
	return t.items[c.alias], nil
}
