package dict

import (
	"iter"
	"log/slog"
)

// Table is a hash table mapping string keys to values of type V.
//
// Cells live in a single slice and collisions are resolved with linear
// probing. Removed entries leave tombstones behind so that probe chains
// running through them stay intact; tombstones are discarded whenever the
// table is rehashed.
//
// A Table is not safe for concurrent use.
type Table[V any] struct {
	cells      []Cell[V]
	length     int
	tombstones int
	hash       func(string) uint64
	logger     *slog.Logger
}

// New creates an empty table. Without options it starts with MinCapacity
// cells.
func New[V any](opts ...Option) *Table[V] {
	o := buildOptions(opts)
	return &Table[V]{
		cells:  make([]Cell[V], o.capacity),
		hash:   Hash,
		logger: o.logger,
	}
}

// Len returns the number of live entries.
func (t *Table[V]) Len() int {
	return t.length
}

// Cap returns the number of cells in the backing array.
func (t *Table[V]) Cap() int {
	return len(t.cells)
}

// Tombstones returns the number of cells left behind by removals since the
// last rehash.
func (t *Table[V]) Tombstones() int {
	return t.tombstones
}

// Insert adds key with value, or replaces the value if key is already
// present. It grows the table before placing the entry once three quarters
// of the cells are live.
func (t *Table[V]) Insert(key string, value V) {
	capacity := len(t.cells)
	if t.length >= 3*capacity/4 {
		t.resize(2 * capacity)
	} else if t.length+t.tombstones >= 3*capacity/4 {
		// Too few empty cells left to end probes quickly.
		t.resize(capacity)
	}

	hash := t.hash(key)
	n := uint64(len(t.cells))
	start := hash % n
	slot := -1

probe:
	for i := uint64(0); i < n; i++ {
		idx := int((start + i) % n)
		c := &t.cells[idx]

		switch c.State {
		case Empty:
			if slot < 0 {
				slot = idx
			}
			break probe
		case Tombstone:
			if slot < 0 {
				slot = idx
			}
		case Occupied:
			if c.Hash == hash && c.Key == key {
				c.Value = value
				return
			}
		}
	}

	// The load checks above leave at least one empty cell, so slot is set.
	c := &t.cells[slot]
	if c.State == Tombstone {
		t.tombstones--
	}
	*c = Cell[V]{State: Occupied, Hash: hash, Key: key, Value: value}
	t.length++
}

// Get returns the value stored for key, or the zero value of V if key is
// not present. Use Lookup to tell the two apart.
func (t *Table[V]) Get(key string) V {
	v, _ := t.Lookup(key)
	return v
}

// Lookup returns the value stored for key and whether it was found.
func (t *Table[V]) Lookup(key string) (V, bool) {
	if idx := t.find(key, t.hash(key)); idx >= 0 {
		return t.cells[idx].Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Remove deletes key and reports whether it was present. The table shrinks
// by half once no more than an eighth of its cells are live, but never below
// MinCapacity.
func (t *Table[V]) Remove(key string) bool {
	idx := t.find(key, t.hash(key))
	if idx < 0 {
		return false
	}

	t.cells[idx] = Cell[V]{State: Tombstone, Hash: t.cells[idx].Hash}
	t.length--
	t.tombstones++

	if capacity := len(t.cells); t.length <= capacity/8 && capacity > MinCapacity {
		t.resize(max(capacity/2, MinCapacity))
	}
	return true
}

// Cells iterates over every cell of the backing array in index order,
// including empty cells and tombstones. It is meant for diagnostics; the
// table must not be modified during iteration.
func (t *Table[V]) Cells() iter.Seq2[int, Cell[V]] {
	return func(yield func(int, Cell[V]) bool) {
		for i, c := range t.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// All iterates over the live entries in index order. The table must not be
// modified during iteration.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, c := range t.cells {
			if c.State != Occupied {
				continue
			}
			if !yield(c.Key, c.Value) {
				return
			}
		}
	}
}

// find returns the index of the occupied cell holding key, or -1.
func (t *Table[V]) find(key string, hash uint64) int {
	n := uint64(len(t.cells))
	start := hash % n

	for i := uint64(0); i < n; i++ {
		idx := (start + i) % n
		c := &t.cells[idx]

		switch c.State {
		case Empty:
			return -1
		case Occupied:
			if c.Hash == hash && c.Key == key {
				return int(idx)
			}
		}
	}
	return -1
}

// resize moves every live entry into a fresh array of the given capacity,
// dropping tombstones.
func (t *Table[V]) resize(capacity int) {
	cells := make([]Cell[V], capacity)
	n := uint64(capacity)

	for i := range t.cells {
		c := &t.cells[i]
		if c.State != Occupied {
			continue
		}
		idx := c.Hash % n
		for cells[idx].State != Empty {
			idx = (idx + 1) % n
		}
		cells[idx] = *c
	}

	t.logger.Debug("dict: resize",
		"from", len(t.cells),
		"to", capacity,
		"len", t.length,
		"tombstones", t.tombstones)

	t.cells = cells
	t.tombstones = 0
}
