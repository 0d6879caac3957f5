/*
Package dict provides an in-memory hash table keyed by strings.

Table is a generic open-addressing hash table. All entries live in one flat
slice of cells and collisions are resolved by scanning forward from the
ideal slot. It is a small, predictable container whose memory layout can be
inspected cell by cell.

Basic usage:

	import "github.com/theflywheel/dict"

	// Create a table of int values with the default capacity
	t := dict.New[int]()

	// Insert data
	t.Insert("cat", 7)
	t.Insert("dog", 3)

	// Retrieve data
	fmt.Println(t.Get("cat")) // 7
	fmt.Println(t.Get("cow")) // 0, absent keys yield the zero value

	if v, ok := t.Lookup("dog"); ok {
		fmt.Println("Value:", v)
	}

	// Delete data
	t.Remove("cat")

Features:

  - Generic values, string keys
  - Open addressing with linear probing for collision resolution
  - Grows to twice its capacity when three quarters of the cells are live
  - Shrinks to half its capacity when an eighth or less of the cells are live
  - Tombstone deletion that keeps probe chains intact
  - Cell-level inspection through Table.Cells
  - Resize events reported to a log/slog logger at debug level

Implementation Details:

Every cell is empty, occupied, or a tombstone. Lookups start at
Hash(key) mod capacity and walk forward, wrapping at the end, until they find
an occupied cell with the same hash and key, or an empty cell. Tombstones
keep the hash of the removed entry and never end a walk. Inserts reuse the
first tombstone on the walk when the key is not already present.

Resizing allocates a new array and reinserts only the occupied cells, which
is the only time tombstones are cleared. When live entries and tombstones
together reach three quarters of the cells, the table is rehashed in place
at the same capacity.

The capacity is never below MinCapacity (8).

Concurrency:

A Table is not safe for concurrent use. Resizing rewrites the whole backing
array, so concurrent callers must guard every operation with a single
sync.Mutex.
*/
package dict
