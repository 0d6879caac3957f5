package dict

// CellState is the occupancy state of a single cell in a Table.
type CellState uint8

const (
	// Empty cells have never held an entry since the last resize. They end
	// every probe sequence.
	Empty CellState = iota
	// Occupied cells hold a live entry.
	Occupied
	// Tombstone cells held an entry that was removed. They keep its hash
	// and do not end a probe sequence.
	Tombstone
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Tombstone:
		return "tombstone"
	default:
		return "unknown"
	}
}

// Cell is a snapshot of one slot of the backing array, as returned by
// Table.Cells. Key and Value are only meaningful when State is Occupied.
type Cell[V any] struct {
	State CellState
	Hash  uint64
	Key   string
	Value V
}
