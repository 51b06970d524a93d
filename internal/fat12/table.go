package fat12

import "encoding/binary"

// Special allocation table values. Anything in [eocFirst, eocLast] ends a
// chain; the reserved values just below that range are not given separate
// treatment here.
const (
	freeCluster = 0x000
	eocFirst    = 0xFF8
	eocLast     = 0xFFF
)

// firstDataCluster is the lowest valid cluster index. Entries 0 and 1 of
// the table are reserved by the format.
const firstDataCluster = 2

// AllocationTable is the packed 12-bit chain pointer table, decoded on
// demand from the raw bytes loaded at mount. It is immutable after load.
type AllocationTable struct {
	raw     []byte
	entries int
}

// newAllocationTable wraps raw table bytes covering at least entries
// 12-bit values.
func newAllocationTable(raw []byte, entries int) *AllocationTable {
	return &AllocationTable{raw: raw, entries: entries}
}

// Len is the number of entries the table holds.
func (t *AllocationTable) Len() int {
	return t.entries
}

// InRange reports whether index can be passed to Entry.
func (t *AllocationTable) InRange(index int) bool {
	return index >= 0 && index < t.entries
}

// Entry decodes the 12-bit value at the given cluster index. Every 3
// consecutive bytes hold 2 consecutive entries:
//
//	bytes:   00000000 11111111 22222222
//	entries: aaaaaaaa bbbbaaaa bbbbbbbb
//
// so the even entry is the 16-bit word at offset index*3/2 masked to 12
// bits, and the odd entry is the same word shifted right 4 first. The
// index must be in range; bounding is the caller's job.
func (t *AllocationTable) Entry(index int) uint16 {
	i := index * 3 / 2
	v := binary.LittleEndian.Uint16(t.raw[i : i+2])
	if index&1 == 1 {
		v >>= 4
	}
	return v & 0xFFF
}

// IsEndOfChain reports whether a table value terminates a chain.
func IsEndOfChain(v uint16) bool {
	return v >= eocFirst && v <= eocLast
}

// IsFree reports whether a table value marks an unallocated cluster.
func IsFree(v uint16) bool {
	return v == freeCluster
}
