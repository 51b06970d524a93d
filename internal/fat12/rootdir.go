package fat12

import (
	"encoding/binary"
	"strings"
)

// Attribute bits of a directory record.
const (
	AttrRegular     = 0x00
	AttrReadOnly    = 0x01
	AttrHidden      = 0x02
	AttrSystem      = 0x04
	AttrVolumeLabel = 0x08
	AttrDirectory   = 0x10
	AttrArchive     = 0x20
	// AttrLongName marks a VFAT long filename slot. Long names are not
	// interpreted; the volume-label bit inside this value makes such
	// slots skip like labels during lookup.
	AttrLongName = 0x0F
)

// Sentinel states of the first name byte.
const (
	name0Empty   = 0x00 // slot never used, and none following are either
	name0Deleted = 0xE5 // slot deleted, reusable
	name0E5      = 0x05 // first name byte is literally 0xE5
)

// DirEntry is one fixed-width record of the root directory. Timestamp and
// reserved fields present on disk are not modeled.
type DirEntry struct {
	// Name is the space-padded base name, not null-terminated.
	Name [8]byte
	// Ext is the space-padded extension, stored apart from the name.
	Ext [3]byte
	// Attr is the attribute byte.
	Attr byte
	// FirstCluster is the index of the file's first data cluster.
	FirstCluster uint16
	// Size is the file length in bytes.
	Size uint32
}

// decodeDirEntry assembles a DirEntry from one 32-byte on-disk record.
func decodeDirEntry(b []byte) DirEntry {
	var e DirEntry
	copy(e.Name[:], b[0:8])
	copy(e.Ext[:], b[8:11])
	e.Attr = b[11]
	e.FirstCluster = binary.LittleEndian.Uint16(b[26:28])
	e.Size = binary.LittleEndian.Uint32(b[28:32])
	return e
}

// IsEmpty reports a never-used slot.
func (e DirEntry) IsEmpty() bool { return e.Name[0] == name0Empty }

// IsDeleted reports a deleted, reusable slot.
func (e DirEntry) IsDeleted() bool { return e.Name[0] == name0Deleted }

// IsVolumeLabel reports whether the record is a volume label (or a long
// filename slot, which carries the same bit).
func (e DirEntry) IsVolumeLabel() bool { return e.Attr&AttrVolumeLabel != 0 }

// IsDir reports whether the record is a subdirectory. This format keeps
// everything in the root, but the bit can still appear on disk.
func (e DirEntry) IsDir() bool { return e.Attr&AttrDirectory != 0 }

// BaseName is the stored base name with padding trimmed and the 0x05
// escape for a literal leading 0xE5 undone.
func (e DirEntry) BaseName() string {
	name := e.Name
	if name[0] == name0E5 {
		name[0] = 0xE5
	}
	return strings.TrimRight(strings.TrimRight(string(name[:]), "\x00"), " ")
}

// Extension is the stored extension with padding trimmed.
func (e DirEntry) Extension() string {
	return strings.TrimRight(strings.TrimRight(string(e.Ext[:]), "\x00"), " ")
}

// DisplayName joins base name and extension the way a DOS listing would.
func (e DirEntry) DisplayName() string {
	ext := e.Extension()
	if ext == "" {
		return e.BaseName()
	}
	return e.BaseName() + "." + ext
}

// RootDirectory is the fixed-capacity flat record array loaded once at
// mount. Slots are never rewritten during a session.
type RootDirectory struct {
	entries []DirEntry
}

// newRootDirectory decodes capacity records from raw directory blocks.
func newRootDirectory(raw []byte, capacity int) *RootDirectory {
	entries := make([]DirEntry, capacity)
	for i := 0; i < capacity; i++ {
		entries[i] = decodeDirEntry(raw[i*dirEntrySize : (i+1)*dirEntrySize])
	}
	return &RootDirectory{entries: entries}
}

// Len is the directory capacity in records, used and unused.
func (d *RootDirectory) Len() int {
	return len(d.entries)
}

// Entry returns the record at the given slot.
func (d *RootDirectory) Entry(index int) (DirEntry, bool) {
	if index < 0 || index >= len(d.entries) {
		return DirEntry{}, false
	}
	return d.entries[index], true
}

// splitName divides a query filename into base and extension at the last
// dot. A name with no dot has an empty extension.
func splitName(name string) (base, ext string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// FindByName returns the first slot whose record matches name, in
// directory order. The comparison is case-insensitive and exact-length on
// both the base name and the extension. Never-used and deleted slots are
// skipped, as are volume labels and long filename slots.
func (d *RootDirectory) FindByName(name string) (int, bool) {
	base, ext := splitName(name)
	base = strings.ToUpper(base)
	ext = strings.ToUpper(ext)

	for i, e := range d.entries {
		if e.IsEmpty() || e.IsDeleted() || e.IsVolumeLabel() {
			continue
		}
		if strings.ToUpper(e.BaseName()) != base {
			continue
		}
		if strings.ToUpper(e.Extension()) != ext {
			continue
		}
		return i, true
	}

	return 0, false
}
