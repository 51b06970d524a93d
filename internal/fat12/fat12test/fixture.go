// Package fat12test builds small synthetic FAT12 images for tests.
package fat12test

import (
	"encoding/binary"

	"github.com/spf13/afero"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
)

// Fixture volume layout: 1 reserved block, 2 table copies of 2 blocks
// each, a 32-entry root directory (2 blocks), 64 blocks total. That puts
// the root directory at block 5, the first data cluster at block 7, and
// leaves 57 data clusters (cluster indices 2..58).
const (
	TotalBlocks    = 64
	TableBlock     = 1
	TableBlocks    = 2
	TableCopies    = 2
	RootDirBlock   = 5
	RootDirEntries = 32
	FirstDataBlock = 7
	ClusterCount   = 59
)

// Directory slots used by the fixture image.
const (
	SlotVolume  = 0 // volume label
	SlotLetters = 1 // LETTERS.TXT, exactly one block
	SlotDeleted = 2 // deleted twin of LETTERS.TXT
	SlotJabber  = 3 // JABBER.TXT, three clusters
	SlotBroken  = 4 // BROKEN.TXT, chain ends early
	SlotBadEnd  = 5 // BADEND.TXT, no EOF after declared length
	SlotNoExt   = 6 // NOEXT, empty extension
)

// Fixture file sizes.
const (
	LettersSize = 512
	JabberSize  = 1300
	BrokenSize  = 2000
	BadEndSize  = 512
	NoExtSize   = 10
)

const (
	blockSize    = 512
	dirEntrySize = 32
	name0Deleted = 0xE5
)

// Content generates deterministic file content so reads can be checked
// byte for byte at any offset.
func Content(seed byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7) + seed
	}
	return out
}

// PutLE16 writes v little-endian at the start of b.
func PutLE16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutLE32 writes v little-endian at the start of b.
func PutLE32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// BootSector returns a valid fixture boot sector, optionally altered by
// mod before returning.
func BootSector(mod func(b []byte)) []byte {
	b := make([]byte, blockSize)
	b[0], b[2] = 0xEB, 0x90 // jump instruction, ignored by the parser
	copy(b[3:11], "FIXTURE ")
	PutLE16(b[11:13], blockSize) // bytes per sector
	b[13] = 1                    // sectors per cluster
	PutLE16(b[14:16], TableBlock)
	b[16] = TableCopies
	PutLE16(b[17:19], RootDirEntries)
	PutLE16(b[19:21], TotalBlocks)
	PutLE16(b[22:24], TableBlocks)
	if mod != nil {
		mod(b)
	}
	return b
}

// SetTableEntry packs a 12-bit value into a raw allocation table buffer.
func SetTableEntry(fat []byte, index int, v uint16) {
	i := index * 3 / 2
	if index&1 == 0 {
		fat[i] = byte(v)
		fat[i+1] = fat[i+1]&0xF0 | byte(v>>8)
	} else {
		fat[i] = fat[i]&0x0F | byte(v<<4)
		fat[i+1] = byte(v >> 4)
	}
}

// DirRecord encodes one 32-byte root directory record.
func DirRecord(name, ext string, attr byte, firstCluster uint16, size uint32) []byte {
	b := make([]byte, dirEntrySize)
	for i := range b[:11] {
		b[i] = ' '
	}
	copy(b[0:8], name)
	copy(b[8:11], ext)
	b[11] = attr
	PutLE16(b[26:28], firstCluster)
	PutLE32(b[28:32], size)
	return b
}

// Image assembles the full fixture image.
func Image() []byte {
	img := make([]byte, TotalBlocks*blockSize)
	copy(img, BootSector(nil))

	// Allocation table: reserved entries, then the file chains.
	fat := make([]byte, TableBlocks*blockSize)
	SetTableEntry(fat, 0, 0xFF0)
	SetTableEntry(fat, 1, 0xFFF)
	SetTableEntry(fat, 2, 0xFFF) // LETTERS.TXT: single cluster
	SetTableEntry(fat, 3, 4)     // JABBER.TXT: 3 -> 4 -> 5 -> EOF
	SetTableEntry(fat, 4, 5)
	SetTableEntry(fat, 5, 0xFFF)
	SetTableEntry(fat, 6, 0xFFF) // BROKEN.TXT claims 2000 bytes but ends here
	SetTableEntry(fat, 7, 9)     // BADEND.TXT: full length but no EOF marker
	SetTableEntry(fat, 8, 0xFF8) // NOEXT: low end of the EOF range
	for copyIdx := 0; copyIdx < TableCopies; copyIdx++ {
		copy(img[(TableBlock+copyIdx*TableBlocks)*blockSize:], fat)
	}

	// Root directory.
	dir := img[RootDirBlock*blockSize:]
	copy(dir[SlotVolume*dirEntrySize:], DirRecord("SDCARD", "", fat12.AttrVolumeLabel, 0, 0))
	copy(dir[SlotLetters*dirEntrySize:], DirRecord("LETTERS", "TXT", fat12.AttrArchive, 2, LettersSize))
	deleted := DirRecord("LETTERS", "TXT", fat12.AttrArchive, 2, LettersSize)
	deleted[0] = name0Deleted
	copy(dir[SlotDeleted*dirEntrySize:], deleted)
	copy(dir[SlotJabber*dirEntrySize:], DirRecord("JABBER", "TXT", fat12.AttrArchive, 3, JabberSize))
	copy(dir[SlotBroken*dirEntrySize:], DirRecord("BROKEN", "TXT", fat12.AttrArchive, 6, BrokenSize))
	copy(dir[SlotBadEnd*dirEntrySize:], DirRecord("BADEND", "TXT", fat12.AttrArchive, 7, BadEndSize))
	copy(dir[SlotNoExt*dirEntrySize:], DirRecord("NOEXT", "", fat12.AttrRegular, 8, NoExtSize))

	// Data clusters. Cluster n lives at block FirstDataBlock + n - 2.
	writeCluster := func(cluster int, data []byte) {
		copy(img[(FirstDataBlock+cluster-2)*blockSize:], data)
	}
	writeCluster(2, Content(1, LettersSize))
	jabber := Content(3, JabberSize)
	writeCluster(3, jabber[0:512])
	writeCluster(4, jabber[512:1024])
	writeCluster(5, jabber[1024:])
	writeCluster(6, Content(6, 512))
	writeCluster(7, Content(7, 512))
	writeCluster(8, Content(8, 512))

	return img
}

// WriteImage places image bytes into a fresh in-memory filesystem under
// the given name.
func WriteImage(name string, img []byte) (afero.Fs, error) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, name, img, 0o644); err != nil {
		return nil, err
	}
	return fs, nil
}

// Mount mounts the standard fixture image from a memory filesystem.
func Mount() (*fat12.Session, error) {
	fs, err := WriteImage("fixture.img", Image())
	if err != nil {
		return nil, err
	}
	return fat12.Mount(fs, "fixture.img", 0)
}
