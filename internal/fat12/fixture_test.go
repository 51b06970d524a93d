package fat12

import "encoding/binary"

// Layout of the boot sector built by buildBootSector, matching the shared
// fixture image in the fat12test package: 1 reserved block, 2 table
// copies of 2 blocks each, a 32-entry root directory, 64 blocks total.
const (
	fxTotalBlocks    = 64
	fxTableBlock     = 1
	fxTableBlocks    = 2
	fxTableCopies    = 2
	fxRootDirBlock   = 5
	fxRootDirEntries = 32
	fxFirstDataBlock = 7
	fxClusterCount   = 59
)

func le16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func le32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// buildBootSector returns a valid boot sector, optionally altered by mod
// before returning.
func buildBootSector(mod func(b []byte)) []byte {
	b := make([]byte, 512)
	b[0], b[2] = 0xEB, 0x90 // jump instruction, ignored by the parser
	copy(b[3:11], "FIXTURE ")
	le16(b[11:13], 512) // bytes per sector
	b[13] = 1           // sectors per cluster
	le16(b[14:16], fxTableBlock)
	b[16] = fxTableCopies
	le16(b[17:19], fxRootDirEntries)
	le16(b[19:21], fxTotalBlocks)
	le16(b[22:24], fxTableBlocks)
	if mod != nil {
		mod(b)
	}
	return b
}

// setTableEntry packs a 12-bit value into a raw table buffer.
func setTableEntry(fat []byte, index int, v uint16) {
	i := index * 3 / 2
	if index&1 == 0 {
		fat[i] = byte(v)
		fat[i+1] = fat[i+1]&0xF0 | byte(v>>8)
	} else {
		fat[i] = fat[i]&0x0F | byte(v<<4)
		fat[i+1] = byte(v >> 4)
	}
}

// dirRecord encodes one 32-byte root directory record.
func dirRecord(name, ext string, attr byte, firstCluster uint16, size uint32) []byte {
	b := make([]byte, dirEntrySize)
	for i := range b[:11] {
		b[i] = ' '
	}
	copy(b[0:8], name)
	copy(b[8:11], ext)
	b[11] = attr
	le16(b[26:28], firstCluster)
	le32(b[28:32], size)
	return b
}
