// Package fat12 interprets FAT12 volumes read-only: boot sector geometry,
// the packed 12-bit allocation table, the flat root directory, and file
// chain traversal. It is an inspection engine, not a filesystem driver;
// nothing is ever written back and everything is loaded eagerly at mount.
package fat12

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/blockdev"
)

const (
	// bootBlock is the physical index of the boot sector.
	bootBlock = 0

	// dirEntrySize is the on-disk size of one directory record.
	dirEntrySize = 32

	// dirEntriesPerBlock is how many directory records fit in one block.
	dirEntriesPerBlock = blockdev.BlockSize / dirEntrySize

	// maxRootDirEntries caps the root directory at a 25-block region.
	maxRootDirEntries = 25 * blockdev.BlockSize / dirEntrySize

	// maxDataClusters is the FAT12 ceiling. A volume with more data
	// clusters is FAT16 or FAT32.
	maxDataClusters = 4086
)

// Mount failure modes. Operations against a mounted session wrap
// blockdev.ErrIO for backing store failures and ErrFileNotFound for name
// lookup misses.
var (
	ErrGeometryMismatch = errors.New("unsupported filesystem geometry")
	ErrRootDirTooLarge  = errors.New("root directory exceeds supported maximum")
	ErrNotFAT12         = errors.New("not a FAT12 filesystem")
	ErrFileNotFound     = errors.New("file not found in root directory")
)

// Geometry is the volume layout derived from the boot sector. It is
// computed once at mount and never changes for the life of the session.
type Geometry struct {
	// TableBlock is the first block of the allocation table (the count
	// of reserved sectors before it).
	TableBlock int64
	// TableBlocks is the length of one table copy in blocks.
	TableBlocks int64
	// TableCopies is the number of table copies on disk. Only the first
	// copy is consulted.
	TableCopies int
	// TableEntries is the number of 12-bit entries held in memory,
	// clamped to the cluster count when the declared table is larger.
	TableEntries int
	// RootDirBlock is the first block of the root directory region.
	RootDirBlock int64
	// RootDirEntries is the declared root directory capacity in records.
	RootDirEntries int
	// FirstDataBlock is the physical block holding cluster 2, the first
	// data cluster.
	FirstDataBlock int64
	// ClusterCount is the number of data clusters plus the 2-cluster
	// numbering offset inherited from DOS: valid cluster indices are
	// [2, ClusterCount).
	ClusterCount int
}

// parseBootSector decodes the boot sector into a Geometry, validating that
// the volume is a FAT12 filesystem this tool can interpret. Fields are
// assembled explicitly from little-endian bytes at fixed offsets; the
// on-disk layout is never mapped onto an in-memory struct.
func parseBootSector(block []byte) (Geometry, error) {
	var g Geometry

	if len(block) < blockdev.BlockSize {
		return g, fmt.Errorf("%w: boot sector is %d bytes", ErrGeometryMismatch, len(block))
	}

	// All downstream arithmetic assumes 512-byte blocks mapped 1:1 onto
	// clusters; anything else fails the mount rather than miscompute.
	bytesPerSector := binary.LittleEndian.Uint16(block[11:13])
	sectorsPerCluster := block[13]
	if int(bytesPerSector) != blockdev.BlockSize || sectorsPerCluster != 1 {
		return g, fmt.Errorf("%w: %d bytes/sector, %d sectors/cluster (need %d and 1)",
			ErrGeometryMismatch, bytesPerSector, sectorsPerCluster, blockdev.BlockSize)
	}

	g.TableBlock = int64(binary.LittleEndian.Uint16(block[14:16]))
	g.TableBlocks = int64(binary.LittleEndian.Uint16(block[22:24]))
	g.TableCopies = int(block[16])

	// Two 12-bit entries per 3 bytes of table.
	g.TableEntries = int(g.TableBlocks) * blockdev.BlockSize * 2 / 3
	g.RootDirBlock = g.TableBlock + int64(g.TableCopies)*g.TableBlocks

	g.RootDirEntries = int(binary.LittleEndian.Uint16(block[17:19]))
	if g.RootDirEntries > maxRootDirEntries {
		return Geometry{}, fmt.Errorf("%w: %d entries declared, max %d",
			ErrRootDirTooLarge, g.RootDirEntries, maxRootDirEntries)
	}

	dirBytes := int64(g.RootDirEntries) * dirEntrySize
	g.FirstDataBlock = g.RootDirBlock + (dirBytes+blockdev.BlockSize-1)/blockdev.BlockSize

	// A zero 16-bit total means the size lives in the 32-bit field,
	// the DOS 5 convention for filesystems beyond 16-bit sector counts.
	totalSectors := int64(binary.LittleEndian.Uint16(block[19:21]))
	if totalSectors == 0 {
		totalSectors = int64(binary.LittleEndian.Uint32(block[32:36]))
	}

	dataClusters := totalSectors - g.FirstDataBlock
	if dataClusters <= 0 || dataClusters > maxDataClusters {
		return Geometry{}, fmt.Errorf("%w: %d data clusters (FAT12 holds at most %d)",
			ErrNotFAT12, dataClusters, maxDataClusters)
	}

	// Data clusters are numbered from 2, so the count carries the same
	// offset, and the in-memory table never extends past it.
	g.ClusterCount = int(dataClusters) + 2
	if g.ClusterCount < g.TableEntries {
		g.TableEntries = g.ClusterCount
	}

	return g, nil
}

// DataBytes is the addressable data size of the volume in bytes.
func (g Geometry) DataBytes() int64 {
	return int64(g.ClusterCount) * blockdev.BlockSize
}
