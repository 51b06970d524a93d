package fat12

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/blockdev"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/logger"
)

var log = logger.Logger()

// Session is a mounted FAT12 volume. Mount loads the allocation table and
// root directory eagerly; after that every operation works against
// immutable in-memory state plus direct block reads for file data.
// A Session owns its image handle until Unmount.
type Session struct {
	id   uuid.UUID
	path string
	file afero.File
	dev  *blockdev.Device

	geo     Geometry
	table   *AllocationTable
	rootDir *RootDirectory
}

// Mount opens the image at path within fsys and materializes the session.
// baseOffset is the byte offset of the FAT12 volume inside the image, zero
// for a bare volume. On any failure the handle and every partially loaded
// buffer are released together; no partial session escapes.
func Mount(fsys afero.Fs, path string, baseOffset int64) (*Session, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	s := &Session{
		id:   uuid.New(),
		path: path,
		file: file,
		dev:  blockdev.NewAt(file, baseOffset),
	}

	if err := s.load(); err != nil {
		s.Unmount()
		return nil, err
	}

	log.Debugf("mounted %s session=%s clusters=%d rootdir=%d entries",
		path, s.id, s.geo.ClusterCount, s.geo.RootDirEntries)

	return s, nil
}

// load parses the boot sector and reads the whole allocation table and
// root directory region into owned buffers.
func (s *Session) load() error {
	boot, err := s.dev.ReadBlock(bootBlock)
	if err != nil {
		return fmt.Errorf("read boot sector: %w", err)
	}

	s.geo, err = parseBootSector(boot)
	if err != nil {
		return err
	}

	tableRaw := make([]byte, 0, s.geo.TableBlocks*blockdev.BlockSize)
	for i := int64(0); i < s.geo.TableBlocks; i++ {
		block, err := s.dev.ReadBlock(s.geo.TableBlock + i)
		if err != nil {
			return fmt.Errorf("read allocation table block %d: %w", i, err)
		}
		tableRaw = append(tableRaw, block...)
	}
	s.table = newAllocationTable(tableRaw, s.geo.TableEntries)

	dirBlocks := int64(s.geo.RootDirEntries+dirEntriesPerBlock-1) / dirEntriesPerBlock
	dirRaw := make([]byte, 0, dirBlocks*blockdev.BlockSize)
	for i := int64(0); i < dirBlocks; i++ {
		block, err := s.dev.ReadBlock(s.geo.RootDirBlock + i)
		if err != nil {
			return fmt.Errorf("read root directory block %d: %w", i, err)
		}
		dirRaw = append(dirRaw, block...)
	}
	s.rootDir = newRootDirectory(dirRaw, s.geo.RootDirEntries)

	return nil
}

// Unmount releases the image handle and the loaded buffers. It is safe to
// call more than once and on a session whose mount failed partway.
func (s *Session) Unmount() error {
	var err error
	if s.file != nil {
		err = s.file.Close()
		s.file = nil
		log.Debugf("unmounted %s session=%s", s.path, s.id)
	}
	s.dev = nil
	s.table = nil
	s.rootDir = nil
	return err
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Path is the image path given to Mount.
func (s *Session) Path() string {
	return s.path
}

// Geometry returns the volume layout derived at mount.
func (s *Session) Geometry() Geometry {
	return s.geo
}

// TableEntry returns the allocation table value for a cluster index.
// Repeated calls with the same index always agree; the table is immutable
// for the life of the session.
func (s *Session) TableEntry(index int) (uint16, error) {
	if !s.table.InRange(index) {
		return 0, fmt.Errorf("cluster index %d out of range [0, %d)", index, s.table.Len())
	}
	return s.table.Entry(index), nil
}

// TableLen is the number of allocation table entries held in memory.
func (s *Session) TableLen() int {
	return s.table.Len()
}

// FindFile looks up a file by name in the root directory and returns its
// slot index.
func (s *Session) FindFile(name string) (int, bool) {
	return s.rootDir.FindByName(name)
}

// DirEntry returns the root directory record at the given slot.
func (s *Session) DirEntry(index int) (DirEntry, bool) {
	return s.rootDir.Entry(index)
}

// DirLen is the root directory capacity in records.
func (s *Session) DirLen() int {
	return s.rootDir.Len()
}

// ReadCluster reads the data block of the given cluster. Cluster numbering
// starts at 2, so cluster n lives at physical block FirstDataBlock + n - 2.
func (s *Session) ReadCluster(cluster int) ([]byte, error) {
	if cluster < firstDataCluster || cluster >= s.geo.ClusterCount {
		return nil, fmt.Errorf("cluster %d out of range [%d, %d)",
			cluster, firstDataCluster, s.geo.ClusterCount)
	}
	return s.dev.ReadBlock(s.geo.FirstDataBlock + int64(cluster) - firstDataCluster)
}
