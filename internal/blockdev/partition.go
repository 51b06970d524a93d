package blockdev

import (
	"fmt"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

// PartitionOffset resolves the byte offset at which the given partition
// (1-based, in on-table order) starts inside the image at path. SD cards
// are often partitioned with a single FAT12 partition rather than being a
// bare volume; mounting such an image needs the partition's start as the
// device base offset.
func PartitionOffset(path string, index int) (int64, error) {
	if index < 1 {
		return 0, fmt.Errorf("partition index must be 1-based, got %d", index)
	}

	disk, err := diskfs.Open(path, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return 0, fmt.Errorf("open disk image: %w", err)
	}
	defer disk.Close()

	pt, err := disk.GetPartitionTable()
	if err != nil {
		return 0, fmt.Errorf("get partition table: %w", err)
	}

	sectorSize := disk.LogicalBlocksize
	if sectorSize <= 0 {
		sectorSize = BlockSize
	}

	switch t := pt.(type) {
	case *mbr.Table:
		if index > len(t.Partitions) {
			return 0, fmt.Errorf("partition %d not in MBR table (%d partitions)", index, len(t.Partitions))
		}
		p := t.Partitions[index-1]
		return int64(p.Start) * sectorSize, nil

	case *gpt.Table:
		if index > len(t.Partitions) {
			return 0, fmt.Errorf("partition %d not in GPT table (%d partitions)", index, len(t.Partitions))
		}
		p := t.Partitions[index-1]
		if p.Start == 0 && p.End == 0 {
			return 0, fmt.Errorf("partition %d is an empty GPT slot", index)
		}
		return int64(p.Start) * sectorSize, nil

	default:
		return 0, fmt.Errorf("unsupported partition table type: %T", t)
	}
}
