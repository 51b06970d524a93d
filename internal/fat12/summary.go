package fat12

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/blockdev"
)

// Summary is the inspection view of a mounted volume, shaped for text,
// JSON, and YAML rendering.
type Summary struct {
	File      string `json:"file" yaml:"file"`
	SessionID string `json:"sessionId" yaml:"sessionId"`

	SizeBytes  int64 `json:"sizeBytes" yaml:"sizeBytes"`
	SizeBlocks int   `json:"sizeBlocks" yaml:"sizeBlocks"`

	TableStartBlock int64 `json:"tableStartBlock" yaml:"tableStartBlock"`
	TableBlocks     int64 `json:"tableBlocks" yaml:"tableBlocks"`
	TableCopies     int   `json:"tableCopies" yaml:"tableCopies"`
	TableEntries    int   `json:"tableEntries" yaml:"tableEntries"`

	RootDirBlock   int64 `json:"rootDirBlock" yaml:"rootDirBlock"`
	RootDirEntries int   `json:"rootDirEntries" yaml:"rootDirEntries"`
	FirstDataBlock int64 `json:"firstDataBlock" yaml:"firstDataBlock"`

	FileCount    int `json:"fileCount" yaml:"fileCount"`
	DeletedCount int `json:"deletedCount" yaml:"deletedCount"`
	VolumeLabels int `json:"volumeLabels" yaml:"volumeLabels"`
}

// Summary builds the inspection summary for the session.
func (s *Session) Summary() *Summary {
	out := &Summary{
		File:      s.path,
		SessionID: s.id.String(),

		SizeBytes:  s.geo.DataBytes(),
		SizeBlocks: s.geo.ClusterCount,

		TableStartBlock: s.geo.TableBlock,
		TableBlocks:     s.geo.TableBlocks,
		TableCopies:     s.geo.TableCopies,
		TableEntries:    s.geo.TableEntries,

		RootDirBlock:   s.geo.RootDirBlock,
		RootDirEntries: s.geo.RootDirEntries,
		FirstDataBlock: s.geo.FirstDataBlock,
	}

	for i := 0; i < s.rootDir.Len(); i++ {
		e, _ := s.rootDir.Entry(i)
		switch {
		case e.IsEmpty():
		case e.IsDeleted():
			out.DeletedCount++
		case e.IsVolumeLabel():
			out.VolumeLabels++
		default:
			out.FileCount++
		}
	}

	return out
}

// PrintSummary writes a human-readable rendering of the summary to w.
func PrintSummary(w io.Writer, summary *Summary) {
	if summary == nil {
		log.Errorf("PrintSummary: summary is nil")
		return
	}

	fmt.Fprintln(w, "FAT12 Filesystem Summary")
	fmt.Fprintln(w, "========================")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Image:\t%s\n", summary.File)
	fmt.Fprintf(tw, "Size (bytes):\t0x%06x (%d) %dkB\n",
		summary.SizeBytes, summary.SizeBytes, summary.SizeBytes/1024)
	fmt.Fprintf(tw, "Size (blocks):\t0x%04x (%d)\n", summary.SizeBlocks, summary.SizeBlocks)
	fmt.Fprintf(tw, "FAT sectors:\t0x%04x (%d)\n", summary.TableBlocks, summary.TableBlocks)
	fmt.Fprintf(tw, "FAT copies:\t%d\n", summary.TableCopies)
	fmt.Fprintf(tw, "FAT entries:\t%d\n", summary.TableEntries)
	fmt.Fprintf(tw, "Root dir at:\t0x%04x (%d)\n", summary.RootDirBlock, summary.RootDirBlock)
	fmt.Fprintf(tw, "Root dir entries:\t%d\n", summary.RootDirEntries)
	fmt.Fprintf(tw, "Data block 0 at:\t0x%04x (%d)\n", summary.FirstDataBlock, summary.FirstDataBlock)
	fmt.Fprintf(tw, "Files:\t%d (deleted %d, volume labels %d)\n",
		summary.FileCount, summary.DeletedCount, summary.VolumeLabels)
	tw.Flush()
}

// BlockSize re-exports the fixed block size for presentation layers.
const BlockSize = blockdev.BlockSize
