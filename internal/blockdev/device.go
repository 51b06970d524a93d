// Package blockdev reads fixed-size blocks from a raw filesystem image.
// It knows nothing about FAT; it only maps a block index to a byte range
// of the backing reader.
package blockdev

import (
	"errors"
	"fmt"
	"io"
)

// BlockSize is the only block size this tool supports. FAT12 media of the
// kind we inspect (SD cards, floppy images) use 512-byte sectors, and the
// boot sector is validated against this constant at mount time.
const BlockSize = 512

// ErrIO reports a failed seek or read against the backing image. There is
// no retry; a single failed attempt fails the calling operation.
var ErrIO = errors.New("block device I/O failed")

// Device reads whole blocks from an image at a fixed base byte offset.
// The base is non-zero when the FAT12 volume lives inside a partition of a
// larger image.
type Device struct {
	r    io.ReadSeeker
	base int64
}

// New returns a Device reading blocks from the start of r.
func New(r io.ReadSeeker) *Device {
	return NewAt(r, 0)
}

// NewAt returns a Device whose block 0 begins base bytes into r.
func NewAt(r io.ReadSeeker, base int64) *Device {
	return &Device{r: r, base: base}
}

// ReadBlock reads the block at the given index and returns exactly
// BlockSize bytes. Every call re-seeks; the reader's position is not
// assumed stable between calls. Short reads are reported as ErrIO.
func (d *Device) ReadBlock(index int64) ([]byte, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: negative block index %d", ErrIO, index)
	}

	if _, err := d.r.Seek(d.base+index*BlockSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek to block %d: %v", ErrIO, index, err)
	}

	buf := make([]byte, BlockSize)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, fmt.Errorf("%w: read block %d: %v", ErrIO, index, err)
	}

	return buf, nil
}
