package fat12

import (
	"fmt"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/blockdev"
)

// VerifyResult is the outcome of checking a directory entry's allocation
// chain against its declared length.
type VerifyResult int

const (
	// VerifyValid means the chain covers exactly the declared length and
	// ends on an end-of-chain marker.
	VerifyValid VerifyResult = iota
	// VerifyBroken means the chain ended before the declared length was
	// exhausted, ran off the table, or the final entry is not an
	// end-of-chain marker.
	VerifyBroken
	// VerifyNotAFile means the entry is not a file record: an unused or
	// deleted slot, or a volume label.
	VerifyNotAFile
)

func (r VerifyResult) String() string {
	switch r {
	case VerifyValid:
		return "valid"
	case VerifyBroken:
		return "broken"
	case VerifyNotAFile:
		return "not a file"
	default:
		return fmt.Sprintf("VerifyResult(%d)", int(r))
	}
}

// VerifyEntry walks the chain of the root directory entry at the given
// slot. One block of the declared length is consumed per step; if length
// remains while the current chain value is already end-of-chain the chain
// is short, and once the length is exhausted the final cluster must point
// at an end-of-chain marker.
func (s *Session) VerifyEntry(index int) VerifyResult {
	e, ok := s.rootDir.Entry(index)
	if !ok || e.IsEmpty() || e.IsDeleted() || e.IsVolumeLabel() {
		return VerifyNotAFile
	}

	cur := int(e.FirstCluster)
	remaining := int64(e.Size)

	for remaining > 0 {
		remaining -= blockdev.BlockSize
		if remaining > 0 {
			if IsEndOfChain(uint16(cur)) {
				return VerifyBroken
			}
			if !s.table.InRange(cur) {
				return VerifyBroken
			}
			cur = int(s.table.Entry(cur))
		}
	}

	if !s.table.InRange(cur) {
		return VerifyBroken
	}
	if !IsEndOfChain(s.table.Entry(cur)) {
		return VerifyBroken
	}
	return VerifyValid
}

// VerifyFile verifies the chain of the named file.
func (s *Session) VerifyFile(name string) (VerifyResult, error) {
	index, ok := s.rootDir.FindByName(name)
	if !ok {
		return VerifyNotAFile, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return s.VerifyEntry(index), nil
}

// ReadRange reads up to maxBytes bytes of the named file starting at
// startOffset. Whole clusters before the start offset are skipped via the
// allocation table without loading their blocks, so any in-file offset
// works. The walk stops when the requested range is covered, the declared
// file length is exhausted, or the chain ends, whichever comes first; a
// chain that ends early yields the bytes copied so far.
func (s *Session) ReadRange(name string, startOffset, maxBytes int64) ([]byte, error) {
	index, ok := s.rootDir.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	e, _ := s.rootDir.Entry(index)

	fileSize := int64(e.Size)
	if startOffset < 0 || maxBytes <= 0 || startOffset >= fileSize {
		return []byte{}, nil
	}
	end := startOffset + maxBytes
	if end > fileSize {
		end = fileSize
	}

	out := make([]byte, 0, end-startOffset)
	cur := int(e.FirstCluster)

	skip := startOffset / blockdev.BlockSize
	for i := int64(0); i < skip; i++ {
		if IsEndOfChain(uint16(cur)) || !s.table.InRange(cur) {
			return out, nil
		}
		cur = int(s.table.Entry(cur))
	}

	for ordinal := skip; ; ordinal++ {
		blockStart := ordinal * blockdev.BlockSize
		if blockStart >= end {
			break
		}
		if IsEndOfChain(uint16(cur)) {
			break
		}

		block, err := s.ReadCluster(cur)
		if err != nil {
			return out, err
		}

		lo := blockStart
		if startOffset > lo {
			lo = startOffset
		}
		hi := blockStart + blockdev.BlockSize
		if hi > end {
			hi = end
		}
		out = append(out, block[lo-blockStart:hi-blockStart]...)

		if hi >= end {
			break
		}
		if !s.table.InRange(cur) {
			break
		}
		cur = int(s.table.Entry(cur))
	}

	return out, nil
}
