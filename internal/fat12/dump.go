package fat12

import (
	"fmt"
	"io"
)

// Base selects the numeric base for diagnostic output.
type Base int

// Supported display bases.
const (
	BaseHex Base = 16
	BaseDec Base = 10
)

// ParseBase maps a CLI flag value onto a Base.
func ParseBase(s string) (Base, error) {
	switch s {
	case "hex", "x", "16":
		return BaseHex, nil
	case "dec", "d", "10":
		return BaseDec, nil
	default:
		return 0, fmt.Errorf("unsupported display base %q (supported: hex, dec)", s)
	}
}

func (b Base) formatIndex(i int) string {
	if b == BaseHex {
		return fmt.Sprintf("%04x", i)
	}
	return fmt.Sprintf("%04d", i)
}

func (b Base) formatValue(v uint16) string {
	if b == BaseHex {
		return fmt.Sprintf("%03x", v)
	}
	return fmt.Sprintf("%4d", v)
}

// DumpTable writes the allocation table to w: first only the allocated
// entries, eight per row with end-of-chain values labelled EOF, then the
// full table sixteen entries per row.
func (s *Session) DumpTable(w io.Writer, base Base) {
	fmt.Fprintln(w, "FAT table dump FORMATTED:")
	printed := 0
	for i := 0; i < s.table.Len(); i++ {
		v := s.table.Entry(i)
		if IsFree(v) {
			continue
		}
		if IsEndOfChain(v) {
			fmt.Fprintf(w, "|%s: EOF|", base.formatIndex(i))
		} else {
			fmt.Fprintf(w, "|%s:%s|", base.formatIndex(i), base.formatValue(v))
		}
		printed++
		if printed%8 == 0 {
			fmt.Fprintln(w)
		}
	}
	if printed%8 != 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "FAT table dump UNFORMATTED:")
	for i := 0; i < s.table.Len(); i++ {
		if i%16 == 0 {
			fmt.Fprintf(w, "%s : ", base.formatIndex(i))
		}
		fmt.Fprintf(w, " %s", base.formatValue(s.table.Entry(i)))
		if i%16 == 15 {
			fmt.Fprintln(w)
		}
	}
	if s.table.Len()%16 != 0 {
		fmt.Fprintln(w)
	}
}

// DumpRootDir writes the occupied root directory slots to w, labelling
// each as a deleted entry, a volume label, or a file.
func (s *Session) DumpRootDir(w io.Writer, base Base) {
	fmt.Fprintln(w, "Root directory dump:")
	for i := 0; i < s.rootDir.Len(); i++ {
		e, _ := s.rootDir.Entry(i)
		if e.IsEmpty() {
			continue
		}

		switch {
		case e.IsDeleted():
			fmt.Fprintf(w, "%d : DEL  ", i)
		case e.IsVolumeLabel():
			fmt.Fprintf(w, "%d : VOL  ", i)
		default:
			fmt.Fprintf(w, "%d : FILE ", i)
		}

		if base == BaseHex {
			fmt.Fprintf(w, "[%-8s.%-3s] (%x bytes, start %d)\n",
				e.BaseName(), e.Extension(), e.Size, e.FirstCluster)
		} else {
			fmt.Fprintf(w, "[%-8s.%-3s] (%d bytes, start %d)\n",
				e.BaseName(), e.Extension(), e.Size, e.FirstCluster)
		}
	}
}
