// Package shell is the interactive command dispatcher. It owns no
// filesystem logic: every command maps onto one operation of a mounted
// fat12.Session and prints the result.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/logger"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/security"
)

var log = logger.Logger()

const prompt = "fat12> "

const helpText = `Commands:
  info                    show filesystem geometry
  fat                     dump the allocation table
  fatentry N              show the allocation table entry for cluster N
  dir                     dump the root directory
  find NAME               look NAME up in the root directory
  verify NAME             check NAME's allocation chain against its length
  read NAME OFFSET LEN    read LEN bytes of NAME starting at OFFSET
  block N                 dump the data block of cluster N
  help                    show this text
  quit                    unmount and exit
`

// Run reads commands from r and executes them against the session,
// writing results to w, until quit or end of input. Command errors are
// reported and the loop continues; only a read failure on r ends it
// abnormally.
func Run(r io.Reader, w io.Writer, s *fat12.Session, base fat12.Base) error {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd := strings.ToLower(fields[0])
		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			return nil
		}

		if err := dispatch(w, s, base, cmd, fields[1:]); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
}

func dispatch(w io.Writer, s *fat12.Session, base fat12.Base, cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		fmt.Fprint(w, helpText)
		return nil

	case "info":
		fat12.PrintSummary(w, s.Summary())
		return nil

	case "fat":
		s.DumpTable(w, base)
		return nil

	case "dir":
		s.DumpRootDir(w, base)
		return nil

	case "fatentry":
		index, err := oneIntArg(cmd, args)
		if err != nil {
			return err
		}
		v, err := s.TableEntry(index)
		if err != nil {
			return err
		}
		printEntry(w, base, index, v)
		return nil

	case "find":
		if len(args) != 1 {
			return fmt.Errorf("usage: find NAME")
		}
		if err := security.ValidateString("name", args[0], security.FileNameLimits()); err != nil {
			return err
		}
		index, found := s.FindFile(args[0])
		if !found {
			fmt.Fprintf(w, "%s: not found\n", args[0])
			return nil
		}
		e, _ := s.DirEntry(index)
		fmt.Fprintf(w, "%s: entry %d, %d bytes, first cluster %d\n",
			e.DisplayName(), index, e.Size, e.FirstCluster)
		return nil

	case "verify":
		if len(args) != 1 {
			return fmt.Errorf("usage: verify NAME")
		}
		if err := security.ValidateString("name", args[0], security.FileNameLimits()); err != nil {
			return err
		}
		result, err := s.VerifyFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", args[0], result)
		return nil

	case "read":
		if len(args) != 3 {
			return fmt.Errorf("usage: read NAME OFFSET LEN")
		}
		if err := security.ValidateString("name", args[0], security.FileNameLimits()); err != nil {
			return err
		}
		offset, err := parseInt(args[1])
		if err != nil {
			return fmt.Errorf("bad offset %q: %w", args[1], err)
		}
		length, err := parseInt(args[2])
		if err != nil {
			return fmt.Errorf("bad length %q: %w", args[2], err)
		}
		data, err := s.ReadRange(args[0], offset, length)
		if err != nil {
			return err
		}
		log.Debugf("read %d of %d requested bytes from %s", len(data), length, args[0])
		w.Write(data)
		fmt.Fprintf(w, "\n%d bytes read\n", len(data))
		return nil

	case "block":
		cluster, err := oneIntArg(cmd, args)
		if err != nil {
			return err
		}
		data, err := s.ReadCluster(cluster)
		if err != nil {
			return err
		}
		w.Write(data)
		fmt.Fprintln(w)
		return nil

	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func printEntry(w io.Writer, base fat12.Base, index int, v uint16) {
	switch {
	case fat12.IsEndOfChain(v):
		fmt.Fprintf(w, "entry %d: EOF\n", index)
	case fat12.IsFree(v):
		fmt.Fprintf(w, "entry %d: free\n", index)
	case base == fat12.BaseHex:
		fmt.Fprintf(w, "entry %d: 0x%03x\n", index, v)
	default:
		fmt.Fprintf(w, "entry %d: %d\n", index, v)
	}
}

func oneIntArg(cmd string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s N", cmd)
	}
	n, err := parseInt(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", args[0], err)
	}
	return int(n), nil
}

// parseInt accepts decimal and prefixed hex (0x...) input.
func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, ne.Err
		}
		return 0, err
	}
	return n, nil
}
