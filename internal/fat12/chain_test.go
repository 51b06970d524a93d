package fat12_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12/fat12test"
)

func TestVerifyEntry(t *testing.T) {
	s := mountFixture(t)

	tests := []struct {
		name string
		slot int
		want fat12.VerifyResult
	}{
		{"single block file", fat12test.SlotLetters, fat12.VerifyValid},
		{"multi cluster file", fat12test.SlotJabber, fat12.VerifyValid},
		{"low end of EOF range", fat12test.SlotNoExt, fat12.VerifyValid},
		{"chain ends before declared length", fat12test.SlotBroken, fat12.VerifyBroken},
		{"no EOF marker after declared length", fat12test.SlotBadEnd, fat12.VerifyBroken},
		{"volume label", fat12test.SlotVolume, fat12.VerifyNotAFile},
		{"deleted entry", fat12test.SlotDeleted, fat12.VerifyNotAFile},
		{"never used slot", fat12test.RootDirEntries - 1, fat12.VerifyNotAFile},
		{"slot out of range", fat12test.RootDirEntries, fat12.VerifyNotAFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.VerifyEntry(tt.slot); got != tt.want {
				t.Fatalf("VerifyEntry(%d) = %v, want %v", tt.slot, got, tt.want)
			}
		})
	}
}

func TestVerifyFile(t *testing.T) {
	s := mountFixture(t)

	got, err := s.VerifyFile("JABBER.TXT")
	if err != nil || got != fat12.VerifyValid {
		t.Fatalf("VerifyFile(JABBER.TXT) = (%v, %v), want (valid, nil)", got, err)
	}

	if _, err := s.VerifyFile("ghost.txt"); !errors.Is(err, fat12.ErrFileNotFound) {
		t.Fatalf("VerifyFile(ghost.txt) err = %v, want ErrFileNotFound", err)
	}
}

func TestReadRangeWholeSingleBlockFile(t *testing.T) {
	s := mountFixture(t)

	got, err := s.ReadRange("letters.txt", 0, fat12.BlockSize)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	if len(got) != fat12.BlockSize {
		t.Fatalf("read %d bytes, want %d", len(got), fat12.BlockSize)
	}
	if !bytes.Equal(got, fat12test.Content(1, fat12test.LettersSize)) {
		t.Error("content mismatch against fixture data block")
	}
}

func TestReadRangeWholeMultiClusterFile(t *testing.T) {
	s := mountFixture(t)

	got, err := s.ReadRange("jabber.txt", 0, fat12test.JabberSize)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	if !bytes.Equal(got, fat12test.Content(3, fat12test.JabberSize)) {
		t.Errorf("read %d bytes with content mismatch", len(got))
	}
}

func TestReadRangeMidFileOffset(t *testing.T) {
	s := mountFixture(t)

	// Starts inside the third cluster; the first two are skipped without
	// being loaded.
	got, err := s.ReadRange("jabber.txt", 1030, 100)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	want := fat12test.Content(3, fat12test.JabberSize)[1030:1130]
	if !bytes.Equal(got, want) {
		t.Error("mid-file read content mismatch")
	}
}

func TestReadRangeSpansClusterBoundary(t *testing.T) {
	s := mountFixture(t)

	got, err := s.ReadRange("jabber.txt", 500, 50)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	want := fat12test.Content(3, fat12test.JabberSize)[500:550]
	if !bytes.Equal(got, want) {
		t.Error("boundary-spanning read content mismatch")
	}
}

func TestReadRangeClampsToFileLength(t *testing.T) {
	s := mountFixture(t)

	got, err := s.ReadRange("jabber.txt", 1200, 10_000)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	want := fat12test.Content(3, fat12test.JabberSize)[1200:]
	if !bytes.Equal(got, want) {
		t.Errorf("tail read = %d bytes, want %d", len(got), len(want))
	}
}

func TestReadRangeDegenerateRequests(t *testing.T) {
	s := mountFixture(t)

	tests := []struct {
		name      string
		offset, n int64
	}{
		{"offset at end", fat12test.JabberSize, 10},
		{"offset past end", fat12test.JabberSize + 100, 10},
		{"zero length", 0, 0},
		{"negative length", 0, -5},
		{"negative offset", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ReadRange("jabber.txt", tt.offset, tt.n)
			if err != nil {
				t.Fatalf("ReadRange: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("read %d bytes, want 0", len(got))
			}
		})
	}
}

func TestReadRangeUnknownFile(t *testing.T) {
	s := mountFixture(t)

	if _, err := s.ReadRange("ghost.txt", 0, 10); !errors.Is(err, fat12.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestReadRangeStopsAtBrokenChain(t *testing.T) {
	s := mountFixture(t)

	// BROKEN.TXT declares 2000 bytes but its chain holds one cluster.
	got, err := s.ReadRange("broken.txt", 0, 2000)
	if err != nil {
		t.Fatalf("ReadRange: %v", err)
	}
	if len(got) != fat12.BlockSize {
		t.Fatalf("read %d bytes from truncated chain, want %d", len(got), fat12.BlockSize)
	}
	if !bytes.Equal(got, fat12test.Content(6, 512)) {
		t.Error("truncated chain content mismatch")
	}
}
