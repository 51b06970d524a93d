package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12/fat12test"
)

func TestCatWholeFile(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	out, err := execCmd(t, "cat", path, "LETTERS.TXT")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	want := fat12test.Content(1, fat12test.LettersSize)
	if !bytes.Equal([]byte(out), want) {
		t.Errorf("cat returned %d bytes, want %d matching bytes", len(out), len(want))
	}
}

func TestCatMultiClusterFile(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	out, err := execCmd(t, "cat", path, "jabber.txt")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	want := fat12test.Content(3, fat12test.JabberSize)
	if !bytes.Equal([]byte(out), want) {
		t.Errorf("cat returned %d bytes, want %d matching bytes", len(out), len(want))
	}
}

func TestCatOffsetAndLength(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	out, err := execCmd(t, "cat",
		"--offset", "1030", "--length", "100", path, "JABBER.TXT")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	want := fat12test.Content(3, fat12test.JabberSize)[1030:1130]
	if !bytes.Equal([]byte(out), want) {
		t.Errorf("cat at offset 1030 returned wrong bytes")
	}
}

func TestCatOffsetToEndOfFile(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	out, err := execCmd(t, "cat", "--offset", "1200", path, "JABBER.TXT")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	want := fat12test.Content(3, fat12test.JabberSize)[1200:]
	if !bytes.Equal([]byte(out), want) {
		t.Errorf("cat returned %d bytes, want %d", len(out), len(want))
	}
}

func TestCatOffsetPastEndOfFile(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	out, err := execCmd(t, "cat",
		"--offset", strconv.Itoa(fat12test.LettersSize), path, "LETTERS.TXT")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("cat past end of file returned %d bytes", len(out))
	}
}

func TestCatUnknownFile(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	if _, err := execCmd(t, "cat", path, "MISSING.TXT"); err == nil {
		t.Fatal("cat succeeded for a missing file")
	}
}

func TestCatRequiresBothArguments(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	if _, err := execCmd(t, "cat", path); err == nil {
		t.Fatal("cat accepted a single argument")
	}
}
