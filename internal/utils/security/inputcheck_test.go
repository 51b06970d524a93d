package security

import (
	"strings"
	"testing"
)

func TestValidateString_Basics(t *testing.T) {
	lim := DefaultLimits()
	if err := ValidateString("ok", "hello", lim); err != nil {
		t.Fatal(err)
	}
	if err := ValidateString("empty", "", lim); err == nil {
		t.Fatal("expected empty reject")
	}
	if err := ValidateString("nul", "a\x00b", lim); err == nil {
		t.Fatal("expected NUL reject")
	}
	if err := ValidateString("nonprint", "ab", lim); err == nil {
		t.Fatal("expected control char reject")
	}
	if err := ValidateString("badutf8", string([]byte{0xff, 0xfe, 0xfd}), lim); err == nil {
		t.Fatal("expected invalid UTF-8 reject")
	}
	if err := ValidateString("long", strings.Repeat("a", lim.MaxLen+1), lim); err == nil {
		t.Fatal("expected over-long reject")
	}
}

func TestValidateString_FileNameLimits(t *testing.T) {
	lim := FileNameLimits()
	if err := ValidateString("name", "LETTERS.TXT", lim); err != nil {
		t.Fatal(err)
	}
	if err := ValidateString("name", "VERYLONGNAME.TXT", lim); err == nil {
		t.Fatal("expected over-long name reject")
	}
}
