package main

import (
	"strings"
	"testing"
)

func TestVerifyVerdicts(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"LETTERS.TXT", "LETTERS.TXT: valid"},
		{"JABBER.TXT", "JABBER.TXT: valid"},
		{"BROKEN.TXT", "BROKEN.TXT: broken"},
		{"BADEND.TXT", "BADEND.TXT: broken"},
		{"NOEXT", "NOEXT: valid"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			t.Cleanup(resetFlags)
			path := useFixtureImage(t)

			out, err := execCmd(t, "verify", path, tt.fileName)
			if err != nil {
				t.Fatalf("verify: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("verify output %q, want %q", strings.TrimSpace(out), tt.want)
			}
		})
	}
}

func TestVerifyUnknownFile(t *testing.T) {
	t.Cleanup(resetFlags)
	path := useFixtureImage(t)

	if _, err := execCmd(t, "verify", path, "MISSING.TXT"); err == nil {
		t.Fatal("verify succeeded for a missing file")
	}
}

func TestVerifyUnmountableImage(t *testing.T) {
	t.Cleanup(resetFlags)

	if _, err := execCmd(t, "verify", "nosuch.img", "LETTERS.TXT"); err == nil {
		t.Fatal("verify succeeded for a missing image")
	}
}
