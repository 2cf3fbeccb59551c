package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnableWritesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Enable")
	}

	Log("trainer", "round %d course=%s", 3, "All")
	for i := 0; i < 4; i++ {
		LogEvery(2, "midi", "pad")
	}
	Disable()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Debug logging started", "round 3 course=All", "trainer", "pad (every 2, count=4)"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLogDisabledIsNoop(t *testing.T) {
	Disable()
	Log("trainer", "ignored")
	if Enabled() {
		t.Fatal("Enabled() = true after Disable")
	}
	if L() == nil {
		t.Fatal("L() returned nil")
	}
}
