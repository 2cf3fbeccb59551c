package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"staff-trainer/config"
	"staff-trainer/trainer"
)

func TestFormatCourses(t *testing.T) {
	out := formatCourses()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if want := "1  TrebleLines   C E G B D F A"; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if want := "5  BassSpaces    F A C E G B"; lines[4] != want {
		t.Errorf("line 4 = %q, want %q", lines[4], want)
	}
}

// setFlags sets root flags for one test and restores them afterwards
func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	flags := rootCmd.Flags()
	for name, value := range values {
		f := flags.Lookup(name)
		if f == nil {
			t.Fatalf("no flag %q", name)
		}
		def := f.DefValue
		if err := flags.Set(name, value); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() {
			f.Value.Set(def)
			f.Changed = false
		})
	}
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	configPath = path
	t.Cleanup(func() { configPath = "" })
	return path
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	writeConfig(t, "course: BassAll\nnotes_per_round: 10\n")
	setFlags(t, map[string]string{"notes": "20", "no-midi": "true"})

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Course != "BassAll" || cfg.NotesPerRound != 20 || !cfg.MIDI.Disabled {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejectsBadNotes(t *testing.T) {
	writeConfig(t, "course: All\n")
	setFlags(t, map[string]string{"notes": "31"})

	if _, err := loadConfig(rootCmd); err == nil {
		t.Error("31 notes per round accepted")
	}
}

func TestRememberCourseSkipsFlags(t *testing.T) {
	path := writeConfig(t, "notes_per_round: 10\n")
	setFlags(t, map[string]string{
		"course":  "BassAll",
		"notes":   "5",
		"seed":    "42",
		"debug":   "true",
		"no-midi": "true",
	})

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	tr := trainer.New(rand.New(rand.NewPCG(1, 2)), cfg.NotesPerRound)
	tr.SelectCourse(trainer.TrebleSpaces)
	rememberCourse(cfg, tr)

	saved, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Course != "" || saved.NotesPerRound != 10 || saved.Seed != 0 || saved.Debug || saved.MIDI.Disabled {
		t.Errorf("flags written to config: %+v", saved)
	}
	if saved.UI.LastCourse != "TrebleSpaces" {
		t.Errorf("last_course = %q, want TrebleSpaces", saved.UI.LastCourse)
	}
}

func TestRememberCourseSkipsDemo(t *testing.T) {
	path := writeConfig(t, "ui:\n  last_course: BassLines\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	rememberCourse(cfg, trainer.New(rand.New(rand.NewPCG(1, 2)), 0))

	saved, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if saved.UI.LastCourse != "BassLines" {
		t.Errorf("last_course = %q, want BassLines kept", saved.UI.LastCourse)
	}
}
