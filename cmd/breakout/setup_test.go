package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// withFlags sets the global flags for one test and restores them after.
func withFlags(t *testing.T, config, difficulty, font, db string) {
	t.Helper()
	oldConfig, oldDifficulty, oldFont, oldDB, oldLog := flagConfig, flagDifficulty, flagFont, flagDBPath, flagLogFile
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagFont, flagDBPath, flagLogFile = oldConfig, oldDifficulty, oldFont, oldDB, oldLog
	})
	flagConfig, flagDifficulty, flagFont, flagDBPath = config, difficulty, font, db
	flagLogFile = filepath.Join(t.TempDir(), "logs", "breakout.log")
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, expected string
	}{
		{"~/.breakout/rounds.db", filepath.Join(home, ".breakout", "rounds.db")},
		{"/tmp/x.log", "/tmp/x.log"},
		{"relative/path", "relative/path"},
	}

	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestSetupDefaults(t *testing.T) {
	isolate(t)
	withFlags(t, "", "hard", "", filepath.Join(t.TempDir(), "rounds.db"))

	e, err := setup(true, true)
	if err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	defer e.close()

	if e.store == nil {
		t.Error("store should be open")
	}
	if e.logFile == nil {
		t.Error("log file should be open")
	}
	if e.cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", e.cfg.Gameplay.Lives)
	}
	if e.font.Name != "mono" {
		t.Errorf("font = %q, expected the embedded default", e.font.Name)
	}

	opts := e.options(80, 24, true)
	if opts.HoldWindow != 150*time.Millisecond {
		t.Errorf("HoldWindow = %v, expected 150ms", opts.HoldWindow)
	}
	if opts.MaxFrameDelta != 0.1 {
		t.Errorf("MaxFrameDelta = %v, expected 0.1", opts.MaxFrameDelta)
	}

	rt := e.runtime()
	if rt.ScreenW != 0 || rt.ScreenH != 0 {
		t.Errorf("runtime world = %vx%v, expected zero so the config size is used", rt.ScreenW, rt.ScreenH)
	}
}

func TestSetupErrors(t *testing.T) {
	isolate(t)

	badConfig := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badConfig, []byte("ball:\n  size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		config     string
		difficulty string
		font       string
		wantErr    string
	}{
		{"unknown difficulty", "", "insane", "", "unknown difficulty"},
		{"missing config", filepath.Join(t.TempDir(), "missing.yaml"), "", "", "config:"},
		{"invalid config", badConfig, "", "", "config:"},
		{"missing font", "", "", filepath.Join(t.TempDir(), "missing-font.yaml"), "config:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withFlags(t, tc.config, tc.difficulty, tc.font, filepath.Join(t.TempDir(), "rounds.db"))

			e, err := setup(false, true)
			if err == nil {
				e.close()
				t.Fatal("setup() error = nil, expected failure")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("setup() error = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

// testChdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
