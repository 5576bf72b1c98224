package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfigFile drops a config.yaml under a fake home directory and points
// HOME at it. Not parallel-safe: it mutates process-wide env.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	home := t.TempDir()
	dir := filepath.Join(home, ".cograph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("HOME", home)
}

func TestApplyConfigFileSetsDefaults(t *testing.T) {
	writeConfigFile(t, "input: /data/in.csv\nreport_dir: /tmp/out\ntop: 10\n")
	t.Setenv("INPUT_PATH", "")
	os.Unsetenv("INPUT_PATH")
	t.Setenv("REPORT_DIR", "")
	os.Unsetenv("REPORT_DIR")
	t.Setenv("TOP_N", "")
	os.Unsetenv("TOP_N")

	applyConfigFile()

	if got := os.Getenv("INPUT_PATH"); got != "/data/in.csv" {
		t.Errorf("INPUT_PATH = %q, want %q", got, "/data/in.csv")
	}
	if got := os.Getenv("REPORT_DIR"); got != "/tmp/out" {
		t.Errorf("REPORT_DIR = %q, want %q", got, "/tmp/out")
	}
	if got := os.Getenv("TOP_N"); got != "10" {
		t.Errorf("TOP_N = %q, want %q", got, "10")
	}
}

func TestApplyConfigFileEnvWins(t *testing.T) {
	writeConfigFile(t, "input: /data/from-file.csv\n")
	t.Setenv("INPUT_PATH", "/data/from-env.csv")

	applyConfigFile()

	if got := os.Getenv("INPUT_PATH"); got != "/data/from-env.csv" {
		t.Errorf("INPUT_PATH = %q, want env value to win", got)
	}
}

func TestApplyConfigFileMissingIsNoop(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INPUT_PATH", "")
	os.Unsetenv("INPUT_PATH")

	applyConfigFile()

	if got, set := os.LookupEnv("INPUT_PATH"); set {
		t.Errorf("INPUT_PATH = %q, want unset", got)
	}
}

func TestVersionString(t *testing.T) {
	if !strings.Contains(versionString(), "cograph version") {
		t.Errorf("versionString() = %q", versionString())
	}
}
