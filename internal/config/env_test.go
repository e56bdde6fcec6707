package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvKeepsExistingVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	data := "DEFENSE_TEST_FROM_FILE=hard\nDEFENSE_TEST_PRESET=file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DEFENSE_TEST_PRESET", "shell")
	t.Cleanup(func() { os.Unsetenv("DEFENSE_TEST_FROM_FILE") })

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := Env("DEFENSE_TEST_FROM_FILE", "normal"); got != "hard" {
		t.Errorf("from file = %q, want hard", got)
	}
	if got := Env("DEFENSE_TEST_PRESET", ""); got != "shell" {
		t.Errorf("preset = %q, want shell", got)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("DEFENSE_TEST_EMPTY", "")
	if got := Env("DEFENSE_TEST_EMPTY", "x"); got != "x" {
		t.Errorf("Env = %q, want fallback", got)
	}

	t.Setenv("DEFENSE_TEST_SEED", "42")
	if got := EnvInt64("DEFENSE_TEST_SEED", 0); got != 42 {
		t.Errorf("EnvInt64 = %d, want 42", got)
	}
	t.Setenv("DEFENSE_TEST_SEED", "forty-two")
	if got := EnvInt64("DEFENSE_TEST_SEED", 7); got != 7 {
		t.Errorf("EnvInt64 = %d, want fallback 7", got)
	}
}
