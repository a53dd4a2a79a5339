package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDataDir(t *testing.T) {
	// Clear XDG_DATA_HOME to test default behavior
	oldXdg := os.Getenv("XDG_DATA_HOME")
	os.Unsetenv("XDG_DATA_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_DATA_HOME", oldXdg)
		}
	}()

	dir, err := dataDir()
	if err != nil {
		t.Fatalf("dataDir() error: %v", err)
	}

	if dir == "" {
		t.Error("dataDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("dataDir() = %q, should be under home %q", dir, home)
	}

	if !strings.HasSuffix(dir, appName) {
		t.Errorf("dataDir() = %q, should end with %q", dir, appName)
	}

	if !strings.Contains(dir, filepath.Join(".local", "share")) {
		t.Errorf("dataDir() = %q, should contain '.local/share'", dir)
	}
}

func TestDataDirXDG(t *testing.T) {
	oldXdg := os.Getenv("XDG_DATA_HOME")
	t.Cleanup(func() {
		if oldXdg != "" {
			os.Setenv("XDG_DATA_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_DATA_HOME")
		}
	})

	os.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := dataDir()
	if err != nil {
		t.Fatalf("dataDir() error: %v", err)
	}

	want := filepath.Join("/tmp/xdg-data", appName)
	if dir != want {
		t.Errorf("dataDir() = %q, want %q", dir, want)
	}
}
