package prompt

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirmOverwriteMissingFile(t *testing.T) {
	driver := &scriptedDriver{}

	ok, err := ConfirmOverwrite(context.Background(), driver, filepath.Join(t.TempDir(), "HAZ-001.md"))
	if err != nil {
		t.Fatalf("confirm overwrite: %v", err)
	}
	if !ok {
		t.Fatalf("missing file should not need confirmation")
	}
	if len(driver.prompted) != 0 {
		t.Fatalf("prompted despite missing file: %v", driver.prompted)
	}
}

func TestConfirmOverwriteExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HAZ-001.md")
	if err := os.WriteFile(path, []byte("# HAZ-001\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	for _, answer := range []bool{true, false} {
		driver := &scriptedDriver{confirm: answer}

		ok, err := ConfirmOverwrite(context.Background(), driver, path)
		if err != nil {
			t.Fatalf("confirm overwrite: %v", err)
		}
		if ok != answer {
			t.Fatalf("got %v, want the driver's answer %v", ok, answer)
		}
		if len(driver.prompted) != 1 || !strings.Contains(driver.prompted[0], path) {
			t.Fatalf("confirmation prompt missing the path: %v", driver.prompted)
		}
	}
}

func TestConfirmOverwriteRequiresDriver(t *testing.T) {
	if _, err := ConfirmOverwrite(context.Background(), nil, "HAZ-001.md"); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}
