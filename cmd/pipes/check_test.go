package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLevelFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "pack")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.yaml", "pack/b.YML", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("id: x\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := levelFiles(dir)
	if err != nil {
		t.Fatalf("levelFiles() failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("levelFiles() = %v, expected the two YAML files", files)
	}

	single, err := levelFiles(filepath.Join(dir, "notes.txt"))
	if err != nil {
		t.Fatalf("levelFiles() failed: %v", err)
	}
	if len(single) != 1 {
		t.Errorf("an explicit file should be checked regardless of extension, got %v", single)
	}

	if _, err := levelFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing path should fail")
	}
}
