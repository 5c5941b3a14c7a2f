package assemble

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubs.html")
	if err := WriteFile(path, []byte("<ol></ol>\n"), DefaultMode, true); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<ol></ol>\n" {
		t.Errorf("content = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %o, want 0755", info.Mode().Perm())
	}
}

func TestWriteFile_NoChmod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubs.bib")
	if err := WriteFile(path, []byte("% empty\n"), DefaultMode, false); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %o, want 0644", info.Mode().Perm())
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pubs.html")
	if err := WriteFile(path, nil, DefaultMode, true); err == nil {
		t.Fatal("WriteFile() expected error for missing directory")
	}
}
