package fstest

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/input-output-hk/git-fixme/fs"
)

// TestWriteFS tests write operations used to build fixtures: Create, WriteFile, MkdirAll, Remove.
func TestWriteFS(t *testing.T, filesystem fs.Filesystem) {
	t.Run("CreateAndWrite", func(t *testing.T) {
		testWriteFSCreate(t, filesystem)
	})
	t.Run("WriteFileOverwrites", func(t *testing.T) {
		testWriteFSWriteFile(t, filesystem)
	})
	t.Run("MkdirAll", func(t *testing.T) {
		testWriteFSMkdirAll(t, filesystem)
	})
	t.Run("Remove", func(t *testing.T) {
		testWriteFSRemove(t, filesystem)
	})
}

func testWriteFSCreate(t *testing.T, filesystem fs.Filesystem) {
	testData := []byte("test data for Create")

	f, err := filesystem.Create("testfile.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "testfile.txt", err)
	}
	n, err := f.Write(testData)
	if err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if n != len(testData) {
		_ = f.Close()
		t.Fatalf("Write(): wrote %d bytes, want %d", n, len(testData))
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("testfile.txt")
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", "testfile.txt", err)
		return
	}
	if !bytes.Equal(data, testData) {
		t.Errorf("ReadFile(%q): got %q, want %q", "testfile.txt", data, testData)
	}
}

// testWriteFSWriteFile checks WriteFile truncates existing content.
func testWriteFSWriteFile(t *testing.T, filesystem fs.Filesystem) {
	if err := filesystem.WriteFile("writefile.txt", []byte("a much longer first version"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", "writefile.txt", err)
	}
	if err := filesystem.WriteFile("writefile.txt", []byte("short"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", "writefile.txt", err)
	}

	data, err := filesystem.ReadFile("writefile.txt")
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", "writefile.txt", err)
		return
	}
	if string(data) != "short" {
		t.Errorf("ReadFile(%q): got %q, want %q", "writefile.txt", data, "short")
	}
}

func testWriteFSMkdirAll(t *testing.T, filesystem fs.Filesystem) {
	if err := filesystem.MkdirAll("parent/child/grandchild", 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): got error %v, want nil", "parent/child/grandchild", err)
	}

	for _, dir := range []string{"parent", "parent/child", "parent/child/grandchild"} {
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Errorf("Stat(%q): got error %v, want nil", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	}
}

func testWriteFSRemove(t *testing.T, filesystem fs.Filesystem) {
	if err := filesystem.WriteFile("gone.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", "gone.txt", err)
	}
	if err := filesystem.Remove("gone.txt"); err != nil {
		t.Fatalf("Remove(%q): got error %v, want nil", "gone.txt", err)
	}
	if _, err := filesystem.Stat("gone.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat(%q) after Remove: got %v, want not-exist", "gone.txt", err)
	}
}

// TestSymlink checks that ReadDir reports symbolic links as links rather than their targets.
func TestSymlink(t *testing.T, filesystem fs.Filesystem) {
	if err := filesystem.MkdirAll("real", 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", "real", err)
	}
	if err := filesystem.Symlink("real", "link"); err != nil {
		t.Fatalf("Symlink(%q, %q): got error %v, want nil", "real", "link", err)
	}

	entries, err := filesystem.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir(%q): got error %v, want nil", ".", err)
	}
	for _, e := range entries {
		if e.Name() != "link" {
			continue
		}
		if e.Mode()&os.ModeSymlink == 0 {
			t.Errorf("ReadDir entry %q mode = %v, want symlink", "link", e.Mode())
		}
		return
	}
	t.Errorf("ReadDir(%q): entry %q not listed", ".", "link")
}
