package fstest

import (
	"bufio"
	"errors"
	"io"
	iofs "io/fs"
	"testing"

	"github.com/input-output-hk/git-fixme/fs"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile, Exists.
func TestReadFS(t *testing.T, filesystem fs.Filesystem) {
	testContent := []byte("first line\nsecond line\n")

	if err := filesystem.MkdirAll("testdir/nested", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/nested): setup failed: %v", err)
	}
	for _, name := range []string{"testdir/b.txt", "testdir/a.txt", "testdir/c.txt"} {
		if err := filesystem.WriteFile(name, testContent, 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}

	t.Run("OpenAndReadLines", func(t *testing.T) {
		testReadFSOpen(t, filesystem)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem)
	})
	t.Run("ReadDirSorted", func(t *testing.T) {
		testReadFSReadDir(t, filesystem)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, testContent)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem)
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem)
	})
}

// testReadFSOpen reads a file line by line until io.EOF.
func testReadFSOpen(t *testing.T, filesystem fs.Filesystem) {
	f, err := filesystem.Open("testdir/a.txt")
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", "testdir/a.txt", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	r := bufio.NewReader(f)
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadString(): got error %v", err)
		}
	}
	if len(lines) != 2 || lines[1] != "second line\n" {
		t.Errorf("read lines = %q, want two lines ending in %q", lines, "second line\n")
	}
}

func testReadFSStatFile(t *testing.T, filesystem fs.Filesystem, testContent []byte) {
	info, err := filesystem.Stat("testdir/a.txt")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "testdir/a.txt", err)
		return
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", "testdir/a.txt")
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/a.txt", info.Size(), len(testContent))
	}
}

func testReadFSStatDir(t *testing.T, filesystem fs.Filesystem) {
	info, err := filesystem.Stat("testdir")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "testdir", err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", "testdir")
	}
}

// testReadFSReadDir checks ReadDir lists files and directories sorted by name.
func testReadFSReadDir(t *testing.T, filesystem fs.Filesystem) {
	entries, err := filesystem.ReadDir("testdir")
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", "testdir", err)
		return
	}
	want := []string{"a.txt", "b.txt", "c.txt", "nested"}
	if len(entries) != len(want) {
		t.Errorf("ReadDir(%q): got %d entries, want %d", "testdir", len(entries), len(want))
		return
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("ReadDir(%q)[%d] = %q, want %q", "testdir", i, e.Name(), want[i])
		}
	}
	if !entries[3].IsDir() {
		t.Errorf("ReadDir(%q): entry %q IsDir() = false, want true", "testdir", "nested")
	}
}

func testReadFSReadFile(t *testing.T, filesystem fs.Filesystem, testContent []byte) {
	data, err := filesystem.ReadFile("testdir/b.txt")
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", "testdir/b.txt", err)
		return
	}
	if string(data) != string(testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", "testdir/b.txt", data, testContent)
	}
}

// testReadFSOpenNotExist checks missing files surface as fs.ErrNotExist.
func testReadFSOpenNotExist(t *testing.T, filesystem fs.Filesystem) {
	_, err := filesystem.Open("nonexistent")
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
	}
}

func testReadFSExists(t *testing.T, filesystem fs.Filesystem) {
	for path, want := range map[string]bool{
		"testdir/a.txt": true,
		"testdir":       true,
		"nonexistent":   false,
	} {
		got, err := filesystem.Exists(path)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", path, err)
			continue
		}
		if got != want {
			t.Errorf("Exists(%q) = %v, want %v", path, got, want)
		}
	}
}
