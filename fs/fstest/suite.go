// Package fstest provides a conformance test suite for fs.Filesystem implementations.
//
// The walker relies on a handful of behaviors beyond the method signatures:
// ReadDir lists entries sorted by name, symbolic links are reported as links,
// missing paths surface as fs.ErrNotExist, and Read returns io.EOF at end of file.
// The suite checks those contracts.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() fs.Filesystem {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/input-output-hk/git-fixme/fs"
)

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each test.
func TestSuite(t *testing.T, newFS func() fs.Filesystem) {
	TestSuiteWithSkip(t, newFS, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// skipTests holds top-level test names to skip (e.g. "Symlink").
func TestSuiteWithSkip(t *testing.T, newFS func() fs.Filesystem, skipTests []string) {
	shouldSkip := func(testName string) bool {
		for _, skip := range skipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(*testing.T, fs.Filesystem)) {
		t.Run(name, func(t *testing.T) {
			if shouldSkip(name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			fn(t, newFS())
		})
	}

	run("ReadFS", TestReadFS)
	run("WriteFS", TestWriteFS)
	run("Symlink", TestSymlink)
}
