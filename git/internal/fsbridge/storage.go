package fsbridge

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// MinCacheSize is used when a non-positive cache size is requested.
const MinCacheSize = 100

// NewStorage creates git storage over a .git directory with an LRU object cache.
// Blame revisits the same trees and blobs for every commit it walks, so the
// cache bounds how often objects are inflated again.
func NewStorage(dotGit billy.Filesystem, cacheSize int) *filesystem.Storage {
	if cacheSize <= 0 {
		cacheSize = MinCacheSize
	}

	objCache := cache.NewObjectLRU(cache.FileSize(cacheSize))
	return filesystem.NewStorage(dotGit, objCache)
}
