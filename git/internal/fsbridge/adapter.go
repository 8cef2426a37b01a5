// Package fsbridge provides adapters between fs.Filesystem and billy.Filesystem.
// go-git only understands billy, so repository storage and the worktree are
// reached through the wrapped filesystem.
package fsbridge

import (
	"fmt"

	"github.com/go-git/go-billy/v5"

	"github.com/input-output-hk/git-fixme/fs"
	fsb "github.com/input-output-hk/git-fixme/fs/billy"
)

// ToBillyFilesystem converts an fs.Filesystem to a billy.Filesystem.
// The passed filesystem must be a billy.FS wrapper from the fs/billy package.
//
//nolint:ireturn // returns interface as required by billy.Filesystem interface
func ToBillyFilesystem(fsys fs.Filesystem) (billy.Filesystem, error) {
	billyFS, ok := fsys.(*fsb.FS)
	if !ok {
		return nil, fmt.Errorf("filesystem must be a billy.FS from fs/billy package, got %T", fsys)
	}

	return billyFS.Raw(), nil
}
