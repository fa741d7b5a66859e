// Package fsbridge bridges the project's native filesystem abstraction to
// the go-billy filesystems and git object storage that go-git consumes.
package fsbridge

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	fsb "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
)

// minCacheSize is used when a non-positive cache size is requested.
const minCacheSize = 100

// Billy unwraps a native fs.Filesystem into the billy.Filesystem go-git
// requires. The filesystem must be a billy-backed FS from the fs/billy
// package; any other implementation cannot serve git storage.
//
//nolint:ireturn // billy.Filesystem is the interface go-git consumes
func Billy(fsys fs.Filesystem) (billy.Filesystem, error) {
	wrapped, ok := fsys.(*fsb.FS)
	if !ok {
		return nil, fmt.Errorf("filesystem must be billy-backed (fs/billy), got %T", fsys)
	}
	return wrapped.Raw(), nil
}

// Storage builds git object storage over the given billy filesystem with an
// LRU object cache of the requested size.
func Storage(billyFS billy.Filesystem, cacheSize int) *filesystem.Storage {
	if cacheSize <= 0 {
		cacheSize = minCacheSize
	}
	return filesystem.NewStorage(billyFS, cache.NewObjectLRU(cache.FileSize(cacheSize)))
}
