// Package gitremote abstracts the repository store behind a remote
// operation. Backends expose their native git repository handle as an
// optional capability rather than through runtime type casts.
package gitremote

import (
	"context"

	gobilly "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/input-output-hk/catalyst-forge-libs/gitremote/internal/fsbridge"
)

const (
	// DefaultStorerCacheSize is the default size for the LRU object cache.
	DefaultStorerCacheSize = 1000

	// DefaultWorkdir is the default worktree directory name.
	DefaultWorkdir = "."
)

// Backend identifies the storage implementation behind a Store and exposes
// optional capabilities.
type Backend interface {
	// Kind names the backend implementation, e.g. "git".
	Kind() string

	// NativeGitRepo returns the native go-git repository handle and true
	// when this backend is git-backed. Other backends return nil, false.
	NativeGitRepo() (*git.Repository, bool)
}

// Store abstracts a repository store whose backend may or may not be
// git-backed.
type Store interface {
	// Backend returns the storage backend behind this store.
	Backend() Backend
}

// NativeGitRepo returns the native git repository behind the store.
// Stores without a git-backed backend yield ErrNotGitBacked; this is a
// user-facing error, not a condition to fall back from.
func NativeGitRepo(store Store) (*git.Repository, error) {
	backend := store.Backend()
	repo, ok := backend.NativeGitRepo()
	if !ok {
		return nil, WrapErrorf(ErrNotGitBacked, "%s backend", backend.Kind())
	}
	return repo, nil
}

// StoreOptions configures opening or initializing a git-backed store.
type StoreOptions struct {
	// FS is the REQUIRED native filesystem root holding the repository.
	FS fs.Filesystem

	// Workdir is the path within FS for the worktree root.
	// Defaults to DefaultWorkdir.
	Workdir string

	// Bare indicates the repository has no worktree (.git contents at root).
	Bare bool

	// StorerCacheSize sets the LRU object cache entries.
	// Defaults to DefaultStorerCacheSize.
	StorerCacheSize int
}

// Validate checks that the options are properly configured.
func (o *StoreOptions) Validate() error {
	if o.FS == nil {
		return WrapError(ErrInvalidOptions, "FS is required")
	}
	if o.StorerCacheSize < 0 {
		return WrapError(ErrInvalidOptions, "StorerCacheSize cannot be negative")
	}
	return nil
}

// applyDefaults sets default values for any unset fields.
func (o *StoreOptions) applyDefaults() {
	if o.Workdir == "" {
		o.Workdir = DefaultWorkdir
	}
	if o.StorerCacheSize == 0 {
		o.StorerCacheSize = DefaultStorerCacheSize
	}
}

// GitStore is a Store whose backend is a local git repository.
type GitStore struct {
	backend gitBackend
}

// Backend returns the git backend behind this store.
//
//nolint:ireturn // Backend is the capability-query interface of this package
func (s *GitStore) Backend() Backend {
	return s.backend
}

// gitBackend is the git-backed Backend implementation.
type gitBackend struct {
	repo *git.Repository
}

func (b gitBackend) Kind() string { return "git" }

func (b gitBackend) NativeGitRepo() (*git.Repository, bool) { return b.repo, true }

// OpenGitStore opens an existing git repository within the native filesystem
// as a git-backed Store.
func OpenGitStore(ctx context.Context, opts *StoreOptions) (*GitStore, error) {
	storage, worktreeFS, err := storeLayout(opts)
	if err != nil {
		return nil, err
	}
	repo, err := git.Open(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to open repository")
	}
	return &GitStore{backend: gitBackend{repo: repo}}, nil
}

// InitGitStore initializes a new git repository within the native filesystem
// and returns it as a git-backed Store.
func InitGitStore(ctx context.Context, opts *StoreOptions) (*GitStore, error) {
	storage, worktreeFS, err := storeLayout(opts)
	if err != nil {
		return nil, err
	}
	repo, err := git.Init(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to initialize repository")
	}
	return &GitStore{backend: gitBackend{repo: repo}}, nil
}

// storeLayout validates options and builds object storage plus the worktree
// filesystem for the configured repository layout.
func storeLayout(opts *StoreOptions) (*filesystem.Storage, gobilly.Filesystem, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, WrapError(err, "invalid options")
	}
	opts.applyDefaults()

	billyFS, err := fsbridge.Billy(opts.FS)
	if err != nil {
		return nil, nil, WrapError(err, "filesystem conversion failed")
	}
	scopedFS, err := billyFS.Chroot(opts.Workdir)
	if err != nil {
		return nil, nil, WrapErrorf(err, "failed to chroot to workdir %q", opts.Workdir)
	}

	if opts.Bare {
		return fsbridge.Storage(scopedFS, opts.StorerCacheSize), nil, nil
	}

	dotGitFS, err := scopedFS.Chroot(".git")
	if err != nil {
		return nil, nil, WrapError(err, "failed to access .git directory")
	}
	return fsbridge.Storage(dotGitFS, opts.StorerCacheSize), scopedFS, nil
}
