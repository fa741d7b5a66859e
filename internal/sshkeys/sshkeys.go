// Package sshkeys enumerates candidate SSH private keys in the per-user SSH
// directory, in a fixed priority order.
package sshkeys

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"
)

// candidateNames are the private key filenames checked, in priority order:
// hardware-backed ed25519 first, then ed25519, then RSA.
var candidateNames = []string{"id_ed25519_sk", "id_ed25519", "id_rsa"}

// Locate returns the ordered list of existing private key files under the
// user's ~/.ssh directory. An undiscoverable home directory is not an error;
// it simply means no keys are available and an empty list is returned so
// callers fall through to other authentication strategies.
func Locate(ctx context.Context) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		clog.FromContext(ctx).Info("no home directory, skipping ssh key discovery")
		return nil
	}
	return LocateIn(ctx, filepath.Join(home, ".ssh"))
}

// LocateIn returns the ordered list of existing private key files under dir.
// Only regular files are included; the list may be empty.
func LocateIn(ctx context.Context, dir string) []string {
	log := clog.FromContext(ctx)
	var paths []string
	for _, name := range candidateNames {
		keyPath := filepath.Join(dir, name)
		info, err := os.Stat(keyPath)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		log.Info("found ssh key", "path", keyPath)
		paths = append(paths, keyPath)
	}
	if len(paths) == 0 {
		log.Info("no ssh key found")
	}
	return paths
}
