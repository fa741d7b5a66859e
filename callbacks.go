// Package gitremote provides the credential resolution chain exposed to a
// transport engine as a set of callbacks.
package gitremote

import (
	"context"
	"fmt"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/gitremote/internal/pinentry"
	"github.com/input-output-hk/catalyst-forge-libs/gitremote/internal/sshkeys"
)

// Callbacks bundles the credential and progress callbacks a transport engine
// invokes during one remote operation. Each callback may be invoked zero or
// more times; any nil field means the capability is unavailable.
//
// Secrets returned by these callbacks are owned by the immediate caller and
// must not be retained or copied after the call returns.
type Callbacks struct {
	// GetSSHKeys returns candidate private key paths for the given remote
	// username, in priority order. The list may be empty.
	GetSSHKeys func(username string) []string

	// GetPassword resolves the passphrase protecting access to url (for
	// example an SSH key passphrase). ok is false when every strategy was
	// exhausted without a secret.
	GetPassword func(url, username string) (secret string, ok bool)

	// GetUsernamePassword resolves an interactive username/password pair for
	// url. Both prompts must succeed or ok is false.
	GetUsernamePassword func(url string) (username, password string, ok bool)

	// Progress, when non-nil, receives raw transfer progress events from the
	// transport.
	Progress func(p Progress)
}

// InteractiveCallbacks builds the full interactive resolution chain over a
// shared console:
//
//   - SSH keys come from the per-user SSH directory, deterministically.
//   - Passphrases try the out-of-process secure-entry helper first, then a
//     masked console prompt.
//   - Username/password pairs always prompt on the console.
//
// The transport may invoke the callbacks at unpredictable points during its
// own execution, so all console access is serialized by one lock and only
// one prompt is ever in flight. ctx carries the logger and bounds the
// secure-entry helper's lifetime.
func InteractiveCallbacks(ctx context.Context, console Console, options ...Option) *Callbacks {
	opts := defaultResolverOptions()
	applyResolverOptions(opts, options)

	var consoleMu sync.Mutex
	entry := &pinentry.Client{Program: opts.pinentryProgram}

	cbs := &Callbacks{
		GetSSHKeys: func(_ string) []string {
			if opts.sshDir != "" {
				return sshkeys.LocateIn(ctx, opts.sshDir)
			}
			return sshkeys.Locate(ctx)
		},

		GetPassword: func(url, _ string) (string, bool) {
			if pin, ok := entry.GetPin(ctx, url); ok {
				return pin, true
			}
			consoleMu.Lock()
			defer consoleMu.Unlock()
			secret, err := console.PromptSecret(fmt.Sprintf("Passphrase for %s: ", url))
			if err != nil {
				return "", false
			}
			return secret, true
		},

		GetUsernamePassword: func(url string) (string, string, bool) {
			consoleMu.Lock()
			defer consoleMu.Unlock()
			username, err := console.Prompt(fmt.Sprintf("Username for %s", url))
			if err != nil {
				return "", "", false
			}
			password, err := console.PromptSecret(fmt.Sprintf("Passphrase for %s: ", url))
			if err != nil {
				return "", "", false
			}
			return username, password, true
		},
	}

	if opts.renderer != nil && console.ProgressWriter() != nil {
		cbs.Progress = throttleProgress(opts.renderer, opts.progressInterval)
	}

	return cbs
}
