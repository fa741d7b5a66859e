// Package gitremote provides sentinel errors for credential resolution and
// sync reporting. All errors can be checked using errors.Is() for
// programmatic handling.
package gitremote

import (
	"errors"
	"fmt"
)

// ErrNotGitBacked is returned when a store's backend does not expose a native
// git repository handle.
var ErrNotGitBacked = errors.New("the repo is not backed by a git repo")

// ErrNoCredential is returned when every strategy in the resolution chain has
// been exhausted without producing a credential.
var ErrNoCredential = errors.New("no credential obtained")

// ErrPromptUnavailable is returned when the interactive console cannot serve
// a prompt (closed input, no interactivity). There is no further fallback.
var ErrPromptUnavailable = errors.New("prompt unavailable")

// ErrRefSetFailed marks an export failure whose cause is specifically that
// the remote reference could not be set, as opposed to other structural
// reasons. The export reporter keys its hint on this sentinel.
var ErrRefSetFailed = errors.New("could not set the reference")

// ErrInvalidOptions is returned when store options are missing required
// fields or carry invalid values.
var ErrInvalidOptions = errors.New("invalid store options")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while
// preserving the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
