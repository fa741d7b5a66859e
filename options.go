// Package gitremote provides functional options for building the
// interactive credential callback chain.
package gitremote

import "time"

// resolverOptions holds configuration for InteractiveCallbacks.
type resolverOptions struct {
	pinentryProgram  string
	sshDir           string
	renderer         Renderer
	progressInterval time.Duration
}

// Option is a functional option for configuring InteractiveCallbacks.
type Option func(*resolverOptions)

// WithPinentryProgram overrides the secure-entry helper executable tried
// before falling back to the console prompt. The default is "pinentry".
func WithPinentryProgram(program string) Option {
	return func(opts *resolverOptions) {
		opts.pinentryProgram = program
	}
}

// WithSSHDir overrides the directory searched for SSH private keys.
// The default is the user's ~/.ssh directory.
func WithSSHDir(dir string) Option {
	return func(opts *resolverOptions) {
		opts.sshDir = dir
	}
}

// WithProgressRenderer installs a renderer for transport progress events.
// Events are forwarded rate-limited, and only when the console reports an
// interactive progress stream. Without this option no progress callback is
// installed.
func WithProgressRenderer(r Renderer) Option {
	return func(opts *resolverOptions) {
		opts.renderer = r
	}
}

// WithProgressInterval sets the minimum interval between forwarded progress
// events. Values <= 0 leave the default unchanged.
func WithProgressInterval(d time.Duration) Option {
	return func(opts *resolverOptions) {
		if d > 0 {
			opts.progressInterval = d
		}
	}
}

// defaultResolverOptions returns the default configuration.
func defaultResolverOptions() *resolverOptions {
	return &resolverOptions{
		progressInterval: defaultProgressInterval,
	}
}

// applyResolverOptions applies the given options in order.
func applyResolverOptions(opts *resolverOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
