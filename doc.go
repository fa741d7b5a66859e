// Package gitremote resolves the interactive credentials needed for
// authenticated git remote operations and reports the outcome of
// synchronizing references with a remote.
//
// The package does not implement any network transport itself. It exposes a
// set of callbacks (see [Callbacks]) that a transport engine invokes when it
// needs SSH key candidates, a key passphrase, or a username/password pair,
// plus an optional progress event callback. Credential acquisition is a
// fallback chain: an out-of-process secure-entry helper (pinentry) is tried
// first for passphrases, then the interactive console; username/password
// pairs always come from the console.
//
// # Basic Usage
//
// Build the callback chain over a terminal console and hand it to the
// transport:
//
//	console := gitremote.NewTerminal(os.Stdin, os.Stdout, os.Stderr)
//	cbs := gitremote.InteractiveCallbacks(ctx, console)
//
//	// The transport engine calls back as needed:
//	keys := cbs.GetSSHKeys("git")
//	secret, ok := cbs.GetPassword("ssh://git@example.com/repo.git", "git")
//
// For go-git based transports, [CallbackProvider] adapts the chain to a
// transport.AuthMethod resolver:
//
//	provider := &gitremote.CallbackProvider{Callbacks: cbs}
//	method, err := provider.Method("https://example.com/repo.git")
//
// # Reporting
//
// After a synchronization operation, [PrintImportStats] and
// [PrintFailedExports] render the engine-supplied outcome records:
//
//	_ = gitremote.PrintImportStats(console, stats)
//	_ = gitremote.PrintFailedExports(console, failures)
//
// # Error Handling
//
// Internal strategy failures (missing helper, undecodable response, no SSH
// keys) are never surfaced; each strategy simply yields nothing and the chain
// advances. Only exhaustion of the chain is visible to the transport, as an
// absent credential. Sentinel errors such as [ErrNotGitBacked] can be checked
// with errors.Is.
//
// # Thread Safety
//
// A single console may be shared by all callbacks of one operation; access to
// it is serialized internally so only one prompt is ever in flight.
package gitremote
