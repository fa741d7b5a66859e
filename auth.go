// Package gitremote adapts the credential callback chain to go-git's
// transport authentication contract.
package gitremote

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// DefaultSSHUser is the SSH username assumed when neither the remote URL nor
// the provider configuration names one.
const DefaultSSHUser = "git"

// AuthProvider resolves authentication methods for git remote operations.
//
//go:generate mockery --name=AuthProvider --output=./mocks
type AuthProvider interface {
	// Method returns the appropriate transport.AuthMethod for the given
	// remote URL. Returns nil when no authentication is available for this
	// URL, and an error when the URL itself cannot be understood.
	Method(remoteURL string) (transport.AuthMethod, error)
}

// CallbackProvider adapts a Callbacks chain to the AuthProvider contract so
// go-git operations can pull interactively resolved credentials.
//
// SSH URLs resolve through the key candidates from GetSSHKeys, asking
// GetPassword for a passphrase only when a key turns out to be encrypted.
// HTTP(S) URLs resolve through GetUsernamePassword. A chain that yields
// nothing declines with (nil, nil), per the AuthProvider convention.
type CallbackProvider struct {
	// Callbacks is the credential resolution chain to draw from.
	Callbacks *Callbacks

	// SSHUser overrides the SSH username when the URL carries none.
	// Defaults to DefaultSSHUser.
	SSHUser string

	// HostKeyCallback optionally overrides SSH host key verification.
	HostKeyCallback gossh.HostKeyCallback
}

// Method returns the authentication method for the given remote URL.
//
//nolint:ireturn // transport.AuthMethod is an interface required by go-git
func (p *CallbackProvider) Method(remoteURL string) (transport.AuthMethod, error) {
	scheme, user, err := parseRemote(remoteURL)
	if err != nil {
		return nil, err
	}

	switch {
	case isSSHScheme(scheme):
		if user == "" {
			user = p.SSHUser
		}
		if user == "" {
			user = DefaultSSHUser
		}
		return p.sshMethod(remoteURL, user)
	case scheme == "https" || scheme == "http":
		return p.basicAuth(remoteURL)
	default:
		// Local and unauthenticated schemes need no credentials.
		return nil, nil
	}
}

//nolint:ireturn // transport.AuthMethod is an interface required by go-git
func (p *CallbackProvider) sshMethod(remoteURL, user string) (transport.AuthMethod, error) {
	if p.Callbacks == nil || p.Callbacks.GetSSHKeys == nil {
		return nil, nil
	}
	for _, keyPath := range p.Callbacks.GetSSHKeys(user) {
		auth, err := gitssh.NewPublicKeysFromFile(user, keyPath, "")
		if err != nil {
			// The key is unreadable or encrypted; a passphrase may unlock it.
			if p.Callbacks.GetPassword == nil {
				continue
			}
			passphrase, ok := p.Callbacks.GetPassword(remoteURL, user)
			if !ok {
				continue
			}
			auth, err = gitssh.NewPublicKeysFromFile(user, keyPath, passphrase)
			if err != nil {
				continue
			}
		}
		if p.HostKeyCallback != nil {
			auth.HostKeyCallback = p.HostKeyCallback
		}
		return auth, nil
	}
	return nil, nil
}

//nolint:ireturn // transport.AuthMethod is an interface required by go-git
func (p *CallbackProvider) basicAuth(remoteURL string) (transport.AuthMethod, error) {
	if p.Callbacks == nil || p.Callbacks.GetUsernamePassword == nil {
		return nil, nil
	}
	username, password, ok := p.Callbacks.GetUsernamePassword(remoteURL)
	if !ok {
		return nil, nil
	}
	return &githttp.BasicAuth{Username: username, Password: password}, nil
}

// RequireAuth resolves an auth method through the provider for a transport
// that has already determined authentication is required. A declined URL is
// promoted from absence to a visible ErrNoCredential failure; the transport
// decides the operation's fate from there.
//
//nolint:ireturn // transport.AuthMethod is an interface required by go-git
func RequireAuth(provider AuthProvider, remoteURL string) (transport.AuthMethod, error) {
	method, err := provider.Method(remoteURL)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, WrapError(ErrNoCredential, remoteURL)
	}
	return method, nil
}

// parseRemote extracts the scheme and embedded username from a remote URL,
// including scp-style URLs like "git@host:path" which carry no scheme.
func parseRemote(remoteURL string) (scheme, user string, err error) {
	if !strings.Contains(remoteURL, "://") {
		at := strings.Index(remoteURL, "@")
		if at > 0 && strings.Contains(remoteURL[at:], ":") {
			return "ssh", remoteURL[:at], nil
		}
		// A bare path; no scheme, no auth.
		return "", "", nil
	}
	parsed, err := url.Parse(remoteURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid remote URL: %w", err)
	}
	return parsed.Scheme, parsed.User.Username(), nil
}

func isSSHScheme(scheme string) bool {
	return scheme == "ssh" || scheme == "git+ssh"
}
