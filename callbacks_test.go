package gitremote

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingHelper returns a path that cannot be spawned, disabling the
// secure-entry strategy.
func missingHelper(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "no-such-pinentry")
}

// stubHelper writes an executable secure-entry helper that answers every
// request with the given data line.
func stubHelper(t *testing.T, dataLine string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script helper stub requires a POSIX shell")
	}
	script := "#!/bin/sh\ncat > /dev/null\necho 'OK'\necho '" + dataLine + "'\n"
	path := filepath.Join(t.TempDir(), "stub-pinentry")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestInteractiveCallbacksGetPassword(t *testing.T) {
	ctx := context.Background()
	url := "ssh://git@example.com/repo.git"

	t.Run("secure-entry helper wins when it answers", func(t *testing.T) {
		console := &fakeConsole{secretValues: []string{"console-secret"}}
		cbs := InteractiveCallbacks(ctx, console,
			WithPinentryProgram(stubHelper(t, "D s3cret")))

		secret, ok := cbs.GetPassword(url, "git")
		require.True(t, ok)
		assert.Equal(t, "s3cret", secret)
		assert.Empty(t, console.secretLabels, "console must not be prompted when the helper answers")
	})

	t.Run("falls back to masked console prompt", func(t *testing.T) {
		console := &fakeConsole{secretValues: []string{"console-secret"}}
		cbs := InteractiveCallbacks(ctx, console,
			WithPinentryProgram(missingHelper(t)))

		secret, ok := cbs.GetPassword(url, "git")
		require.True(t, ok)
		assert.Equal(t, "console-secret", secret)
		require.Len(t, console.secretLabels, 1, "terminal strategy must be invoked exactly once")
		assert.Equal(t, "Passphrase for "+url+": ", console.secretLabels[0])
	})

	t.Run("no credential when every strategy fails", func(t *testing.T) {
		console := &fakeConsole{secretErr: ErrPromptUnavailable}
		cbs := InteractiveCallbacks(ctx, console,
			WithPinentryProgram(missingHelper(t)))

		secret, ok := cbs.GetPassword(url, "git")
		assert.False(t, ok)
		assert.Empty(t, secret)
	})
}

func TestInteractiveCallbacksGetUsernamePassword(t *testing.T) {
	ctx := context.Background()
	url := "https://example.com/repo.git"

	t.Run("prompts username then password", func(t *testing.T) {
		console := &fakeConsole{
			promptValues: []string{"alice"},
			secretValues: []string{"wonderland"},
		}
		cbs := InteractiveCallbacks(ctx, console, WithPinentryProgram(missingHelper(t)))

		username, password, ok := cbs.GetUsernamePassword(url)
		require.True(t, ok)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "wonderland", password)
		require.Len(t, console.promptLabels, 1)
		assert.Equal(t, "Username for "+url, console.promptLabels[0])
		require.Len(t, console.secretLabels, 1)
		assert.Equal(t, "Passphrase for "+url+": ", console.secretLabels[0])
	})

	t.Run("failed username prompt skips the password prompt", func(t *testing.T) {
		console := &fakeConsole{promptErr: ErrPromptUnavailable}
		cbs := InteractiveCallbacks(ctx, console, WithPinentryProgram(missingHelper(t)))

		_, _, ok := cbs.GetUsernamePassword(url)
		assert.False(t, ok)
		assert.Empty(t, console.secretLabels, "password must not be requested after a failed username prompt")
	})

	t.Run("failed password prompt yields nothing", func(t *testing.T) {
		console := &fakeConsole{
			promptValues: []string{"alice"},
			secretErr:    ErrPromptUnavailable,
		}
		cbs := InteractiveCallbacks(ctx, console, WithPinentryProgram(missingHelper(t)))

		_, _, ok := cbs.GetUsernamePassword(url)
		assert.False(t, ok)
	})
}

func TestInteractiveCallbacksGetSSHKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("returns keys from the configured directory", func(t *testing.T) {
		dir := t.TempDir()
		keyPath := filepath.Join(dir, "id_ed25519")
		require.NoError(t, os.WriteFile(keyPath, []byte("key"), 0o600))

		cbs := InteractiveCallbacks(ctx, &fakeConsole{}, WithSSHDir(dir))
		assert.Equal(t, []string{keyPath}, cbs.GetSSHKeys("git"))
	})

	t.Run("empty directory is a valid result", func(t *testing.T) {
		cbs := InteractiveCallbacks(ctx, &fakeConsole{}, WithSSHDir(t.TempDir()))
		assert.Empty(t, cbs.GetSSHKeys("git"))
	})
}

func TestInteractiveCallbacksProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("no renderer means no progress callback", func(t *testing.T) {
		console := &fakeConsole{progress: os.Stderr}
		cbs := InteractiveCallbacks(ctx, console)
		assert.Nil(t, cbs.Progress)
	})

	t.Run("non-interactive console means no progress callback", func(t *testing.T) {
		cbs := InteractiveCallbacks(ctx, &fakeConsole{},
			WithProgressRenderer(&recordingRenderer{}))
		assert.Nil(t, cbs.Progress)
	})

	t.Run("renderer receives forwarded events", func(t *testing.T) {
		renderer := &recordingRenderer{}
		console := &fakeConsole{progress: os.Stderr}
		cbs := InteractiveCallbacks(ctx, console, WithProgressRenderer(renderer))

		require.NotNil(t, cbs.Progress)
		cbs.Progress(Progress{BytesDownloaded: 42, ObjectsReceived: 1, TotalObjects: 10})
		require.Len(t, renderer.events, 1)
		assert.Equal(t, uint64(42), renderer.events[0].BytesDownloaded)
	})
}
