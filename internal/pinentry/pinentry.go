// Package pinentry obtains passphrases by delegating to an external
// secure-entry helper program speaking the Assuan protocol over its standard
// input and output.
//
// Running the helper out-of-process means the calling process's own terminal
// state is not needed to display the secret prompt, and platform-specific
// secure input widgets can be used. A missing or misbehaving helper is a
// routine condition on many systems, so every failure mode collapses to "no
// secret obtained" and the caller falls back to the next strategy.
package pinentry

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/chainguard-dev/clog"

	"github.com/input-output-hk/catalyst-forge-libs/gitremote/internal/assuan"
)

// DefaultProgram is the secure-entry helper spawned when none is configured.
const DefaultProgram = "pinentry"

// responsePrefix marks helper output lines that carry a data payload. Any
// other response line is ignored.
const responsePrefix = "D "

// Client runs a secure-entry helper to prompt for a passphrase.
type Client struct {
	// Program is the helper executable to spawn. Defaults to DefaultProgram.
	Program string
}

// GetPin asks the helper for the passphrase protecting access to url.
//
// The helper is spawned with piped stdin/stdout; a fixed four-line request
// script is written, then all output is read until the helper closes its
// stream. The helper's exit status is not authoritative - the presence of a
// valid data response line is. The first data line is decoded and returned;
// scanning stops there.
//
// The second return value is false whenever no secret was obtained, for any
// reason: helper not spawnable, no data line, undecodable payload. No
// internal timeout is applied, but the helper is bound to ctx so the caller
// can cancel a hung helper.
func (c *Client) GetPin(ctx context.Context, url string) (string, bool) {
	log := clog.FromContext(ctx)

	program := c.Program
	if program == "" {
		program = DefaultProgram
	}

	cmd := exec.CommandContext(ctx, program)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", false
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", false
	}
	if err := cmd.Start(); err != nil {
		log.Info("secure-entry helper unavailable", "program", program)
		return "", false
	}

	request := fmt.Sprintf(
		"SETTITLE git passphrase\n"+
			"SETDESC Enter passphrase for %s\n"+
			"SETPROMPT Passphrase:\n"+
			"GETPIN\n",
		assuan.Escape(url),
	)
	if _, err := io.WriteString(stdin, request); err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		return "", false
	}
	_ = stdin.Close()

	out, readErr := io.ReadAll(stdout)
	_ = cmd.Wait()
	if readErr != nil {
		return "", false
	}

	for _, line := range strings.Split(string(out), "\n") {
		encoded, ok := strings.CutPrefix(line, responsePrefix)
		if !ok {
			continue
		}
		pin, err := assuan.Decode(encoded)
		if err != nil {
			log.Info("discarding undecodable secure-entry response")
			return "", false
		}
		return pin, true
	}
	return "", false
}
