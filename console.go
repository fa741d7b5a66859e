// Package gitremote provides the interactive console surface shared by the
// credential resolver and the sync reporter.
package gitremote

import (
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// Console is the single user-facing interaction surface. It serves prompts
// for the credential resolver and labeled output streams for the sync
// reporter. How values are rendered is the implementation's concern.
//
// Implementations need not be safe for concurrent use; the resolver
// serializes all access so only one prompt is ever in flight.
type Console interface {
	// Prompt requests a plaintext line of input under the given label.
	Prompt(label string) (string, error)

	// PromptSecret requests a masked line of input under the given label.
	PromptSecret(label string) (string, error)

	// Output is the stream for informational messages.
	Output() io.Writer

	// Warning is the stream for warnings.
	Warning() io.Writer

	// Hint is the stream for hints following a warning block.
	Hint() io.Writer

	// ProgressWriter returns the stream progress indicators may be drawn on,
	// or nil when the console is not interactive.
	ProgressWriter() io.Writer
}

// Terminal implements Console over explicit stdio streams, using survey
// prompts for input.
type Terminal struct {
	in     terminal.FileReader
	out    terminal.FileWriter
	errOut io.Writer
}

// NewTerminal creates a terminal console over the given streams. Pass
// os.Stdin, os.Stdout, and os.Stderr for the process terminal.
func NewTerminal(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// Prompt requests a plaintext line of input under the given label.
// A failure here is terminal for the resolution attempt; there is no
// further fallback.
func (t *Terminal) Prompt(label string) (string, error) {
	var value string
	if err := survey.AskOne(&survey.Input{Message: label}, &value, t.stdio()); err != nil {
		return "", WrapError(ErrPromptUnavailable, err.Error())
	}
	return value, nil
}

// PromptSecret requests a masked line of input under the given label.
func (t *Terminal) PromptSecret(label string) (string, error) {
	var value string
	if err := survey.AskOne(&survey.Password{Message: label}, &value, t.stdio()); err != nil {
		return "", WrapError(ErrPromptUnavailable, err.Error())
	}
	return value, nil
}

// Output returns the informational stream.
func (t *Terminal) Output() io.Writer {
	return t.out
}

// Warning returns the warning stream.
func (t *Terminal) Warning() io.Writer {
	return t.errOut
}

// Hint returns the hint stream.
func (t *Terminal) Hint() io.Writer {
	return t.errOut
}

// ProgressWriter returns the error stream when it is a terminal, nil
// otherwise. Progress indicators are only worth drawing interactively.
func (t *Terminal) ProgressWriter() io.Writer {
	if f, ok := t.errOut.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return t.errOut
	}
	return nil
}

func (t *Terminal) stdio() survey.AskOpt {
	return survey.WithStdio(t.in, t.out, t.errOut)
}
