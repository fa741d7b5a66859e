package gitremote

import (
	"bytes"
	"errors"
	"io"
)

// fakeConsole implements Console for testing. It records prompt labels,
// serves scripted responses, and captures output streams in buffers.
type fakeConsole struct {
	promptLabels []string
	secretLabels []string

	promptValues []string
	secretValues []string

	promptErr error
	secretErr error

	out      bytes.Buffer
	warn     bytes.Buffer
	hint     bytes.Buffer
	progress io.Writer
}

func (c *fakeConsole) Prompt(label string) (string, error) {
	c.promptLabels = append(c.promptLabels, label)
	if c.promptErr != nil {
		return "", c.promptErr
	}
	if len(c.promptValues) == 0 {
		return "", nil
	}
	value := c.promptValues[0]
	c.promptValues = c.promptValues[1:]
	return value, nil
}

func (c *fakeConsole) PromptSecret(label string) (string, error) {
	c.secretLabels = append(c.secretLabels, label)
	if c.secretErr != nil {
		return "", c.secretErr
	}
	if len(c.secretValues) == 0 {
		return "", nil
	}
	value := c.secretValues[0]
	c.secretValues = c.secretValues[1:]
	return value, nil
}

func (c *fakeConsole) Output() io.Writer  { return &c.out }
func (c *fakeConsole) Warning() io.Writer { return &c.warn }
func (c *fakeConsole) Hint() io.Writer    { return &c.hint }

func (c *fakeConsole) ProgressWriter() io.Writer { return c.progress }

// brokenConsole is a Console whose output streams fail every write.
type brokenConsole struct {
	fakeConsole
}

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errBrokenPipe }

func (c *brokenConsole) Output() io.Writer  { return failingWriter{} }
func (c *brokenConsole) Warning() io.Writer { return failingWriter{} }
func (c *brokenConsole) Hint() io.Writer    { return failingWriter{} }
