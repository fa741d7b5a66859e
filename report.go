// Package gitremote renders the structured outcome of a reference
// synchronization into user-facing diagnostics.
package gitremote

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportStats describes the outcome of importing refs from a remote.
// It is constructed by the synchronization engine per operation and read
// once by the reporter.
type ImportStats struct {
	// AbandonedCommits are commits no longer reachable after the import.
	// Only the count is surfaced.
	AbandonedCommits []string
}

// FailedRefExport records one reference that could not be exported to the
// remote, together with its failure reason. Reason is a cause chain; wrap
// ErrRefSetFailed somewhere in the chain when the reference itself could not
// be set.
type FailedRefExport struct {
	// Ref is the reference name, e.g. a branch.
	Ref string

	// Reason is the failure cause chain, innermost being the root cause.
	Reason error
}

// refNameHint explains the remote's reference-naming rule that most often
// causes a failure to set a reference. The wording is part of the
// user-visible contract.
const refNameHint = "Hint: Git doesn't allow a branch name that looks like a parent directory of\n" +
	"another (e.g. `foo` and `foo/bar`). Try to rename the branches that failed to\n" +
	"export or their \"parent\" branches."

// PrintImportStats emits a one-line summary of abandoned commits to the
// console's informational stream. Nothing is written when no commits were
// abandoned. Write errors propagate unchanged; they mean the output surface
// itself is broken.
func PrintImportStats(console Console, stats ImportStats) error {
	if len(stats.AbandonedCommits) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(console.Output(),
		"Abandoned %d commits that are no longer reachable.\n",
		len(stats.AbandonedCommits))
	return err
}

// PrintFailedExports emits a warning block listing each failed reference
// export, in the order supplied, with its full cause chain rendered as
// successive ": {cause}" segments. If any failure's reason is specifically
// that the reference could not be set, a fixed hint about reference-naming
// rules follows the list. Nothing is written for an empty list.
func PrintFailedExports(console Console, failures []FailedRefExport) error {
	if len(failures) == 0 {
		return nil
	}
	w := console.Warning()
	if _, err := fmt.Fprintln(w, "Failed to export some branches:"); err != nil {
		return err
	}
	for _, failure := range failures {
		if _, err := fmt.Fprintf(w, "  %s", failure.Ref); err != nil {
			return err
		}
		if err := writeCauseChain(w, failure.Reason); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	for _, failure := range failures {
		if errors.Is(failure.Reason, ErrRefSetFailed) {
			_, err := fmt.Fprintln(console.Hint(), refNameHint)
			return err
		}
	}
	return nil
}

// writeCauseChain walks err's cause chain from the top-level reason to its
// root cause and writes one ": {cause}" segment per link. Each link
// contributes only its own message: when a wrapped message embeds its cause
// as a ": cause" suffix (the fmt.Errorf "%s: %w" convention), the suffix is
// trimmed so causes are not repeated.
func writeCauseChain(w io.Writer, err error) error {
	for link := err; link != nil; link = errors.Unwrap(link) {
		msg := link.Error()
		if cause := errors.Unwrap(link); cause != nil {
			msg = strings.TrimSuffix(msg, ": "+cause.Error())
		}
		if _, werr := fmt.Fprintf(w, ": %s", msg); werr != nil {
			return werr
		}
	}
	return nil
}
