package gitremote

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHomePath expands a leading "~/" to the HOME environment variable, as
// git does for config paths like core.excludesFile. The path is returned
// unchanged when it has no "~/" prefix or HOME is unset; absence of the
// variable is not an error.
func ExpandHomePath(path string) string {
	if remainder, ok := strings.CutPrefix(path, "~/"); ok {
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, remainder)
		}
	}
	return path
}
