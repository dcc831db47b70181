package main

import (
	"os"
	"strings"

	"github.com/google/uuid"

	"twinforge/internal/cli"
)

func isProfileID(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}

// rewriteDirectProfileLookupArgs makes `twinforge <profile-id>` behave
// like `twinforge profiles show <profile-id>`. Cobra treats the first
// non-flag token as a subcommand, so argv is rewritten before parsing.
// Persistent flags may come first (`twinforge --dir ... <id>`), so the
// first positional token is what gets inspected, not argv[1].
func rewriteDirectProfileLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++ // skip the flag's value
			}
			continue
		}

		// First positional token.
		if isProfileID(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "profiles", "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectProfileLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
