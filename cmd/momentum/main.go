package main

import (
	"os"
	"strings"

	"momentum-cli/internal/cli"
)

// showCommandFor maps a pasted id to the subcommand pair that shows it.
// IDs are generated with a fixed kind prefix, so the prefix is enough.
func showCommandFor(s string) []string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "goal-") && len(s) > len("goal-"):
		return []string{"goals", "show"}
	case strings.HasPrefix(s, "task-") && len(s) > len("task-"):
		return []string{"tasks", "show"}
	case strings.HasPrefix(s, "note-") && len(s) > len("note-"):
		return []string{"notes", "show"}
	}
	return nil
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `momentum <id>` works like `momentum <kind> show <id>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing.
	//
	// Users often pass persistent flags first (e.g. `momentum --dir ... <id>`),
	// so we must find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	insert := func(i int) []string {
		show := showCommandFor(argv[i])
		if show == nil {
			return argv
		}
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, show...)
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Stop flag parsing; next token (if any) is the first positional.
			if i+1 < len(argv) {
				return insert(i + 1)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		return insert(i)
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
