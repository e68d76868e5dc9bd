package review

import "os"

// fallbackInstructions is the built-in system prompt used when no
// instruction file is found.
const fallbackInstructions = "You are a senior code reviewer. Explain intent, behavior changes, risks, testing impact, " +
	"and rollout/rollback guidance in concise, actionable bullets."

// conventionalPaths are checked, in order, when no readable explicit
// path is given.
var conventionalPaths = []string{".github/AGENTS.md", "AGENTS.md"}

// ResolveInstructions selects the system-role instructions: the explicit
// path if provided, then the conventional repository paths, then the
// built-in fallback. The first readable file wins; it never fails.
func ResolveInstructions(explicit string) string {
	candidates := conventionalPaths
	if explicit != "" {
		candidates = append([]string{explicit}, conventionalPaths...)
	}
	for _, p := range candidates {
		if data, err := os.ReadFile(p); err == nil {
			return string(data)
		}
	}
	return fallbackInstructions
}
