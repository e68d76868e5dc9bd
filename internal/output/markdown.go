package output

import (
	"fmt"
	"os"
	"strings"
)

const header = "# AI PR Review"

// DefaultPath is where the review document is written unless overridden.
const DefaultPath = "code-review.md"

// Document assembles the final Markdown review document from the
// synthesized review body.
func Document(body string) string {
	return header + "\n\n" + strings.TrimSpace(body) + "\n"
}

// Write renders body into the review document at path.
func Write(path, body string) error {
	if err := os.WriteFile(path, []byte(Document(body)), 0o644); err != nil {
		return fmt.Errorf("writing review document: %w", err)
	}
	return nil
}
