package review

import (
	"fmt"
	"strings"
)

// userInstructions is the fixed review prompt prepended to every fragment.
const userInstructions = "Explain intent of the following git diff. Summarize per-file themes when possible. Highlight: " +
	"(1) high-level intent, (2) notable APIs/functions touched, (3) risky areas, " +
	"(4) testing implications, (5) migration or rollback notes."

// synthesisInstructions asks the model to merge per-fragment summaries.
const synthesisInstructions = "Combine the following chunk summaries into a single coherent review. Avoid repetition, " +
	"call out cross-file risks, and propose concrete tests."

// buildFragmentPrompt embeds one diff fragment in the review prompt.
func buildFragmentPrompt(fragment string) string {
	return fmt.Sprintf("%s\n\n```diff\n%s\n```", userInstructions, fragment)
}

// buildSynthesisPrompt joins labeled partial summaries under the
// synthesis instructions.
func buildSynthesisPrompt(summaries []string) string {
	return synthesisInstructions + "\n\n" + strings.Join(summaries, "\n\n")
}
