// Revu turns a unified diff into an AI-generated Markdown code review.
//
// It is built for pre-merge pipelines: point it at a diff file, set the
// LLM endpoint configuration in the environment, and it writes a review
// document covering intent, risk, and testing guidance. Large diffs are
// split at hunk boundaries, reviewed fragment by fragment, and merged
// with a final synthesis pass.
//
// Usage:
//
//	revu review --diff changes.patch                 # write code-review.md
//	revu review --diff - --out review.md < changes.patch
//	revu review --diff changes.patch --agents-path docs/REVIEW.md
//
// Required environment: LLM_API_URL, LLM_API_KEY, LLM_MODEL_NAME.
package main
