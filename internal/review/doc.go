// Package review contains the chunker and the pass orchestrator.
//
// The chunker splits raw diff text into bounded fragments, cutting at
// hunk markers when one falls in the back half of the window so hunk
// headers are not severed across fragments. The orchestrator reviews
// each fragment with one completion call and, for multi-fragment diffs,
// merges the labeled partial summaries with a final synthesis call.
// Fragment calls run strictly sequentially; each one's retry loop
// completes before the next begins, keeping pressure on the remote
// endpoint predictable.
package review
