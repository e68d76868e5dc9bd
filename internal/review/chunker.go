package review

import "strings"

const (
	// defaultMaxChars bounds fragment size when no limit is given.
	defaultMaxChars = 12000
	// defaultMaxChunks bounds how many boundary-seeking cuts are made.
	defaultMaxChunks = 12
)

// hunkMarker is the preferred cut point: a newline followed by a unified
// diff hunk header.
const hunkMarker = "\n@@"

// Chunk splits text into an ordered sequence of fragments of at most
// maxChars bytes each. Cuts prefer the last hunk marker in the current
// window, provided it lies past the window midpoint; otherwise the cut
// falls at the naive boundary. Once maxChunks fragments have been emitted
// any remaining text becomes one final oversized fragment, so the
// concatenation of the result always reconstructs the input exactly.
func Chunk(text string, maxChars, maxChunks int) []string {
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	if maxChunks <= 0 {
		maxChunks = defaultMaxChunks
	}
	if len(text) <= maxChars {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) && len(chunks) < maxChunks {
		end := min(start+maxChars, len(text))
		cut := strings.LastIndex(text[start:end], hunkMarker)
		if cut == -1 || cut <= maxChars/2 {
			cut = end
		} else {
			cut += start
		}
		chunks = append(chunks, text[start:cut])
		start = cut
	}
	if start < len(text) {
		// Chunk budget exhausted: keep the whole remainder rather than
		// silently dropping diff tail content.
		chunks = append(chunks, text[start:])
	}
	return chunks
}
