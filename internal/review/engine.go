package review

import (
	"context"
	"fmt"

	"github.com/dshills/revu/internal/llm"
	"github.com/dshills/revu/internal/logger"
)

// Completer issues one chat-completion exchange. *llm.Client satisfies
// it; tests inject mocks.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// Options bounds the chunking pass.
type Options struct {
	MaxChars  int
	MaxChunks int
}

// Run drives the review pipeline: chunk the diff, review each fragment in
// order, and if more than one fragment was produced, merge the labeled
// partial summaries with one synthesis call. Fragments are reviewed in
// isolation with no shared context between them. Any failed call aborts
// the whole review.
func Run(ctx context.Context, client Completer, diffText, systemText string, opts Options) (string, error) {
	parts := Chunk(diffText, opts.MaxChars, opts.MaxChunks)
	if len(parts) == 1 {
		return reviewFragment(ctx, client, parts[0], systemText)
	}

	logger.Info("diff exceeds chunk limit, reviewing in fragments", "fragments", len(parts))

	summaries := make([]string, 0, len(parts))
	for i, part := range parts {
		logger.Debug("reviewing fragment", "part", i+1, "of", len(parts), "chars", len(part))
		text, err := reviewFragment(ctx, client, part, systemText)
		if err != nil {
			return "", fmt.Errorf("fragment %d of %d: %w", i+1, len(parts), err)
		}
		summaries = append(summaries, fmt.Sprintf("### Part %d\n%s", i+1, text))
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemText},
		{Role: llm.RoleUser, Content: buildSynthesisPrompt(summaries)},
	}
	text, err := client.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("synthesis pass: %w", err)
	}
	return text, nil
}

func reviewFragment(ctx context.Context, client Completer, fragment, systemText string) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemText},
		{Role: llm.RoleUser, Content: buildFragmentPrompt(fragment)},
	}
	return client.Complete(ctx, messages)
}
