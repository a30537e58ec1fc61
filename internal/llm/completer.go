// Package llm is the boundary to the external text-completion service.
// Callers treat every failure as recoverable: each content block pairs the
// LLM path with a deterministic fallback that never fails for a validated
// product record.
package llm

import (
	"context"
	"errors"
)

// Completer is the narrow contract for the text-completion collaborator:
// prompt in, text out. Any error (network, auth, rate limit) must be
// absorbed by the caller via its deterministic fallback.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrDisabled is returned by the Disabled completer. Blocks treat it like
// any other completion failure and take their fallback path.
var ErrDisabled = errors.New("llm: completions disabled")

// Disabled is a Completer that always fails. Used for --no-llm runs and in
// tests that exercise the deterministic paths.
type Disabled struct{}

func (Disabled) Complete(context.Context, string) (string, error) {
	return "", ErrDisabled
}

// Static is a Completer that replays canned replies in order, then fails.
// Test helper for exercising the LLM-enhanced paths without a network.
type Static struct {
	Replies []string
	next    int
}

func (s *Static) Complete(context.Context, string) (string, error) {
	if s.next >= len(s.Replies) {
		return "", errors.New("llm: no more canned replies")
	}
	reply := s.Replies[s.next]
	s.next++
	return reply, nil
}
