package summarizer

import (
	"context"
	"errors"
	"strings"
	"time"
)

const cannedSummary = `This comprehensive React tutorial explores advanced patterns that modern developers need to master. The video begins with an in-depth look at custom hooks, demonstrating how to extract and reuse stateful logic across components effectively.

The presenter then covers Context API optimization techniques, showing how to prevent unnecessary re-renders and structure context providers for maximum performance. Key topics include context splitting, memoization strategies, and when to use multiple contexts versus a single global state.

The final section focuses on performance optimization, covering React.memo, useMemo, useCallback, and the latest concurrent features. Real-world examples demonstrate how these techniques can dramatically improve application performance, especially in data-heavy applications.

Throughout the tutorial, the presenter shares best practices from production environments and common pitfalls to avoid when implementing these patterns.`

// MockGenerator streams a canned summary word by word. Used for offline
// development and in tests.
type MockGenerator struct {
	// Text overrides the canned summary when set.
	Text string
	// Delay between words; zero streams as fast as the consumer pulls.
	Delay time.Duration
	// FailAfter ends the stream with an error after that many words.
	// Zero means never fail.
	FailAfter int
}

var _ Generator = &MockGenerator{}

// ErrMockFailure is the terminal error produced when FailAfter triggers.
var ErrMockFailure = errors.New("mock generator failure")

func (g *MockGenerator) Generate(ctx context.Context, video VideoContext) (*Stream, error) {
	text := g.Text
	if text == "" {
		text = cannedSummary
	}
	words := strings.Fields(text)

	stream := newStream()

	go func() {
		for i := range words {
			if g.Delay > 0 {
				select {
				case <-ctx.Done():
					stream.finish(ctx.Err())
					return
				case <-time.After(g.Delay):
				}
			} else if ctx.Err() != nil {
				stream.finish(ctx.Err())
				return
			}

			if g.FailAfter > 0 && i >= g.FailAfter {
				stream.finish(ErrMockFailure)
				return
			}

			stream.send(strings.Join(words[:i+1], " "))
		}
		stream.finish(nil)
	}()

	return stream, nil
}
