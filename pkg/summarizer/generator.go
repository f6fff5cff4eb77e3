// Package summarizer produces the summary text for a resolved video. The
// generator is an external collaborator; its output is delivered as a lazy
// sequence of growing prefixes so callers can render partial progress.
package summarizer

import "context"

// VideoContext carries what the generator needs to know about the video.
type VideoContext struct {
	VideoId     string
	Title       string
	ChannelName string
	Duration    string
}

// Generator is the contract for any summarization backend.
type Generator interface {
	// Generate starts producing a summary for the video. The returned
	// stream yields monotonically extending prefixes of the final text and
	// is not restartable.
	Generate(ctx context.Context, video VideoContext) (*Stream, error)
}
