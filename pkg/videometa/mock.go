package videometa

import (
	"context"
	"errors"
)

// MockResolver returns fixed metadata for offline development and tests.
type MockResolver struct {
	// Fail forces every Resolve call to error.
	Fail bool
}

var _ Resolver = &MockResolver{}

// ErrMockResolver is the failure produced when Fail is set.
var ErrMockResolver = errors.New("mock resolver unavailable")

func (r *MockResolver) Resolve(ctx context.Context, videoId string) (*Metadata, error) {
	if r.Fail {
		return nil, ErrMockResolver
	}
	return &Metadata{
		VideoId:     videoId,
		Title:       "Advanced React Patterns: Hooks, Context, and Performance Optimization",
		Thumbnail:   "https://images.pexels.com/photos/1181244/pexels-photo-1181244.jpeg",
		Duration:    "18:42",
		ChannelName: "React Mastery",
		PublishedAt: "2024-12-08",
	}, nil
}
