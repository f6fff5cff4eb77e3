package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator_PrefixesExtendMonotonically(t *testing.T) {
	gen := &MockGenerator{Text: "one two three four"}
	stream, err := gen.Generate(context.Background(), VideoContext{VideoId: "abc123"})
	require.NoError(t, err)

	var prev string
	var count int
	for {
		prefix, ok := stream.Next()
		if !ok {
			break
		}
		assert.True(t, strings.HasPrefix(prefix, prev), "prefix %q does not extend %q", prefix, prev)
		assert.Greater(t, len(prefix), len(prev))
		prev = prefix
		count++
	}

	require.NoError(t, stream.Err())
	assert.Equal(t, 4, count)
	assert.Equal(t, "one two three four", stream.Text())
}

func TestMockGenerator_FailureEndsStreamWithError(t *testing.T) {
	gen := &MockGenerator{Text: "one two three four", FailAfter: 2}
	stream, err := gen.Generate(context.Background(), VideoContext{})
	require.NoError(t, err)

	var last string
	for {
		prefix, ok := stream.Next()
		if !ok {
			break
		}
		last = prefix
	}

	assert.ErrorIs(t, stream.Err(), ErrMockFailure)
	assert.Equal(t, "one two", last, "partial progress before the failure is still delivered")
}

func TestMockGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &MockGenerator{Text: "one two three"}
	stream, err := gen.Generate(ctx, VideoContext{})
	require.NoError(t, err)

	for {
		if _, ok := stream.Next(); !ok {
			break
		}
	}
	assert.ErrorIs(t, stream.Err(), context.Canceled)
}
