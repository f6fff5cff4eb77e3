package videometa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	cases := []struct {
		url   string
		valid bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?v=abc123", true},
		{"http://www.youtube.com/watch?v=abc-123", true},
		{"https://youtu.be/abc123", true},
		{"https://www.youtube.com/embed/abc123", true},
		{"https://vimeo.com/abc123", false},
		{"https://www.youtube.com/playlist?list=xyz", false},
		{"not a url", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidateURL(tc.url), "url: %s", tc.url)
	}
}

func TestExtractVideoId(t *testing.T) {
	cases := []struct {
		url string
		id  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=abc123&t=30s", "abc123"},
		{"https://youtu.be/abc123", "abc123"},
		{"https://youtu.be/abc123?si=share", "abc123"},
		{"https://www.youtube.com/embed/xyz789", "xyz789"},
		{"https://vimeo.com/abc123", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.id, ExtractVideoId(tc.url), "url: %s", tc.url)
	}
}
