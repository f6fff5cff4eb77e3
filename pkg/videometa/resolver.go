// Package videometa resolves a submitted video link into display metadata.
// The resolver is an external collaborator: implementations talk to a video
// platform, the rest of the system only sees this contract.
package videometa

import (
	"context"
	"regexp"
)

// Metadata is what a resolver returns for one video.
type Metadata struct {
	VideoId     string
	Title       string
	Thumbnail   string
	Duration    string
	ChannelName string
	PublishedAt string
}

// Resolver fetches metadata for an extracted video id.
type Resolver interface {
	Resolve(ctx context.Context, videoId string) (*Metadata, error)
}

// Recognized source-link shapes: bare watch link, short link, embed link.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/embed/[\w-]+`),
}

var videoIdPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ValidateURL reports whether the input matches a recognized link shape.
func ValidateURL(url string) bool {
	for _, p := range urlPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// ExtractVideoId derives the video identifier from a recognized link.
// Returns "" when the link does not carry one.
func ExtractVideoId(url string) string {
	m := videoIdPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
