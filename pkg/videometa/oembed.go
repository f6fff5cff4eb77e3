package videometa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// OEmbedResolver resolves metadata through YouTube's public oEmbed
// endpoint. It needs no API key; duration and publish date are not part of
// the oEmbed payload and stay empty.
type OEmbedResolver struct {
	BaseURL string
	Client  *http.Client
}

var _ Resolver = &OEmbedResolver{}

func NewOEmbedResolver() *OEmbedResolver {
	return &OEmbedResolver{
		BaseURL: "https://www.youtube.com/oembed",
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (r *OEmbedResolver) Resolve(ctx context.Context, videoId string) (*Metadata, error) {
	watchURL := "https://www.youtube.com/watch?v=" + url.QueryEscape(videoId)
	endpoint := fmt.Sprintf("%s?url=%s&format=json", r.BaseURL, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oembed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed returned status %d for video %s", resp.StatusCode, videoId)
	}

	var payload oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("oembed decode failed: %w", err)
	}

	return &Metadata{
		VideoId:     videoId,
		Title:       payload.Title,
		Thumbnail:   payload.ThumbnailURL,
		ChannelName: payload.AuthorName,
	}, nil
}
