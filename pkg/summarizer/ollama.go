package summarizer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OllamaGenerator streams summaries from a local Ollama instance.
type OllamaGenerator struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ Generator = &OllamaGenerator{}

func NewOllamaGenerator(baseURL, modelName string) *OllamaGenerator {
	return &OllamaGenerator{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func buildPrompt(video VideoContext) string {
	return fmt.Sprintf(
		"Write a clear, multi-paragraph summary of the video %q by %s (duration %s). "+
			"Cover the main topics in order and keep the tone factual.",
		video.Title, video.ChannelName, video.Duration,
	)
}

func (g *OllamaGenerator) Generate(ctx context.Context, video VideoContext) (*Stream, error) {
	payload, err := json.Marshal(ollamaGenerateRequest{
		Model:  g.ModelName,
		Prompt: buildPrompt(video),
		Stream: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := g.BaseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("ollama error: status %d", resp.StatusCode)
	}

	stream := newStream()

	go func() {
		defer resp.Body.Close()

		var text string
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			select {
			case <-ctx.Done():
				stream.finish(ctx.Err())
				return
			default:
			}

			var chunk ollamaGenerateChunk
			if err := json.Unmarshal(scanner.Bytes(), &chunk); err != nil {
				stream.finish(fmt.Errorf("unmarshal chunk: %w", err))
				return
			}
			if chunk.Response != "" {
				text += chunk.Response
				stream.send(text)
			}
			if chunk.Done {
				stream.finish(nil)
				return
			}
		}

		if err := scanner.Err(); err != nil {
			stream.finish(fmt.Errorf("read stream: %w", err))
			return
		}
		// Body ended without a done marker.
		stream.finish(fmt.Errorf("ollama stream ended unexpectedly"))
	}()

	return stream, nil
}
