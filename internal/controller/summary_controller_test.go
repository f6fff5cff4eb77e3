package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-videosummary-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSummarizer struct {
	prefixes []string
	res      *dto.SummarizeResponse
	err      error
}

func (s *stubSummarizer) ResolveVideo(ctx context.Context, req *dto.ResolveVideoRequest) (*dto.VideoMetadataDTO, error) {
	return nil, nil
}

func (s *stubSummarizer) Summarize(ctx context.Context, req *dto.SummarizeRequest, onProgress func(string)) (*dto.SummarizeResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.prefixes {
		if onProgress != nil {
			onProgress(p)
		}
	}
	return s.res, nil
}

func (s *stubSummarizer) ListSummaries(ctx context.Context) ([]dto.SummaryDTO, error) {
	return nil, nil
}

func (s *stubSummarizer) DeleteSummary(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestSummarizeStreamsServerSentEvents(t *testing.T) {
	stub := &stubSummarizer{
		prefixes: []string{"This", "This video"},
		res: &dto.SummarizeResponse{
			Summary: dto.SummaryDTO{Summary: "This video covers testing."},
		},
	}
	ctrl := &summaryController{service: stub}

	app := fiber.New()
	app.Post("/summaries", ctrl.Summarize)

	req := httptest.NewRequest("POST", "/summaries",
		strings.NewReader(`{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	text := string(body)

	first := strings.Index(text, `data: {"partial":"This"}`)
	second := strings.Index(text, `data: {"partial":"This video"}`)
	done := strings.Index(text, "event: done")
	assert.Greater(t, first, -1)
	assert.Greater(t, second, first)
	assert.Greater(t, done, second)
	assert.Contains(t, text, "This video covers testing.")
}

func TestSummarizeStreamReportsPipelineErrors(t *testing.T) {
	stub := &stubSummarizer{err: dto.ErrGenerationFailed}
	ctrl := &summaryController{service: stub}

	app := fiber.New()
	app.Post("/summaries", ctrl.Summarize)

	req := httptest.NewRequest("POST", "/summaries",
		strings.NewReader(`{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "event: error")
	assert.Contains(t, string(body), dto.ErrGenerationFailed.Error())
}

func TestSummarizeWithoutStreamAcceptReturnsJSON(t *testing.T) {
	stub := &stubSummarizer{
		res: &dto.SummarizeResponse{
			Summary: dto.SummaryDTO{Summary: "Plain body."},
		},
	}
	ctrl := &summaryController{service: stub}

	app := fiber.New()
	app.Post("/summaries", ctrl.Summarize)

	req := httptest.NewRequest("POST", "/summaries",
		strings.NewReader(`{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"success":true`)
	assert.Contains(t, string(body), "Plain body.")
}
