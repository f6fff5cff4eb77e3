// FILE: internal/controller/summary_controller.go
package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/pkg/serverutils"
	"ai-videosummary-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// ProgressDelivery pushes partial summary text to a connected client.
// Implemented by the websocket hub; nil disables live progress.
type ProgressDelivery interface {
	Send(userId uuid.UUID, payload interface{})
}

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	Resolve(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type summaryController struct {
	service  service.ISummarizerService
	delivery ProgressDelivery
}

func NewSummaryController(service service.ISummarizerService, delivery ProgressDelivery) ISummaryController {
	return &summaryController{
		service:  service,
		delivery: delivery,
	}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summaries", serverutils.JwtMiddleware)
	h.Post("/resolve", c.Resolve)
	h.Post("/", c.Summarize)
	h.Get("/", c.List)
	h.Delete("/:id", c.Delete)
}

// Resolve returns the preview card for a link without spending quota.
func (c *summaryController) Resolve(ctx *fiber.Ctx) error {
	var req dto.ResolveVideoRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ResolveVideo(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

// Summarize runs the pipeline. A client that accepts text/event-stream
// receives each growing prefix as an SSE event ending in a done event;
// other clients get partial text over the websocket hub and a single JSON
// body with the finished summary and updated usage counters.
func (c *summaryController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	userId := currentUserId(ctx)

	if strings.Contains(ctx.Get(fiber.HeaderAccept), "text/event-stream") {
		return c.summarizeStream(ctx, &req, userId)
	}

	var onProgress func(string)
	if c.delivery != nil && userId != uuid.Nil {
		onProgress = func(partial string) {
			c.delivery.Send(userId, fiber.Map{
				"type":    "summary_progress",
				"partial": partial,
			})
		}
	}

	res, err := c.service.Summarize(ctx.Context(), &req, onProgress)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Summary generated",
		"data":    res,
	})
}

// summarizeStream runs the pipeline inside the response body writer and
// emits SSE events: "progress" per prefix, then "done" with the finished
// summary, or "error". The writer executes after the handler returns, so
// the pipeline runs on a detached context.
func (c *summaryController) summarizeStream(ctx *fiber.Ctx, req *dto.SummarizeRequest, userId uuid.UUID) error {
	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")

	delivery := c.delivery
	svc := c.service

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		writeEvent := func(event string, payload interface{}) {
			data, err := json.Marshal(payload)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
			w.Flush()
		}

		onProgress := func(partial string) {
			writeEvent("progress", fiber.Map{"partial": partial})
			if delivery != nil && userId != uuid.Nil {
				delivery.Send(userId, fiber.Map{
					"type":    "summary_progress",
					"partial": partial,
				})
			}
		}

		res, err := svc.Summarize(context.Background(), req, onProgress)
		if err != nil {
			writeEvent("error", fiber.Map{"message": err.Error()})
			return
		}
		writeEvent("done", res)
	}))
	return nil
}

func (c *summaryController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListSummaries(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

func (c *summaryController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid summary id")
	}

	if err := c.service.DeleteSummary(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Summary deleted",
		"data":    nil,
	})
}

// currentUserId reads the id the jwt middleware stashed in locals.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	raw, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
