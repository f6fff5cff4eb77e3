package controller

import (
	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/pkg/serverutils"
	"ai-videosummary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	GetPlan(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payments")
	h.Get("/plan", c.GetPlan)
	// Midtrans calls the webhook unauthenticated; the signature check
	// inside the service is the gate.
	h.Post("/webhook", c.Webhook)

	authed := h.Group("", serverutils.JwtMiddleware)
	authed.Post("/checkout", c.Checkout)
	authed.Get("/status", c.Status)
}

func (c *paymentController) GetPlan(ctx *fiber.Ctx) error {
	res, err := c.service.GetPlan(ctx.Context())
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

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	res, err := c.service.CreateCheckout(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Checkout created",
		"data":    res,
	})
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		// Midtrans retries on non-2xx; surface the failure.
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
	})
}

func (c *paymentController) Status(ctx *fiber.Ctx) error {
	res, err := c.service.UpgradeStatus(ctx.Context())
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
