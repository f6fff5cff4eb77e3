package serverutils

import (
	"errors"

	"ai-videosummary-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the service error taxonomy into the
// shared response envelope. Quota exhaustion is a 429 with upgrade routing
// data, not a failure.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var quotaErr *dto.QuotaExceededError
		if errors.As(err, &quotaErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":    false,
				"code":       fiber.StatusTooManyRequests,
				"message":    quotaErr.Error(),
				"error_type": "quota_exceeded",
				"data": dto.QuotaExceededData{
					Limit:            quotaErr.Limit,
					Used:             quotaErr.Used,
					ResetsAt:         quotaErr.ResetsAt,
					UpgradeAvailable: true,
				},
			})
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, dto.ErrInvalidCredentials):
			status = fiber.StatusUnauthorized
		case errors.Is(err, dto.ErrNotAuthenticated):
			status = fiber.StatusUnauthorized
		case errors.Is(err, dto.ErrEmailTaken):
			status = fiber.StatusConflict
		case errors.Is(err, dto.ErrInvalidInput):
			status = fiber.StatusBadRequest
		case errors.Is(err, dto.ErrSummaryNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, dto.ErrResolutionFailed), errors.Is(err, dto.ErrGenerationFailed):
			// Collaborator failures are retryable by the caller.
			status = fiber.StatusBadGateway
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": err.Error(),
		})
	}
}
