// FILE: internal/controller/auth_controller.go
package controller

import (
	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/pkg/serverutils"
	"ai-videosummary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type authController struct {
	session service.ISessionService
}

func NewAuthController(session service.ISessionService) IAuthController {
	return &authController{session: session}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.session.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Account created",
		"data":    res,
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.session.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.session.Logout(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out",
		"data":    nil,
	})
}

// Session reports what the restored session looks like, so the client can
// skip the login screen after a restart.
func (c *authController) Session(ctx *fiber.Ctx) error {
	user := c.session.Current()
	if user == nil {
		return ctx.JSON(fiber.Map{
			"success": true,
			"code":    200,
			"message": "No active session",
			"data":    fiber.Map{"state": string(c.session.State())},
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Session active",
		"data": fiber.Map{
			"state": string(c.session.State()),
			"user":  service.ToUserDTO(user),
		},
	})
}
