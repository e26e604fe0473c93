package controller

import (
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOpsController interface {
	RegisterRoutes(r fiber.Router)
}

type opsController struct {
	service service.IOpsService
}

func NewOpsController(service service.IOpsService) IOpsController {
	return &opsController{service: service}
}

func (c *opsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ops/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole()) // admin only
	h.Get("/dashboard", c.GetDashboard)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLog)
}

func (c *opsController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}

func (c *opsController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetLogs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs", res))
}

func (c *opsController) GetLog(ctx *fiber.Ctx) error {
	res, err := c.service.GetLog(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Log not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Log", res))
}
