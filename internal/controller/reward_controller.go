package controller

import (
	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRewardController interface {
	RegisterRoutes(r fiber.Router)
}

type rewardController struct {
	service service.IRewardService
}

func NewRewardController(service service.IRewardService) IRewardController {
	return &rewardController{service: service}
}

func (c *rewardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reward/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/config", c.GetActiveConfig)
	h.Put("/config", serverutils.RequireRole(), c.SaveConfig)
	h.Post("/preview", c.PreviewPoints)
	h.Post("/redeem", c.RedeemPoints)
	h.Get("/balance/:customerId", c.GetBalance)
}

func (c *rewardController) GetActiveConfig(ctx *fiber.Ctx) error {
	res, err := c.service.GetActiveConfig(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Active reward config", res))
}

func (c *rewardController) SaveConfig(ctx *fiber.Ctx) error {
	var req dto.SaveRewardConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveConfig(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reward config saved", res))
}

func (c *rewardController) PreviewPoints(ctx *fiber.Ctx) error {
	var req dto.PointsPreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PreviewPoints(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Points preview", res))
}

func (c *rewardController) RedeemPoints(ctx *fiber.Ctx) error {
	var req dto.RedeemPointsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RedeemPoints(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Points redeemed", res))
}

func (c *rewardController) GetBalance(ctx *fiber.Ctx) error {
	customerID, err := uuid.Parse(ctx.Params("customerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	res, err := c.service.GetBalance(ctx.Context(), customerID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Points balance", res))
}
