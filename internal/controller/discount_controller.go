package controller

import (
	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDiscountController interface {
	RegisterRoutes(r fiber.Router)
}

type discountController struct {
	service service.IDiscountService
}

func NewDiscountController(service service.IDiscountService) IDiscountController {
	return &discountController{service: service}
}

func (c *discountController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discount/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", serverutils.RequireRole(), c.Create)
	h.Delete(":id", serverutils.RequireRole(), c.Deactivate)
	h.Post("/redeem", c.Redeem)
}

func (c *discountController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discounts", res))
}

func (c *discountController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDiscountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount created", res))
}

func (c *discountController) Deactivate(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid discount ID")
	}

	if err := c.service.Deactivate(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Discount deactivated", nil))
}

func (c *discountController) Redeem(ctx *fiber.Ctx) error {
	var req dto.RedeemDiscountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Redeem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount applied", res))
}
