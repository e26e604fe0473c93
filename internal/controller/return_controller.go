package controller

import (
	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReturnController interface {
	RegisterRoutes(r fiber.Router)
}

type returnController struct {
	service service.IReturnService
}

func NewReturnController(service service.IReturnService) IReturnController {
	return &returnController{service: service}
}

func (c *returnController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/return/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Submit)
	h.Get(":id", c.GetOne)
	h.Post(":id/review", serverutils.RequireRole("reviewer"), c.Review)
	h.Post(":id/complete", serverutils.RequireRole("reviewer"), c.Complete)
	h.Post(":id/appeal", c.SubmitAppeal)
	h.Post(":id/appeal/review", serverutils.RequireRole("reviewer"), c.ReviewAppeal)
}

func (c *returnController) GetAll(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)
	status := ctx.Query("status")

	res, err := c.service.GetAll(ctx.Context(), page, limit, status)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Return requests", res))
}

func (c *returnController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitReturnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Return request submitted", res))
}

func (c *returnController) GetOne(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid return ID")
	}

	res, err := c.service.GetOne(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Return request", res))
}

func (c *returnController) Review(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid return ID")
	}

	reviewerIdStr, _ := ctx.Locals("user_id").(string)
	reviewerID, _ := uuid.Parse(reviewerIdStr)

	var req dto.ReviewReturnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Review(ctx.Context(), id, reviewerID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Return reviewed", res))
}

func (c *returnController) Complete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid return ID")
	}

	res, err := c.service.Complete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Return completed", res))
}

func (c *returnController) SubmitAppeal(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid return ID")
	}

	var req dto.SubmitAppealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitAppeal(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Appeal submitted", res))
}

func (c *returnController) ReviewAppeal(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid return ID")
	}

	var req dto.ReviewAppealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ReviewAppeal(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Appeal reviewed", res))
}
