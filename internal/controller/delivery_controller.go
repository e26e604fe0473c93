package controller

import (
	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDeliveryController interface {
	RegisterRoutes(r fiber.Router)
}

type deliveryController struct {
	service service.IDeliveryService
}

func NewDeliveryController(service service.IDeliveryService) IDeliveryController {
	return &deliveryController{service: service}
}

func (c *deliveryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/delivery/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("fulfiller"))
	h.Get("/agents", c.GetAgents)
	h.Post("/agents", c.CreateAgent)
	h.Get("/agents/:agentId/assignments", c.GetAgentAssignments)
	h.Post("/assignments", c.Assign)
	h.Get("/assignments/:orderId", c.GetAssignment)
	h.Post("/assignments/:orderId/complete", c.Complete)
}

func (c *deliveryController) GetAgents(ctx *fiber.Ctx) error {
	res, err := c.service.GetAgents(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Delivery agents", res))
}

func (c *deliveryController) CreateAgent(ctx *fiber.Ctx) error {
	var req dto.CreateDeliveryAgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateAgent(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Delivery agent created", res))
}

func (c *deliveryController) GetAgentAssignments(ctx *fiber.Ctx) error {
	agentID, err := uuid.Parse(ctx.Params("agentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid agent ID")
	}

	res, err := c.service.GetAgentAssignments(ctx.Context(), agentID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Open assignments", res))
}

func (c *deliveryController) Assign(ctx *fiber.Ctx) error {
	var req dto.AssignDeliveryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Assign(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Delivery assigned", res))
}

func (c *deliveryController) GetAssignment(ctx *fiber.Ctx) error {
	orderID, err := uuid.Parse(ctx.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order ID")
	}

	res, err := c.service.GetAssignment(ctx.Context(), orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Delivery assignment", res))
}

func (c *deliveryController) Complete(ctx *fiber.Ctx) error {
	orderID, err := uuid.Parse(ctx.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order ID")
	}

	failed := ctx.QueryBool("failed", false)

	res, err := c.service.CompleteAssignment(ctx.Context(), orderID, failed)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Delivery completed", res))
}
