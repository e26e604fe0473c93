package controller

import (
	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWarehouseController interface {
	RegisterRoutes(r fiber.Router)
}

type warehouseController struct {
	service service.IWarehouseService
}

func NewWarehouseController(service service.IWarehouseService) IWarehouseController {
	return &warehouseController{service: service}
}

func (c *warehouseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/warehouse/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("fulfiller"))
	h.Get("", c.GetWarehouses)
	h.Post("", c.CreateWarehouse)
	h.Put(":id", c.UpdateWarehouse)
	h.Delete(":id", c.DeleteWarehouse)
	h.Get("/stock/low", c.GetLowStock)
	h.Get(":id/stock", c.GetStockLevels)
	h.Post(":id/stock/adjust", c.AdjustStock)
	h.Post("/stock/transfer", c.TransferStock)
}

func (c *warehouseController) GetWarehouses(ctx *fiber.Ctx) error {
	res, err := c.service.GetWarehouses(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Warehouses", res))
}

func (c *warehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	var req dto.CreateWarehouseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateWarehouse(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Warehouse created", res))
}

func (c *warehouseController) UpdateWarehouse(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse ID")
	}

	var req dto.UpdateWarehouseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateWarehouse(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Warehouse updated", res))
}

func (c *warehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse ID")
	}

	if err := c.service.DeleteWarehouse(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Warehouse deleted", nil))
}

func (c *warehouseController) GetStockLevels(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse ID")
	}

	res, err := c.service.GetStockLevels(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Stock levels", res))
}

func (c *warehouseController) GetLowStock(ctx *fiber.Ctx) error {
	res, err := c.service.GetLowStock(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Low stock", res))
}

func (c *warehouseController) AdjustStock(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse ID")
	}

	var req dto.AdjustStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AdjustStock(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Stock adjusted", res))
}

func (c *warehouseController) TransferStock(ctx *fiber.Ctx) error {
	var req dto.TransferStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.TransferStock(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Stock transferred", nil))
}
