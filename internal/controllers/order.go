package controllers

import (
	"net/http"

	"virtusim-backend/internal/dto"
	"virtusim-backend/internal/services"
	apperrors "virtusim-backend/pkg/errors"
	"virtusim-backend/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{
		orderService: orderService,
		logger:       logger.Named("order_controller"),
	}
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	var req dto.CreateOrderDTO
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Format JSON tidak valid", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.CreateOrder(ctx.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Pesanan berhasil dibuat", http.StatusOK)
}

func (c *OrderController) GetActiveOrders(ctx echo.Context) error {
	res, err := c.orderService.GetActiveOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Pesanan aktif berhasil diambil", http.StatusOK)
}

func (c *OrderController) GetOrderStatus(ctx echo.Context) error {
	var req dto.OrderStatusDTO
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "ID pesanan tidak valid", err, map[string]interface{}{"param": ctx.Param("order_id")}),
			c.logger,
		)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.GetOrderStatus(ctx.Request().Context(), req.OrderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Status pesanan berhasil diambil", http.StatusOK)
}

func (c *OrderController) SetOrderStatus(ctx echo.Context) error {
	var req dto.SetStatusDTO
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Format JSON tidak valid", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.SetOrderStatus(ctx.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Status pesanan berhasil diupdate", http.StatusOK)
}

func (c *OrderController) GetServices(ctx echo.Context) error {
	res, err := c.orderService.GetServices(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Layanan berhasil diambil", http.StatusOK)
}
