package controllers

import (
	"net/http"
	"strconv"

	"virtusim-backend/internal/services"
	apperrors "virtusim-backend/pkg/errors"
	"virtusim-backend/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PricingController struct {
	pricingService services.PricingServiceInterface
	logger         *zap.Logger
}

func NewPricingController(pricingService services.PricingServiceInterface, logger *zap.Logger) *PricingController {
	return &PricingController{
		pricingService: pricingService,
		logger:         logger.Named("pricing_controller"),
	}
}

// CalculatePrice считает цену без обращения к провайдеру.
func (c *PricingController) CalculatePrice(ctx echo.Context) error {
	raw := ctx.Param("original_price")
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Harga tidak valid", err, map[string]interface{}{"param": raw}),
			c.logger,
		)
	}

	res, err := c.pricingService.Quote(price)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Perhitungan harga berhasil", http.StatusOK)
}
