package controllers

import (
	"net/http"
	"time"

	"virtusim-backend/internal/dto"
	"virtusim-backend/pkg/config"

	"github.com/labstack/echo/v4"
)

const (
	ServiceName    = "VirtuSIM API Backend"
	ServiceVersion = "1.0.0"
)

type SystemController struct {
	cfg *config.Config
	now func() time.Time
}

func NewSystemController(cfg *config.Config) *SystemController {
	return &SystemController{cfg: cfg, now: time.Now}
}

func (c *SystemController) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.ServiceInfoDTO{
		Message:          ServiceName,
		Version:          ServiceVersion,
		Status:           "running",
		APIKeyConfigured: c.cfg.APIKeyConfigured(),
		PricingConfig: dto.PricingConfigDTO{
			MarkupPercentage: c.cfg.Pricing.MarkupPercentage,
			FixedMarkup:      c.cfg.Pricing.FixedMarkup,
			MinPrice:         c.cfg.Pricing.MinPrice,
		},
		Endpoints: map[string]string{
			"POST /order":                   "Buat pesanan baru",
			"GET /active-orders":            "Dapatkan pesanan aktif",
			"GET /status/{order_id}":        "Cek status pesanan",
			"PUT /status":                   "Update status pesanan",
			"GET /services":                 "Dapatkan layanan tersedia (dengan harga jual)",
			"GET /pricing/{original_price}": "Hitung harga jual",
			"GET /health":                   "Health check",
			"GET /metrics":                  "Prometheus metrics",
		},
	})
}

func (c *SystemController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.HealthDTO{
		Status:           "healthy",
		Service:          ServiceName,
		APIKeyConfigured: c.cfg.APIKeyConfigured(),
		Timestamp:        c.now().UTC(),
	})
}
