package services

import (
	"math"

	"go.uber.org/zap"

	"virtusim-backend/pkg/config"
	apperrors "virtusim-backend/pkg/errors"
	"virtusim-backend/pkg/pricing"
)

type PricingServiceInterface interface {
	Config() config.PricingConfig
	Quote(originalPrice float64) (pricing.Result, error)
	ApplyToServices(doc any) any
}

type PricingService struct {
	cfg    config.PricingConfig
	logger *zap.Logger
}

func NewPricingService(cfg config.PricingConfig, logger *zap.Logger) PricingServiceInterface {
	return &PricingService{cfg: cfg, logger: logger}
}

func (s *PricingService) Config() config.PricingConfig {
	return s.cfg
}

// Quote считает цену для одной позиции. Цена должна быть положительной.
func (s *PricingService) Quote(originalPrice float64) (pricing.Result, error) {
	if math.IsNaN(originalPrice) || math.IsInf(originalPrice, 0) || originalPrice <= 0 {
		return pricing.Result{}, apperrors.NewInvalidInputError("Harga harus lebih dari 0")
	}
	result := pricing.Calculate(originalPrice, s.cfg)
	if result.Degraded() {
		s.logger.Warn("Расчёт цены выполнен с ошибкой", zap.Float64("original_price", originalPrice), zap.String("error", result.Error))
	}
	return result, nil
}

func (s *PricingService) ApplyToServices(doc any) any {
	return pricing.ApplyToServices(doc, s.cfg)
}
