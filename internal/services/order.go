package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"virtusim-backend/internal/dto"
	"virtusim-backend/internal/integrations"
	"virtusim-backend/pkg/utils"
)

// OrderServiceInterface: операции над заказами VirtuSIM. Ключ API берётся из
// контекста запроса (его кладёт APIKeyMiddleware).
type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderDTO) (any, error)
	GetActiveOrders(ctx context.Context) (any, error)
	GetOrderStatus(ctx context.Context, orderID string) (any, error)
	SetOrderStatus(ctx context.Context, req dto.SetStatusDTO) (any, error)
	GetServices(ctx context.Context) (any, error)
}

type OrderService struct {
	provider       integrations.SMSProvider
	pricingService PricingServiceInterface
	logger         *zap.Logger
}

func NewOrderService(
	provider integrations.SMSProvider,
	pricingService PricingServiceInterface,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		provider:       provider,
		pricingService: pricingService,
		logger:         logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderDTO) (any, error) {
	utils.LoggerFromCtx(ctx, s.logger).Info("Создание заказа",
		zap.String("service", req.Service),
		zap.String("operator", req.Operator),
	)
	return s.call(ctx, integrations.ActionOrder, map[string]string{
		"service":  req.Service,
		"operator": req.Operator,
	})
}

func (s *OrderService) GetActiveOrders(ctx context.Context) (any, error) {
	return s.call(ctx, integrations.ActionActiveOrder, nil)
}

func (s *OrderService) GetOrderStatus(ctx context.Context, orderID string) (any, error) {
	return s.call(ctx, integrations.ActionStatus, map[string]string{"id": orderID})
}

func (s *OrderService) SetOrderStatus(ctx context.Context, req dto.SetStatusDTO) (any, error) {
	utils.LoggerFromCtx(ctx, s.logger).Info("Смена статуса заказа",
		zap.String("order_id", req.OrderID),
		zap.Stringer("status", req.Status),
	)
	return s.call(ctx, integrations.ActionSetStatus, map[string]string{
		"id":     req.OrderID,
		"status": strconv.Itoa(int(req.Status)),
	})
}

// GetServices возвращает список услуг с продажными ценами.
func (s *OrderService) GetServices(ctx context.Context) (any, error) {
	doc, err := s.call(ctx, integrations.ActionServices, nil)
	if err != nil {
		return nil, err
	}
	return s.pricingService.ApplyToServices(doc), nil
}

func (s *OrderService) call(ctx context.Context, action string, params map[string]string) (any, error) {
	apiKey, err := utils.GetAPIKeyFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.provider.Call(ctx, apiKey, action, params)
	if err != nil {
		utils.LoggerFromCtx(ctx, s.logger).Error("Ошибка обращения к провайдеру",
			zap.String("provider", s.provider.Name()),
			zap.String("action", action),
			zap.Error(err),
		)
		return nil, err
	}
	return doc, nil
}
