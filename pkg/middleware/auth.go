package middleware

import (
	"virtusim-backend/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// APIKeyMiddleware определяет ключ VirtuSIM для запроса и кладёт его в контекст.
// Без ключа запрос отклоняется до любого обращения к провайдеру.
type APIKeyMiddleware struct {
	configuredKey string
	logger        *zap.Logger
}

func NewAPIKeyMiddleware(configuredKey string, logger *zap.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		configuredKey: configuredKey,
		logger:        logger,
	}
}

func (m *APIKeyMiddleware) RequireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		apiKey, err := utils.ResolveAPIKey(m.configuredKey, c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			m.logger.Warn("APIKeyMiddleware: не удалось определить ключ VirtuSIM", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := utils.WithAPIKey(c.Request().Context(), apiKey)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
