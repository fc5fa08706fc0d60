package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"virtusim-backend/internal/controllers"
	"virtusim-backend/internal/integrations"
	"virtusim-backend/internal/services"
	"virtusim-backend/pkg/config"
	"virtusim-backend/pkg/middleware"
)

type Loggers struct {
	Main    *zap.Logger
	Order   *zap.Logger
	Pricing *zap.Logger
}

// NewLoggers раздаёт именованные дочерние логгеры от одного базового.
func NewLoggers(base *zap.Logger) *Loggers {
	return &Loggers{
		Main:    base,
		Order:   base.Named("order"),
		Pricing: base.Named("pricing"),
	}
}

func InitRouter(e *echo.Echo, provider integrations.SMSProvider, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов", zap.String("provider", provider.Name()))

	// --- 1. СЕРВИСЫ ---
	pricingService := services.NewPricingService(cfg.Pricing, loggers.Pricing)
	orderService := services.NewOrderService(provider, pricingService, loggers.Order)

	// --- 2. КОНТРОЛЛЕРЫ ---
	systemController := controllers.NewSystemController(cfg)
	orderController := controllers.NewOrderController(orderService, loggers.Order)
	pricingController := controllers.NewPricingController(pricingService, loggers.Pricing)

	// --- 3. РОУТЕРЫ ---
	// ключ нужен только маршрутам провайдера; /, /health, /pricing и 404 без него
	apiKeyMW := middleware.NewAPIKeyMiddleware(cfg.VirtuSIM.APIKey, loggers.Main)

	runSystemRouter(e, systemController)
	runOrderRouter(e, orderController, apiKeyMW.RequireAPIKey)
	runPricingRouter(e, pricingController)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}

func runSystemRouter(e *echo.Echo, systemCtrl *controllers.SystemController) {
	e.GET("/", systemCtrl.Root)
	e.GET("/health", systemCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
