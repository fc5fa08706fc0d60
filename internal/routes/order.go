package routes

import (
	"virtusim-backend/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runOrderRouter(e *echo.Echo, orderCtrl *controllers.OrderController, requireAPIKey echo.MiddlewareFunc) {
	e.POST("/order", orderCtrl.CreateOrder, requireAPIKey)
	e.GET("/active-orders", orderCtrl.GetActiveOrders, requireAPIKey)
	e.GET("/status/:order_id", orderCtrl.GetOrderStatus, requireAPIKey)
	e.PUT("/status", orderCtrl.SetOrderStatus, requireAPIKey)
	e.GET("/services", orderCtrl.GetServices, requireAPIKey)
}
