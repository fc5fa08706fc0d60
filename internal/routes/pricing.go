package routes

import (
	"virtusim-backend/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runPricingRouter(e *echo.Echo, pricingCtrl *controllers.PricingController) {
	e.GET("/pricing/:original_price", pricingCtrl.CalculatePrice)
}
