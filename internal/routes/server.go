package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"virtusim-backend/pkg/config"
	"virtusim-backend/pkg/customvalidator"
	apperrors "virtusim-backend/pkg/errors"
	"virtusim-backend/pkg/middleware"
	"virtusim-backend/pkg/utils"
)

// NewEcho создаёт echo с общими middleware: логирование запросов, метрики,
// перехват паник, CORS, валидатор и единый конверт ошибок.
func NewEcho(cfg *config.Config, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	e.Validator = utils.NewValidator(v)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = utils.ErrorResponse(c, err, logger)
	}

	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics())
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			return apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderRequestID},
		AllowCredentials: true,
		ExposeHeaders:    []string{middleware.HeaderRequestID},
	}))
	e.Use(middleware.InjectLogger(logger))

	return e, nil
}
