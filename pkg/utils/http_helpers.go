package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "virtusim-backend/pkg/errors"
)

const internalErrorMessage = "Internal server error"

type HTTPResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

type HTTPErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Success: true, Data: body, Message: message})
}

// ErrorResponse приводит любую ошибку к единому конверту
// {success:false, message, status_code}. Внутренние детали уходят только в лог.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, message := describeError(err)

	logger = LoggerFromCtx(c.Request().Context(), logger)

	fields := []zap.Field{
		zap.Int("code", code),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err),
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) && httpErr.Context != nil {
		fields = append(fields, zap.Any("context", httpErr.Context))
	}

	if code >= http.StatusInternalServerError {
		logger.Error("HTTP Error", fields...)
	} else {
		logger.Warn("HTTP Error", fields...)
	}

	if c.Response().Committed {
		return nil
	}
	return c.JSON(code, &HTTPErrorResponse{Success: false, Message: message, StatusCode: code})
}

func describeError(err error) (int, string) {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code, fmt.Sprint(echoErr.Message)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", e.Field(), e.Tag()))
		}
		return http.StatusUnprocessableEntity, "Validation error: " + strings.Join(msgs, "; ")
	}

	code := apperrors.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		return code, internalErrorMessage
	}
	return code, err.Error()
}
