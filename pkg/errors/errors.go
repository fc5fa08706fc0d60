package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Авторизация
	ErrAPIKeyRequired    = fmt.Errorf("API key required. Set VIRTUSIM_API_KEY atau gunakan Authorization header")
	ErrInvalidAuthHeader = fmt.Errorf("Invalid Authorization header. Gunakan format: Bearer <api_key>")

	// Вышестоящий провайдер
	ErrUpstreamUnavailable = fmt.Errorf("VirtuSIM API error")
	ErrUpstreamUnexpected  = fmt.Errorf("Internal server error")
)

// HttpError несёт код ответа, сообщение для клиента и внутреннюю причину для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus сопоставляет доменную ошибку с HTTP-кодом.
func HTTPStatus(err error) int {
	var httpErr *HttpError
	var invalid *InvalidInputError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrAPIKeyRequired), errors.Is(err, ErrInvalidAuthHeader):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
