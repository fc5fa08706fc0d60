package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "virtusim-backend/pkg/errors"
)

// ExtractBearerToken достаёт токен из "Bearer <token>". Любой другой формат
// считается отсутствием токена.
func ExtractBearerToken(authHeader string) string {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// ResolveAPIKey: сначала ключ из конфига, потом Bearer из запроса.
// Заголовок в другом формате даёт ErrInvalidAuthHeader, пустой ErrAPIKeyRequired.
func ResolveAPIKey(configuredKey, authHeader string) (string, error) {
	if configuredKey != "" {
		return configuredKey, nil
	}
	if strings.TrimSpace(authHeader) == "" {
		return "", apperrors.ErrAPIKeyRequired
	}
	if token := ExtractBearerToken(authHeader); token != "" {
		return token, nil
	}
	return "", apperrors.ErrInvalidAuthHeader
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
