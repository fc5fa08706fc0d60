// pkg/utils/ctxutils.go

package utils

import (
	"context"

	"go.uber.org/zap"

	"virtusim-backend/pkg/contextkeys"
	apperrors "virtusim-backend/pkg/errors"
)

func WithAPIKey(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, contextkeys.APIKeyKey, apiKey)
}

// GetAPIKeyFromCtx возвращает ключ, который положил APIKeyMiddleware.
func GetAPIKeyFromCtx(ctx context.Context) (string, error) {
	apiKey, ok := ctx.Value(contextkeys.APIKeyKey).(string)
	if !ok || apiKey == "" {
		return "", apperrors.ErrAPIKeyRequired
	}
	return apiKey, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	requestID, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return requestID
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, contextkeys.LoggerKey, logger)
}

// LoggerFromCtx возвращает логгер запроса (с request_id) или fallback.
func LoggerFromCtx(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if logger, ok := ctx.Value(contextkeys.LoggerKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
