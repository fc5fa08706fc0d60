package integrations

import (
	"context"
)

// Действия API VirtuSIM (поле action).
const (
	ActionOrder       = "order"
	ActionActiveOrder = "active_order"
	ActionStatus      = "status"
	ActionSetStatus   = "set_status"
	ActionServices    = "services"
)

// SMSProvider: вышестоящий провайдер виртуальных номеров.
// Call отправляет одно действие и возвращает разобранный JSON-документ
// (map[string]any, []any или скаляр).
type SMSProvider interface {
	Name() string
	Call(ctx context.Context, apiKey, action string, params map[string]string) (any, error)
}
