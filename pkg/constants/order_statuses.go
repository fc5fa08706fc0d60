package constants

import (
	"bytes"
	"fmt"
	"strconv"
)

// --- СТАТУСЫ ЗАКАЗОВ VirtuSIM (коды action=set_status) ---
type OrderStatus int

const (
	OrderStatusReady    OrderStatus = 1
	OrderStatusCancel   OrderStatus = 2
	OrderStatusResend   OrderStatus = 3
	OrderStatusComplete OrderStatus = 4
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusReady:    "ready",
	OrderStatusCancel:   "cancel",
	OrderStatusResend:   "resend",
	OrderStatusComplete: "complete",
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// UnmarshalJSON принимает код и числом, и строкой: 2 и "2".
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("некорректный статус заказа %s: %w", data, err)
	}
	*s = OrderStatus(code)
	return nil
}
