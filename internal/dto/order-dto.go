package dto

import "virtusim-backend/pkg/constants"

type CreateOrderDTO struct {
	Service  string `json:"service" validate:"required"`
	Operator string `json:"operator" validate:"required,virtusim_operator"`
}

type OrderStatusDTO struct {
	OrderID string `json:"order_id" param:"order_id" validate:"required"`
}

type SetStatusDTO struct {
	OrderID string                `json:"order_id" validate:"required"`
	Status  constants.OrderStatus `json:"status" validate:"required,order_status"`
}
