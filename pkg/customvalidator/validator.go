// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"virtusim-backend/pkg/constants"
)

// RegisterCustomValidations регистрирует правила для DTO VirtuSIM.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("virtusim_operator", isVirtuSIMOperator); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_status", isOrderStatus); err != nil {
		return err
	}
	return nil
}

func isVirtuSIMOperator(fl validator.FieldLevel) bool {
	return constants.IsValidOperator(fl.Field().String())
}

func isOrderStatus(fl validator.FieldLevel) bool {
	return constants.OrderStatus(fl.Field().Int()).IsValid()
}
