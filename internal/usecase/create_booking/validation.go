package create_booking

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldErrors ключ сообщения для каждого поля формы
var fieldErrors = map[string]error{
	"Email":      ErrInvalidEmail,
	"PersonName": ErrInvalidPersonName,
	"Voice":      ErrVoiceNotSelected,
}

// validateRequest проверяет поля формы, возвращает ошибку первого невалидного поля
func validateRequest(v *validator.Validate, req *Request) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return ErrInvalidInput
	}

	if mapped, ok := fieldErrors[validationErrors[0].Field()]; ok {
		return mapped
	}
	return ErrInvalidInput
}
