package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"gorlea-notes-be/internal/pkg/apperror"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return apperror.InvalidInput(
				fmt.Sprintf("field '%s' failed on '%s' validation", fe.Field(), fe.Tag()),
			)
		}
		return apperror.InvalidInput(err.Error())
	}
	return nil
}
