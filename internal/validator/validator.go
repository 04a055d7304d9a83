// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fintrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("account_role", validateAccountRole)
	}
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.Kind(fl.Field().String()).Valid()
}

func validateAccountRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}
