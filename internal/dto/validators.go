package dto

import (
	"fmt"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators attaches the request-level validations to gin's
// binding engine. Call once at startup before routes are registered.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("billmap", validateBillMap)
}

// validateBillMap accepts only maps whose keys are fixed denominations and
// whose quantities are non-negative.
func validateBillMap(fl validator.FieldLevel) bool {
	bills, ok := fl.Field().Interface().(map[string]int64)
	if !ok {
		return false
	}
	for key, qty := range bills {
		if _, ok := domain.ParseDenomination(key); !ok {
			return false
		}
		if qty < 0 {
			return false
		}
	}
	return true
}
