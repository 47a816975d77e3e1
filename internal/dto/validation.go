package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// dgt0 validates that a decimal.Decimal field is strictly positive.
func dgt0(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.GreaterThan(decimal.Zero)
}

// RegisterCustomValidations installs the request validation rules used by
// the binding tags in this package.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("dgt0", dgt0)
}
