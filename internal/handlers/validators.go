package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// init installs custom binding validations used by the request DTOs.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// currencycode: a three-letter uppercase ISO 4217 style code.
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, r := range code {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return true
	})
}
