package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Indian phone: 10 digits starting with 6-9. Pincode: exactly 6 digits.
var (
	indianPhoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRegex     = regexp.MustCompile(`^\d{6}$`)
)

func IsValidIndianPhone(phone string) bool {
	return indianPhoneRegex.MatchString(phone)
}

func IsValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// RegisterCustomValidators wires the indianphone and pincode binding tags
// into gin's validator engine. Call once at startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("indianphone", func(fl validator.FieldLevel) bool {
		return IsValidIndianPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return IsValidPincode(fl.Field().String())
	})
}
