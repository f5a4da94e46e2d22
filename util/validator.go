package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("collectionname", validateCollectionName)
	validate.RegisterValidation("targetsize", validateTargetSize)
}

func validateCollectionName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return strings.TrimSpace(name) != "" && len(name) <= 50
}

func validateTargetSize(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "3-4", "5-6", "7+":
		return true
	}
	return false
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
