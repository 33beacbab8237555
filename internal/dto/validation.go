package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/edu-admin-console/internal/models"
)

// NewValidator returns a validator with the console's custom rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators adds sessionmode, userrole, inquirystatus and civildate.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("sessionmode", func(fl validator.FieldLevel) bool {
		return models.SessionMode(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("inquirystatus", func(fl validator.FieldLevel) bool {
		return models.InquiryStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("civildate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
}

// Describe turns the first validation failure into a form-style message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		if err != nil {
			return err.Error()
		}
		return ""
	}
	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "email", "url":
		return fmt.Sprintf("%s must be a valid %s", field, fe.Tag())
	case "civildate":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
