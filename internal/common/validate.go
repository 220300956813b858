package common

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/xcontext"
)

var validate = validator.New()

// Validate checks the struct tags of a request and converts any violation
// into a field-keyed validation error for the response envelope.
func Validate(ctx context.Context, req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		xcontext.Logger(ctx).Errorf("Cannot validate request: %v", err)
		return errorx.Unknown
	}

	fields := map[string]string{}
	for _, ferr := range verrs {
		fields[strings.ToLower(ferr.Field())] = validationMessage(ferr)
	}

	return errorx.NewValidation(fields)
}

func validationMessage(ferr validator.FieldError) string {
	field := strings.ToLower(ferr.Field())
	switch ferr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "The " + field + " must be at least " + ferr.Param() + " characters"
	case "max":
		return "The " + field + " must be at most " + ferr.Param() + " characters"
	case "url":
		return "The " + field + " must be a valid URL"
	default:
		return "The " + field + " is invalid"
	}
}
