package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/DIX2580/salon-website/pkg/errors"
)

// Validator checks request structs against their `validate` tags and
// reports failures as validation errors.
type Validator interface {
	Validate(resource string, obj interface{}) error
}

type structValidator struct {
	v *validator.Validate
}

func New() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &structValidator{v: v}
}

// Validate returns nil or an *errors.AppError of kind validation whose
// message names every failing field, e.g.
// "booking validation failed: name is required, phone is required".
func (s *structValidator) Validate(resource string, obj interface{}) error {
	err := s.v.Struct(obj)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validation(fmt.Sprintf("%s validation failed: %v", resource, err), err)
	}

	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, describe(e))
	}
	return apperrors.Validation(
		fmt.Sprintf("%s validation failed: %s", resource, strings.Join(problems, ", ")),
		err,
	)
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must not be empty", e.Field())
	default:
		return fmt.Sprintf("%s failed %s", e.Field(), e.Tag())
	}
}
