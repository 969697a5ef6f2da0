// Package validation wraps go-playground/validator with the field rules
// the quotation API enforces: contact name charsets, E.164-style phone
// numbers, postal codes, WeChat IDs, and 2-decimal money amounts. Every
// failure is reported, not just the first.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sinok/quotation-api/pkg/apperror"
	"github.com/sinok/quotation-api/pkg/money"
)

var (
	nameCharsRe  = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	phoneRe      = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)
	postalRe     = regexp.MustCompile(`^[A-Za-z0-9\s-]{3,10}$`)
	wechatRe     = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	digitsOnlyRe = regexp.MustCompile(`[^\d]`)
)

// Validator validates request DTOs against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with all custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so error paths match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// money.Amount validates as its underlying float value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if a, ok := field.Interface().(money.Amount); ok {
			return a.Float64()
		}
		return nil
	}, money.Amount(0))

	must(v.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		return nameCharsRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !phoneRe.MatchString(s) {
			return false
		}
		digits := digitsOnlyRe.ReplaceAllString(s, "")
		return len(digits) >= 7 && len(digits) <= 15
	}))
	must(v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !postalRe.MatchString(s) {
			return false
		}
		clean := strings.ReplaceAll(s, " ", "")
		return len(clean) >= 3 && len(clean) <= 10
	}))
	must(v.RegisterValidation("wechatid", func(fl validator.FieldLevel) bool {
		return wechatRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("decimal2", func(fl validator.FieldLevel) bool {
		return money.HasMaxTwoDecimals(fl.Field().Float())
	}))

	return &Validator{validate: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates s and returns an apperror carrying every field failure,
// or nil when s is valid.
func (v *Validator) Struct(s interface{}) *apperror.AppError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewBadRequestError(err.Error())
	}

	fieldErrors := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return apperror.NewValidationError(fieldErrors)
}

// fieldPath strips the root struct name from the namespace, leaving the
// JSON path into the payload (e.g. "customer.address.street").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("at least %s entries required", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", fe.Field(), fe.Param())
	case "email":
		return "please enter a valid email address (e.g., john@example.com)"
	case "namechars":
		return fmt.Sprintf("%s can only contain letters, spaces, periods, apostrophes, and hyphens", fe.Field())
	case "intlphone":
		return "must start with + followed by country code and 7-15 digits (e.g., +919876543210)"
	case "postalcode":
		return "please enter a valid postal code (e.g., 110001, 10001, SW1A 1AA)"
	case "wechatid":
		return "WeChat ID must be 3-20 characters (letters, numbers, underscore, hyphen)"
	case "decimal2":
		return "maximum 2 decimal places allowed (e.g., 10.50)"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
