// Package validator turns struct tag constraints into ValidationFailure
// errors. The same custom rules are registered with Gin's binding engine so
// request payloads and domain entities are checked the same way.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BRL": true, "CAD": true, "CHF": true,
	"CNY": true, "CZK": true, "DKK": true, "EUR": true, "GBP": true,
	"HKD": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"ISK": true, "JPY": true, "KRW": true, "MXN": true, "MYR": true,
	"NOK": true, "NZD": true, "PHP": true, "PLN": true, "RON": true,
	"SAR": true, "SEK": true, "SGD": true, "THB": true, "TRY": true,
	"TWD": true, "USD": true, "ZAR": true,
}

var (
	mu       sync.Mutex
	validate = newValidate()
	rules    = map[string]validator.Func{
		"iso4217":     validateISO4217,
		"decimal_gt":  validateDecimalGT,
		"decimal_gte": validateDecimalGTE,
	}
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
	return v
}

func init() {
	for tag, fn := range rules {
		_ = validate.RegisterValidation(tag, fn)
	}
}

// RegisterRule adds a custom rule, e.g. an enum check owned by the models package.
func RegisterRule(tag string, fn func(value string) bool) {
	mu.Lock()
	defer mu.Unlock()

	rule := func(fl validator.FieldLevel) bool { return fn(fl.Field().String()) }
	rules[tag] = rule
	_ = validate.RegisterValidation(tag, rule)
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
		for tag, fn := range rules {
			_ = v.RegisterValidation(tag, fn)
		}
	}
}

// Struct validates s and returns a VALIDATION_FAILED AppError listing every
// violated field, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) {
		return apperrors.Wrap(apperrors.ErrValidationFailed, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperrors.WithMessage(apperrors.ErrValidationFailed, strings.Join(msgs, "; "))
}

// Failure builds a VALIDATION_FAILED error for rules that tags cannot express.
func Failure(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrValidationFailed, fmt.Sprintf(format, args...))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fe, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fe
	}
	return ok
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt", "decimal_gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "decimal_gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "iso4217":
		return field + " must be an ISO 4217 currency code"
	}
	return fmt.Sprintf("%s is not a valid %s", field, fe.Tag())
}

// jsonFieldName reports fields by their JSON name so messages match the API.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// decimalValue exposes decimals to the rule functions as strings. A NULL
// NullDecimal becomes nil so that omitempty skips it and required rejects it.
func decimalValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case decimal.Decimal:
		return v.String()
	case decimal.NullDecimal:
		if !v.Valid {
			return nil
		}
		return v.Decimal.String()
	}
	return nil
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateDecimalGT(fl validator.FieldLevel) bool {
	return compareDecimal(fl, func(c int) bool { return c > 0 })
}

func validateDecimalGTE(fl validator.FieldLevel) bool {
	return compareDecimal(fl, func(c int) bool { return c >= 0 })
}

func compareDecimal(fl validator.FieldLevel, ok func(int) bool) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return ok(value.Cmp(bound))
}
