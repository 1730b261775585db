package validation

import (
	"reflect"
	"regexp"
	"strings"

	"menumatch/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("menu_name", validateMenuName)
	_ = v.RegisterValidation("menu_price", validateMenuPrice)
	_ = v.RegisterValidation("match_method", validateMatchMethod)
	_ = v.RegisterValidation("menu_category", validateMenuCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMenuName validates that a menu name is non-empty after trimming
// and within a sane length for a menu board entry
func validateMenuName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" {
		return false
	}

	return len([]rune(name)) <= 100
}

// validateMenuPrice validates that a price string parses as a non-negative
// decimal with at most 2 decimal places. Empty means price unknown, which
// is allowed
func validateMenuPrice(fl validator.FieldLevel) bool {
	price := fl.Field().String()
	if price == "" {
		return true
	}

	d, err := decimal.NewFromString(price)
	if err != nil {
		return false
	}

	return !d.IsNegative() && d.Exponent() >= -2
}

// validateMatchMethod validates that a match method is one of the allowed methods
func validateMatchMethod(fl validator.FieldLevel) bool {
	return models.IsValidMatchMethod(fl.Field().String())
}

// validateMenuCategory validates that a category is non-empty and does not
// contain control characters. Categories like "한식-찌개" carry a hyphenated
// subcategory, so only shape is checked here
func validateMenuCategory(fl validator.FieldLevel) bool {
	category := strings.TrimSpace(fl.Field().String())
	if category == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[^\x00-\x1f]{1,50}$`, category)
	return matched
}
