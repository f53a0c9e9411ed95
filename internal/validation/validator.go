// Package validation checks incoming order payloads. Every rule is applied
// and every problem reported, so a client can show them all at once.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

// Validator validates order requests
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names.
// Required text fields use notblank so whitespace-only values are rejected.
func NewValidator() *Validator {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateOrder returns every problem with req, envelope first, then each
// item prefixed with its 1-based position. An empty result means valid.
func (v *Validator) ValidateOrder(req models.CreateOrderRequest) []string {
	var problems []string

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []string{err.Error()}
		}
		for _, fe := range fieldErrs {
			problems = append(problems, envelopeMessage(fe))
		}
	}

	for i, item := range req.OrderItems {
		for _, msg := range ValidateItem(item) {
			problems = append(problems, fmt.Sprintf("Item %d: %s", i+1, msg))
		}
	}

	return problems
}

func envelopeMessage(fe validator.FieldError) string {
	// Namespace is "CreateOrderRequest.payerDetails.name"; drop the type name
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	if fe.Field() == "orderItems" {
		return "orderItems must contain at least one item"
	}
	if fe.Tag() == "required" || fe.Tag() == "notblank" {
		return path + " is required"
	}
	return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
}

// ValidateItem applies the per-item rules independently and returns all
// violations.
func ValidateItem(item models.OrderItem) []string {
	var problems []string

	productType := strings.TrimSpace(item.ProductType)
	if productType == "" {
		problems = append(problems, "productType is required")
	}

	if blank(item.DesignID) && blank(item.DesignImage) {
		problems = append(problems, "designId or designImage is required")
	}

	if blank(item.Color) {
		problems = append(problems, "color is required")
	}
	if blank(item.PrintColor) {
		problems = append(problems, "printColor is required")
	}

	switch {
	case models.UsesFlatQuantity(productType):
		if item.Quantity <= 0 {
			problems = append(problems, fmt.Sprintf("quantity must be greater than 0 for %s items", strings.ToLower(productType)))
		}
	case item.Sizes == nil:
		problems = append(problems, "sizes are required")
	default:
		if item.Sizes.HasNegative() {
			problems = append(problems, "sizes must not be negative")
		}
		if item.Sizes.Total() <= 0 {
			problems = append(problems, "sizes must add up to at least one unit")
		}
	}

	return problems
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
