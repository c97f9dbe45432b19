package stripeapi

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate checks the cross-field constraints declared on parameter trees,
// such as a unit amount being given either as an integer or as a decimal but
// not both. Field names are reported by their form keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")

		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// namespaceKey turns a validator namespace such as
// PriceParams.recurring.interval into the form key recurring[interval].
// Embedded structs appear in the namespace under their Go names, and are
// dropped.
func namespaceKey(ns string) string {
	parts := make([]string, 0)

	for i, p := range strings.Split(ns, ".") {
		if i == 0 || (p != "" && unicode.IsUpper(rune(p[0]))) {
			continue
		}
		parts = append(parts, p)
	}

	if len(parts) == 0 {
		return ""
	}

	key := parts[0]

	for _, p := range parts[1:] {
		name, idx, ok := strings.Cut(p, "[")

		key += "[" + name + "]"

		if ok {
			key += "[" + idx
		}
	}
	return key
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "excluded_with":
		return "cannot be set together with " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}

func validateParams(params interface{}) error {
	rv := reflect.ValueOf(params)

	if !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return nil
	}

	if reflect.Indirect(rv).Kind() != reflect.Struct {
		return nil
	}

	err := validate.Struct(params)

	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors

	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &EncodingError{
			Key: namespaceKey(verrs[0].Namespace()),
			Err: errors.New(describe(verrs[0])),
		}
	}
	return err
}
