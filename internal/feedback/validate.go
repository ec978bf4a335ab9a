package feedback

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"reflect"
	"strings"
)

var ErrMissingFields = errors.New("required feedback fields are missing")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// Validate checks the fields a form needs before it can be submitted.
// Encode and Decode accept incomplete payloads.
func Validate(p Payload) error {
	missing := MissingFields(p)
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

func MissingFields(p Payload) []string {
	if p == nil {
		return nil
	}
	if p.kind() == kindGeneric {
		return nil
	}

	var missing []string
	err := validate.Struct(p)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			missing = append(missing, fieldErr.Field())
		}
	}
	return missing
}
