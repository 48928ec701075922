package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// Errors maps struct validation failures to a field -> message map
// using the json field path, suitable for the API's validation-error
// responses. Returns nil when the struct is valid.
func Errors(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	out := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath turns "OrderRequest.Items[0].Quantity" into "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	// Strip the root struct name
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			ns = ns[i+1:]
			break
		}
	}
	return toSnake(ns)
}

func toSnake(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				out = append(out, '_')
			}
			out = append(out, c+('a'-'A'))
		} else {
			out = append(out, c)
		}
	}
	return string(out)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "uuid_required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
