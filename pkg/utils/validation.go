package utils

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

var registerNamesOnce sync.Once

// RegisterJSONFieldNames makes validator report json/form names instead of Go
// field names, so a missing "foto_url" is reported as foto_url.
func RegisterJSONFieldNames() {
	registerNamesOnce.Do(registerJSONFieldNames)
}

func registerJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

// FieldErrors flattens bind and validation failures into field level details.
func FieldErrors(err error) []FieldError {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
		numErr         *strconv.NumError
	)

	switch {
	case errors.As(err, &validationErrs):
		out := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{Field: fe.Field(), Message: describeTag(fe)})
		}
		return out
	case errors.As(err, &typeErr):
		return []FieldError{{Field: typeErr.Field, Message: "invalid type, expected " + typeErr.Type.String()}}
	case errors.As(err, &syntaxErr):
		return []FieldError{{Message: "malformed JSON body"}}
	case errors.Is(err, ErrInvalidID):
		return []FieldError{{Field: "id", Message: "must be an integer"}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Message: "request body is required"}}
	case errors.As(err, &numErr):
		return []FieldError{{Message: "value " + strconv.Quote(numErr.Num) + " is not a valid integer"}}
	default:
		return []FieldError{{Message: err.Error()}}
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
