package usecase

import (
	"encoding/json"
	"reflect"
	"strings"

	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates the validator shared by the use cases and the HTTP layer.
// Failures name fields by their json (or query) key so they can be shown to callers.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(publicFieldName)

	return validate
}

func publicFieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

// ValidationFailed turns validator output into VALIDATION_FAILED with details such as
// "name: is required; numbers[0].type: must be one of: mobile, landline".
// field names a value checked on its own, where the validator has no field path.
func ValidationFailed(err error, field string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldPath(fieldErr, field)+": "+describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

// MalformedRequest reports a request that could not be decoded, without decoder internals.
func MalformedRequest(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domainerrors.ErrValidationFailed.WithDetails(typeErr.Field + ": must be " + jsonKind(typeErr.Type))
	}

	return domainerrors.ErrValidationFailed.WithDetails("request is malformed")
}

// fieldPath drops the struct name the validator puts in front of every namespace.
func fieldPath(fieldErr validator.FieldError, fallback string) string {
	namespace := fieldErr.Namespace()
	if _, path, ok := strings.Cut(namespace, "."); ok {
		return path
	}
	if fallback != "" {
		return fallback
	}

	return "value"
}

func describe(fieldErr validator.FieldError) string {
	param := fieldErr.Param()
	isText := fieldErr.Kind() == reflect.String

	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		if isText && param == "1" {
			return "must not be empty"
		}
		if isText {
			return "must be at least " + param + " characters"
		}

		return "must be at least " + param
	case "gte":
		return "must be at least " + param
	case "max", "lte":
		if isText {
			return "must be at most " + param + " characters"
		}

		return "must be at most " + param
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	default:
		return "is invalid"
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a value"
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	default:
		return "an object"
	}
}
