package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	"paradasia/shared/constant"
	"paradasia/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phonePattern      = regexp.MustCompile(`^[\d\s+()-]+$`)
)

func registerPersonNameValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return personNamePattern.MatchString(value)
}

func registerPhoneValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return phonePattern.MatchString(value)
}

func registerDateOnlyValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report field errors under the wire name, not the Go field name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return constant.Empty
		}

		return name
	})

	err := validate.RegisterValidation("person_name", registerPersonNameValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateonly", registerDateOnlyValidation)
	if err != nil {
		panic(err)
	}
}

type normalizer interface {
	Normalize()
}

// Validate reads from the given io.Reader into the given struct, trims it when
// it knows how, and then performs validation using the validator package.
// Either every field validates or the full per-field error set is returned;
// there is no partial success.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if n, ok := any(data).(normalizer); ok {
		n.Normalize()
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields := fieldMessages(err)
		if len(fields) > 0 {
			return failure.Validation(fields) //nolint:wrapcheck
		}

		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	return nil
}
