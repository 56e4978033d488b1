package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CommandValidator validates command requests through their `validate`
// struct tags. Field names in errors are taken from the `json` tags, so they
// match the argument names clients send.
type CommandValidator struct {
	validate *validator.Validate
}

// NewCommandValidator constructs a CommandValidator and returns it as the
// Validator interface.
func NewCommandValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &CommandValidator{validate: v}
}

// Validate checks obj, a struct or pointer to struct. When fields are given
// only those (json-named) fields are checked.
func (v *CommandValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, structFieldNames(obj, fields)...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, &FieldError{
			Field: fieldName(fe),
			Tag:   fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return errors.Join(errs...)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// fieldName reports dive errors on list elements by their list name.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}

// structFieldNames maps json names to the namespaced Go field names
// StructPartial expects.
func structFieldNames(obj any, fields []string) []string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fields
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if jsonFieldName(sf) == f || sf.Name == f {
				out = append(out, t.Name()+"."+sf.Name)
				break
			}
		}
	}
	return out
}

func quote(v any) string {
	return fmt.Sprintf("%q", fmt.Sprint(v))
}

// joinParam renders a oneof parameter ("a b c") as "a, b, c".
func joinParam(param string) string {
	return strings.Join(strings.Fields(param), ", ")
}
