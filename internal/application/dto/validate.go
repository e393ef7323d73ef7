package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// los errores se reportan con el nombre JSON del campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
	})

	// Field[T] se valida por su valor; ausente o null cuenta como vacío
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if !f.FieldByName("Set").Bool() || f.FieldByName("Null").Bool() {
			return nil
		}
		return f.FieldByName("Value").Interface()
	},
		catalog.Field[string]{},
		catalog.Field[bool]{},
		catalog.Field[int64]{},
		catalog.Field[catalog.Number]{},
	)
	return v
}

// Validate aplica las etiquetas validate de v. Un fallo se devuelve como error de validación
// de dominio con un mensaje legible.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldMessage(e))
	}
	return domain.Invalid(strings.Join(msgs, "; "))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
