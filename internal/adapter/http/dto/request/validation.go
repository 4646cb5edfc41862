package request

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const defaultFieldMessage = "Некорректное значение"

// fieldMessages holds the form messages shown next to each input, keyed by JSON field then rule.
var fieldMessages = map[string]map[string]string{
	"serviceType": {"notblank": "Выберите тип услуги"},
	"coatingType": {"notblank": "Выберите тип покрытия"},
	"height": {
		"required":        "Укажите высоту",
		"positive_number": "Высота должна быть положительным числом",
	},
	"surfaceArea": {
		"required":        "Укажите площадь",
		"positive_number": "Площадь должна быть положительным числом",
	},
	"diameter": {"positive_number": "Диаметр должен быть положительным числом"},
	"name":     {"notblank": "Укажите имя"},
	"phone":    {"notblank": "Укажите телефон"},
	"email": {
		"notblank": "Укажите email",
		"email":    "Некорректный email",
	},
}

// FieldErrors is a failed validation: one message per invalid field.
// Error returns the message of the first invalid field in declaration order.
type FieldErrors struct {
	Fields map[string]string
	first  string
}

func (e *FieldErrors) Error() string {
	return e.first
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Number is validated as its raw text; absent values become nil so "required" and "omitempty" see them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		n, ok := field.Interface().(Number)
		if !ok || !n.IsSet() {
			return nil
		}
		return n.raw
	}, Number{})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "positive_number", positiveNumber)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func positiveNumber(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && f > 0 && !math.IsInf(f, 0)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := &FieldErrors{Fields: make(map[string]string, len(verrs))}
	for _, ve := range verrs {
		field := ve.Field()
		if _, seen := fe.Fields[field]; seen {
			continue
		}
		msg := messageFor(field, ve.Tag())
		fe.Fields[field] = msg
		if fe.first == "" {
			fe.first = msg
		}
	}
	return fe
}

func messageFor(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	return defaultFieldMessage
}
