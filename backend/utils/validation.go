package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	latinLetter = regexp.MustCompile(`[A-Za-z]`)
	digit       = regexp.MustCompile(`[0-9]`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors by json field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("has_letter", func(fl validator.FieldLevel) bool {
		return latinLetter.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("has_digit", func(fl validator.FieldLevel) bool {
		return digit.MatchString(fl.Field().String())
	})

	return v
}

// fieldMessages maps "<field>.<tag>" to the message shown next to the form input.
var fieldMessages = map[string]string{
	"full_name.required":         "Имя обязательно",
	"full_name.min":              "Имя должно содержать минимум 2 символа",
	"full_name.max":              "Имя слишком длинное",
	"email.required":             "Email обязателен",
	"email.email":                "Некорректный email",
	"password.required":          "Пароль обязателен",
	"password.min":               "Пароль должен содержать минимум 6 символов",
	"password.has_letter":        "Пароль должен содержать латинские буквы",
	"password.has_digit":         "Пароль должен содержать цифры",
	"confirm_password.eqfield":   "Пароли не совпадают",
	"old_password.required_with": "Введите текущий пароль",
	"new_password.min":           "Пароль должен содержать минимум 6 символов",
	"new_password.has_letter":    "Пароль должен содержать латинские буквы",
	"new_password.has_digit":     "Пароль должен содержать цифры",
}

// ValidateStruct returns field -> message for every failed rule, or nil.
// Only the first failure of each field is reported.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else {
			out[field] = "Некорректное значение"
		}
	}
	return out
}
