package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signUpForm struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,has_letter,has_digit"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

func TestValidateStruct(t *testing.T) {
	ok := signUpForm{FullName: "Анна", Email: "anna@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	assert.Nil(t, ValidateStruct(ok))

	errs := ValidateStruct(signUpForm{
		FullName:        "А",
		Email:           "not-an-email",
		Password:        "123456",
		ConfirmPassword: "654321",
	})
	assert.Equal(t, "Имя должно содержать минимум 2 символа", errs["full_name"])
	assert.Equal(t, "Некорректный email", errs["email"])
	assert.Equal(t, "Пароль должен содержать латинские буквы", errs["password"])
	assert.Equal(t, "Пароли не совпадают", errs["confirm_password"])
}

func TestValidateStructPasswordNeedsDigit(t *testing.T) {
	errs := ValidateStruct(signUpForm{FullName: "Анна", Email: "a@b.ru", Password: "abcdefg", ConfirmPassword: "abcdefg"})
	assert.Equal(t, map[string]string{"password": "Пароль должен содержать цифры"}, errs)
}
