package repo

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost — стоимость bcrypt. В тестах понижается до bcrypt.MinCost.
var PasswordCost = bcrypt.DefaultCost

// HashPassword возвращает bcrypt-хэш пароля.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword сравнивает пароль с хэшем. Несовпадение не является ошибкой.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
