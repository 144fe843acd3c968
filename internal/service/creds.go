package service

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher — внешний коллаборатор для хеширования и проверки паролей.
// Вынесен в интерфейс, чтобы сервис можно было тестировать без bcrypt.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hashed string) bool
}

// BcryptHasher — реализация на bcrypt со стандартной стоимостью.
type BcryptHasher struct{}

func (BcryptHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Verify(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}

// validPassword проверяет политику пароля: минимум 6 символов, хотя бы одна
// заглавная буква, одна строчная и одна цифра. Прочие символы политикой
// не классифицируются.
func validPassword(password string) bool {
	if utf8.RuneCountInString(password) < 6 {
		return false
	}
	hasUpper, hasLower, hasDigit := false, false, false
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
