package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-finance/internal/domain"
)

const invalidFormMessage = "Invalid form input."

// Числовые поля принимаются строками и разбираются вручную, чтобы юзер получил понятное сообщение
// вместо ошибки strconv из биндинга.

type BuyForm struct {
	Symbol string `binding:"required,max_bytes=16,ticker" form:"symbol"`
	Shares string `binding:"required"                     form:"shares"`
}

type SellForm struct {
	Symbol string `binding:"required,max_bytes=16,ticker" form:"symbol"`
	Shares string `binding:"required"                     form:"shares"`
}

type DepositForm struct {
	Amount string `binding:"required,max_bytes=32" form:"amount"`
}

type QuoteForm struct {
	Symbol string `binding:"required,max_bytes=16,ticker" form:"symbol"`
}

type LoginForm struct {
	Username string `binding:"required" form:"username"`
	Password string `binding:"required" form:"password"`
}

type RegisterForm struct {
	Username     string `binding:"required,max_bytes=64"     form:"username"`
	Password     string `binding:"required,max_bytes=72"     form:"password"`
	Confirmation string `binding:"required,eqfield=Password" form:"confirmation"`
}

// formMessages сообщения юзеру по ключу "Поле.тег" или "Поле".
type formMessages map[string]string

var ( //nolint:gochecknoglobals
	symbolMessages = formMessages{
		"Symbol":           "No symbol was entered.",
		"Symbol.ticker":    "The symbol can contain only letters, digits, dots and dashes.",
		"Symbol.max_bytes": "The symbol is too long.",
		"Shares":           "The shares amount must be 1 or more.",
	}
	depositMessages = formMessages{
		"Amount":           "A valid currency number should be entered.",
		"Amount.max_bytes": "The deposit amount is too long.",
	}
	loginMessages = formMessages{
		"Username": "must provide username",
		"Password": "must provide password",
	}
	registerMessages = formMessages{
		"Username":             "No username has been entered.",
		"Username.max_bytes":   "The username is too long.",
		"Password":             "No password has been entered.",
		"Password.max_bytes":   "The password is too long.",
		"Confirmation":         "The passwords did not match.",
		"Confirmation.eqfield": "The passwords do not match.",
	}
)

// message возвращает сообщение для первой ошибки валидации.
func (m formMessages) message(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) || len(valErrs) == 0 {
		return invalidFormMessage
	}
	fe := valErrs[0]
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := m[fe.Field()]; ok {
		return msg
	}
	return invalidFormMessage
}

// parseShares разбирает кол-во акций. Проверку на положительность выполняет сервисный слой.
func parseShares(raw string) (int64, error) {
	shares, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("shares", "The shares amount must be a whole number.")
	}
	return shares, nil
}

// parseAmount разбирает сумму в обычной десятичной записи. Экспоненциальная запись (1e9) не принимается.
func parseAmount(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if strings.ContainsAny(value, "eE") {
		return decimal.Zero, domain.NewValidationError("amount", depositMessages["Amount"])
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("amount", depositMessages["Amount"])
	}
	return amount, nil
}
