package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxCash верхняя граница баланса, ограничена типом колонки users.cash NUMERIC(14,2).
var maxCash = decimal.RequireFromString("999999999999.99") //nolint:gochecknoglobals

const (
	// maxAmountScale максимальное кол-во знаков после запятой во входящей сумме (с учетом хвостовых нулей).
	maxAmountScale = 10
	// maxAmountIntDigits кол-во цифр целой части maxCash.
	maxAmountIntDigits = 12
)

// fitsIntegerDigits проверяет, что целая часть суммы не длиннее maxAmountIntDigits. Смотрит только на
// коэффициент и экспоненту, поэтому дешева для любых значений.
func fitsIntegerDigits(amount decimal.Decimal) bool {
	return int64(amount.NumDigits())+int64(amount.Exponent()) <= maxAmountIntDigits
}

// normalizeSymbol приводит тикер к виду, в котором он хранится в журнале.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// truncateCents отбрасывает все после второго знака (в сторону нуля), без округления.
func truncateCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(2) //nolint:mnd
}
