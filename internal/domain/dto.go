package domain

import "github.com/shopspring/decimal"

// DepositSymbol тикер-заглушка, которым в журнале помечаются пополнения счета.
const DepositSymbol = "DEPOSIT"

// DefaultStartingCash сумма на счету нового юзера. Должна совпадать с DEFAULT в миграции таблицы users.
var DefaultStartingCash = decimal.NewFromInt(10000) //nolint:gochecknoglobals,mnd
