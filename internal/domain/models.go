package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	Username  string
	Password  string
	Cash      decimal.Decimal
}

// Transaction неизменяемая запись журнала операций. Для покупки Shares > 0, для продажи Shares < 0,
// для пополнения счета Shares == 0, Symbol == DepositSymbol, а Price хранит сумму пополнения.
type Transaction struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Symbol    string
	Shares    int64
	Price     decimal.Decimal
}

func (t Transaction) IsDeposit() bool {
	return t.Symbol == DepositSymbol
}

// Holding вычисляемая позиция: сумма Shares всех транзакций юзера по тикеру.
type Holding struct {
	Symbol string
	Shares int64
}

type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
