package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordTransaction аргументы добавления строки в журнал операций.
type RecordTransaction struct {
	UserID    int64
	Symbol    string
	Shares    int64
	Price     decimal.Decimal
	CreatedAt time.Time
}
