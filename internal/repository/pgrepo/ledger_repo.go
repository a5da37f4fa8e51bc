package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/pkg/uow"
)

const transactionColumns = "id, user_id, stock_symbol, shares_count, cost, time"

// LedgerRepository журнал операций (таблица transactions) и баланс юзера (users.cash).
// Строки журнала только добавляются, но никогда не изменяются и не удаляются.
type LedgerRepository struct {
	db uow.DBTX
}

func NewLedgerRepository(db uow.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// RecordTransaction добавляет строку в журнал. Для несуществующего юзера вернет domain.ErrRecordNotFound.
func (l *LedgerRepository) RecordTransaction(
	ctx context.Context,
	args repoargs.RecordTransaction,
) (*domain.Transaction, error) {
	row := l.db.QueryRow(ctx,
		"INSERT INTO transactions (user_id, stock_symbol, shares_count, cost, time) "+
			"VALUES ($1, $2, $3, $4, $5) RETURNING "+transactionColumns,
		args.UserID, args.Symbol, args.Shares, args.Price, args.CreatedAt,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "recording transaction for userID %d symbol `%s`", args.UserID, args.Symbol)
	}
	return t, nil
}

// SumShares возвращает сумму shares_count по тикеру. Если у юзера нет операций по тикеру, вернется 0.
func (l *LedgerRepository) SumShares(ctx context.Context, userID int64, symbol string) (int64, error) {
	var sum int64
	err := l.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(shares_count), 0)::BIGINT FROM transactions WHERE user_id = $1 AND stock_symbol = $2",
		userID, symbol,
	).Scan(&sum)
	if err != nil {
		return 0, convertErr(err, "summing shares for userID %d symbol `%s`", userID, symbol)
	}
	return sum, nil
}

// ListTransactions возвращает все операции юзера в порядке добавления.
func (l *LedgerRepository) ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := l.db.Query(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing transactions of userID %d", userID)
	}
	transactions, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		t, scanErr := scanTransaction(row)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *t, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning transactions of userID %d", userID)
	}
	return transactions, nil
}

// Holdings группирует операции юзера (кроме пополнений) по тикеру. Тикеры с нулевой суммой акций
// в результат не попадают. Результат отсортирован по тикеру.
func (l *LedgerRepository) Holdings(ctx context.Context, userID int64) ([]domain.Holding, error) {
	rows, err := l.db.Query(ctx,
		"SELECT stock_symbol, SUM(shares_count)::BIGINT FROM transactions "+
			"WHERE user_id = $1 AND stock_symbol <> $2 "+
			"GROUP BY stock_symbol HAVING SUM(shares_count) <> 0 ORDER BY stock_symbol",
		userID, domain.DepositSymbol,
	)
	if err != nil {
		return nil, convertErr(err, "getting holdings of userID %d", userID)
	}
	holdings, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Holding, error) {
		var h domain.Holding
		scanErr := row.Scan(&h.Symbol, &h.Shares)
		return h, scanErr //nolint:wrapcheck
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning holdings of userID %d", userID)
	}
	return holdings, nil
}

func (l *LedgerRepository) GetCash(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var cash decimal.Decimal
	if err := l.db.QueryRow(ctx, "SELECT cash FROM users WHERE id = $1", userID).Scan(&cash); err != nil {
		return decimal.Zero, convertErr(err, "getting cash of userID %d", userID)
	}
	return cash, nil
}

// LockCash читает баланс с блокировкой строки юзера до конца транзакции. Вызывать только внутри uow.Do,
// иначе блокировка снимется сразу после запроса.
func (l *LedgerRepository) LockCash(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var cash decimal.Decimal
	if err := l.db.QueryRow(ctx, "SELECT cash FROM users WHERE id = $1 FOR UPDATE", userID).Scan(&cash); err != nil {
		return decimal.Zero, convertErr(err, "locking cash of userID %d", userID)
	}
	return cash, nil
}

func (l *LedgerRepository) SetCash(ctx context.Context, userID int64, cash decimal.Decimal) error {
	tag, err := l.db.Exec(ctx, "UPDATE users SET cash = $2 WHERE id = $1", userID, cash)
	if err != nil {
		return convertErr(err, "setting cash of userID %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "setting cash of userID %d", userID)
	}
	return nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(&t.ID, &t.UserID, &t.Symbol, &t.Shares, &t.Price, &t.CreatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
