package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/pkg/uow"
)

// TradeService исполняет покупки, продажи и пополнения счета. Изменение баланса и запись в журнал
// выполняются в одной транзакции под блокировкой строки юзера.
type TradeService struct {
	uow        uow.UOW
	ledgerRepo LedgerRepository
	quotes     QuoteProvider
	now        func() time.Time
}

func NewTradeService(u uow.UOW, quotes QuoteProvider) (*TradeService, error) {
	ledgerRepo, err := uow.GetRepositoryAs[LedgerRepository](u, uow.RepositoryName(repoargs.LedgerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &TradeService{
		uow:        u,
		ledgerRepo: ledgerRepo,
		quotes:     quotes,
		now:        time.Now,
	}, nil
}

type BuyArgs struct {
	Symbol string
	Shares int64
}

type SellArgs struct {
	Symbol string
	Shares int64
}

type DepositArgs struct {
	Amount decimal.Decimal
}

// TradeResult итог операции. Price цена за акцию (для пополнения сумма пополнения), Cash баланс после операции.
type TradeResult struct {
	Symbol string
	Shares int64
	Price  decimal.Decimal
	Cash   decimal.Decimal
}

// Buy покупает акции по текущей цене.
//
// Ошибки: *domain.ValidationError, domain.ErrSymbolNotFound, domain.ErrInsufficientFunds.
func (t *TradeService) Buy(ctx context.Context, userID int64, args BuyArgs) (*TradeResult, error) {
	symbol, validateErr := validateOrder(args.Symbol, args.Shares)
	if validateErr != nil {
		return nil, validateErr
	}

	// котировка запрашивается до открытия транзакции, чтобы не держать блокировку на время сетевого запроса.
	quote, quoteErr := t.quotes.Lookup(ctx, symbol)
	if quoteErr != nil {
		return nil, fmt.Errorf("buying %d `%s`: %w", args.Shares, symbol, quoteErr)
	}
	cost := quote.Price.Mul(decimal.NewFromInt(args.Shares))

	var cash decimal.Decimal
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		ledger, repoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, lockErr := ledger.LockCash(c, userID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if cost.GreaterThan(current) {
			return domain.ErrInsufficientFunds
		}

		cash = truncateCents(current.Sub(cost))
		return t.apply(c, ledger, userID, cash, symbol, args.Shares, quote.Price)
	})
	if txErr != nil {
		return nil, fmt.Errorf("buying %d `%s`: %w", args.Shares, symbol, txErr)
	}

	return &TradeResult{Symbol: symbol, Shares: args.Shares, Price: quote.Price, Cash: cash}, nil
}

// Sell продает акции по текущей цене. Остаток акций проверяется дважды: до запроса котировки
// и повторно под блокировкой.
//
// Ошибки: *domain.ValidationError, domain.ErrNoShares, domain.ErrInsufficientShares, domain.ErrSymbolNotFound.
func (t *TradeService) Sell(ctx context.Context, userID int64, args SellArgs) (*TradeResult, error) {
	symbol, validateErr := validateOrder(args.Symbol, args.Shares)
	if validateErr != nil {
		return nil, validateErr
	}
	if symbol == domain.DepositSymbol {
		return nil, fmt.Errorf("selling `%s`: %w", symbol, domain.ErrNoShares)
	}

	if err := checkShares(ctx, t.ledgerRepo, userID, symbol, args.Shares); err != nil {
		return nil, fmt.Errorf("selling %d `%s`: %w", args.Shares, symbol, err)
	}

	quote, quoteErr := t.quotes.Lookup(ctx, symbol)
	if quoteErr != nil {
		return nil, fmt.Errorf("selling %d `%s`: %w", args.Shares, symbol, quoteErr)
	}
	proceeds := quote.Price.Mul(decimal.NewFromInt(args.Shares))

	var cash decimal.Decimal
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		ledger, repoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, lockErr := ledger.LockCash(c, userID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		// параллельная продажа могла успеть уменьшить остаток.
		if err := checkShares(c, ledger, userID, symbol, args.Shares); err != nil {
			return err
		}

		cash = truncateCents(current.Add(proceeds))
		if cash.GreaterThan(maxCash) {
			return domain.NewValidationError("shares", "The resulting balance is too large.")
		}
		return t.apply(c, ledger, userID, cash, symbol, -args.Shares, quote.Price)
	})
	if txErr != nil {
		return nil, fmt.Errorf("selling %d `%s`: %w", args.Shares, symbol, txErr)
	}

	return &TradeResult{Symbol: symbol, Shares: args.Shares, Price: quote.Price, Cash: cash}, nil
}

// Deposit пополняет счет. Сумма должна быть положительной и точно выражаться в центах.
// В журнал пишется запись с тикером domain.DepositSymbol, нулем акций и суммой пополнения в качестве цены.
func (t *TradeService) Deposit(ctx context.Context, userID int64, args DepositArgs) (*TradeResult, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "The deposit amount must be greater than zero.")
	}
	// порядок суммы проверяется до любой арифметики: Mul/Mod/Cmp масштабируют операнды и на 1e9999999
	// или 1e-9999999 строят big.Int с миллионами цифр.
	if int64(args.Amount.Exponent()) < -maxAmountScale {
		return nil, domain.NewValidationError("amount", "The deposit amount can have at most two decimal places.")
	}
	if !fitsIntegerDigits(args.Amount) || args.Amount.GreaterThan(maxCash) {
		return nil, domain.NewValidationError("amount", "The deposit amount is too large.")
	}
	// тысячные доли должны быть нулевыми: 10.005 отклоняется, 10.25 принимается.
	if !args.Amount.Mul(decimal.NewFromInt(1000)).Mod(decimal.NewFromInt(10)).IsZero() { //nolint:mnd
		return nil, domain.NewValidationError("amount", "The deposit amount can have at most two decimal places.")
	}

	var cash decimal.Decimal
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		ledger, repoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, lockErr := ledger.LockCash(c, userID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		cash = truncateCents(current.Add(args.Amount))
		if cash.GreaterThan(maxCash) {
			return domain.NewValidationError("amount", "The deposit amount is too large.")
		}
		return t.apply(c, ledger, userID, cash, domain.DepositSymbol, 0, args.Amount)
	})
	if txErr != nil {
		return nil, fmt.Errorf("depositing %s: %w", args.Amount, txErr)
	}

	return &TradeResult{Symbol: domain.DepositSymbol, Price: args.Amount, Cash: cash}, nil
}

// apply записывает новый баланс и строку журнала. Вызывается только внутри uow.Do.
func (t *TradeService) apply(
	ctx context.Context,
	ledger LedgerRepository,
	userID int64,
	cash decimal.Decimal,
	symbol string,
	shares int64,
	price decimal.Decimal,
) error {
	if err := ledger.SetCash(ctx, userID, cash); err != nil {
		return err //nolint:wrapcheck
	}
	_, err := ledger.RecordTransaction(ctx, repoargs.RecordTransaction{
		UserID:    userID,
		Symbol:    symbol,
		Shares:    shares,
		Price:     price,
		CreatedAt: t.now().UTC(),
	})
	return err //nolint:wrapcheck
}

func validateOrder(rawSymbol string, shares int64) (string, error) {
	symbol := normalizeSymbol(rawSymbol)
	if symbol == "" {
		return "", domain.NewValidationError("symbol", "No symbol was entered.")
	}
	if shares < 1 {
		return "", domain.NewValidationError("shares", "The shares amount must be 1 or more.")
	}
	return symbol, nil
}

func checkShares(ctx context.Context, ledger LedgerRepository, userID int64, symbol string, shares int64) error {
	owned, err := ledger.SumShares(ctx, userID, symbol)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if owned <= 0 {
		return domain.ErrNoShares
	}
	if shares > owned {
		return domain.ErrInsufficientShares
	}
	return nil
}
