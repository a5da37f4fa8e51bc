package web

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type TradeServicer interface {
	Buy(ctx context.Context, userID int64, args service.BuyArgs) (*service.TradeResult, error)
	Sell(ctx context.Context, userID int64, args service.SellArgs) (*service.TradeResult, error)
	Deposit(ctx context.Context, userID int64, args service.DepositArgs) (*service.TradeResult, error)
}

type PortfolioServicer interface {
	Portfolio(ctx context.Context, userID int64) (*service.Portfolio, error)
	History(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Holdings(ctx context.Context, userID int64) ([]domain.Holding, error)
	Cash(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type QuoteServicer interface {
	Lookup(ctx context.Context, symbol string) (*domain.Quote, error)
	Search(ctx context.Context, query string) ([]domain.SymbolInfo, error)
}
