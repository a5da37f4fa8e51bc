package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type LedgerRepository interface {
	RecordTransaction(ctx context.Context, args repoargs.RecordTransaction) (*domain.Transaction, error)
	SumShares(ctx context.Context, userID int64, symbol string) (int64, error)
	ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	Holdings(ctx context.Context, userID int64) ([]domain.Holding, error)
	GetCash(ctx context.Context, userID int64) (decimal.Decimal, error)
	LockCash(ctx context.Context, userID int64) (decimal.Decimal, error)
	SetCash(ctx context.Context, userID int64, cash decimal.Decimal) error
}

type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (*domain.Quote, error)
	Symbols(ctx context.Context) ([]domain.SymbolInfo, error)
}
