package quote

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-finance/internal/transport/quote/client"
)

type Client interface {
	GetQuote(ctx context.Context, symbol string) (*client.QuoteResponse, error)
	GetSymbols(ctx context.Context) ([]client.SymbolResponse, error)
}
