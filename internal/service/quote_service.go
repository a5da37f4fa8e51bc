package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-finance/internal/domain"
)

type QuoteService struct {
	quotes QuoteProvider
}

func NewQuoteService(quotes QuoteProvider) *QuoteService {
	return &QuoteService{quotes: quotes}
}

// Lookup текущая котировка тикера. Ошибки: *domain.ValidationError, domain.ErrSymbolNotFound.
func (q *QuoteService) Lookup(ctx context.Context, rawSymbol string) (*domain.Quote, error) {
	symbol := normalizeSymbol(rawSymbol)
	if symbol == "" {
		return nil, domain.NewValidationError("symbol", "No symbol was entered.")
	}
	quote, err := q.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	return quote, nil
}

// Search возвращает тикеры, начинающиеся с query (без учета регистра). Пустой запрос совпадает со всеми.
func (q *QuoteService) Search(ctx context.Context, query string) ([]domain.SymbolInfo, error) {
	symbols, err := q.quotes.Symbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("search `%s`: %w", query, err)
	}

	prefix := normalizeSymbol(query)
	var matched = make([]domain.SymbolInfo, 0, len(symbols))
	for _, s := range symbols {
		if strings.HasPrefix(strings.ToUpper(s.Symbol), prefix) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}
