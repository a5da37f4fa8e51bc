// Package quote поставляет котировки акций из внешнего API для торговых операций и оценки портфеля.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-finance/internal/domain"
)

const (
	quoteKeyPrefix = "quote:"
	symbolsKey     = "symbols"
)

// Provider обертка над клиентом API котировок. Любая ошибка клиента наружу отдается как
// domain.ErrSymbolNotFound (для Lookup) или domain.ErrQuoteUnavailable (для Symbols), исходная ошибка
// сохраняется в цепочке для логов.
type Provider struct {
	client Client
	cache  *cache.Cache
	ttl    time.Duration
	l      *logrus.Entry
}

// New создает провайдер без кеширования: каждая котировка запрашивается заново.
func New(c Client, l *logrus.Logger) *Provider {
	return &Provider{
		client: c,
		l: l.WithFields(logrus.Fields{
			"component": "quote",
			"module":    "provider",
		}),
	}
}

// SetCache включает кеширование ответов на ttl. При ttl <= 0 кеш не используется.
func (p *Provider) SetCache(c *cache.Cache, ttl time.Duration) *Provider {
	if ttl <= 0 {
		p.cache = nil
		p.ttl = 0
		return p
	}
	p.cache = c
	p.ttl = ttl
	return p
}

// cachedQuote представление котировки в кеше. Цена хранится строкой, чтобы не зависеть от бинарного
// формата decimal.Decimal при сериализации.
type cachedQuote struct {
	Symbol string
	Name   string
	Price  string
}

// Lookup возвращает котировку по тикеру. Тикер должен быть уже нормализован вызывающей стороной.
func (p *Provider) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	if p.cache == nil {
		return p.fetchQuote(ctx, symbol)
	}

	var cq cachedQuote
	err := p.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   quoteKeyPrefix + symbol,
		Value: &cq,
		TTL:   p.ttl,
		Do: func(*cache.Item) (interface{}, error) {
			q, fetchErr := p.fetchQuote(ctx, symbol)
			if fetchErr != nil {
				return nil, fetchErr
			}
			return cachedQuote{Symbol: q.Symbol, Name: q.Name, Price: q.Price.String()}, nil
		},
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	price, parseErr := decimal.NewFromString(cq.Price)
	if parseErr != nil {
		return nil, fmt.Errorf("lookup `%s`: %w: cached price: %s", symbol, domain.ErrSymbolNotFound, parseErr.Error())
	}
	return &domain.Quote{Symbol: cq.Symbol, Name: cq.Name, Price: price}, nil
}

func (p *Provider) fetchQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	resp, err := p.client.GetQuote(ctx, symbol)
	if err != nil {
		p.l.WithError(err).WithField("symbol", symbol).Debug("quote lookup failed")
		return nil, fmt.Errorf("lookup `%s`: %w: %w", symbol, domain.ErrSymbolNotFound, err)
	}
	return &domain.Quote{
		Symbol: *resp.Symbol,
		Name:   *resp.CompanyName,
		Price:  resp.LatestPrice.Decimal,
	}, nil
}

// Symbols возвращает справочник тикеров.
func (p *Provider) Symbols(ctx context.Context) ([]domain.SymbolInfo, error) {
	if p.cache == nil {
		return p.fetchSymbols(ctx)
	}

	var symbols []domain.SymbolInfo
	err := p.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   symbolsKey,
		Value: &symbols,
		TTL:   p.ttl,
		Do: func(*cache.Item) (interface{}, error) {
			return p.fetchSymbols(ctx)
		},
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return symbols, nil
}

func (p *Provider) fetchSymbols(ctx context.Context) ([]domain.SymbolInfo, error) {
	resp, err := p.client.GetSymbols(ctx)
	if err != nil {
		p.l.WithError(err).Warn("symbols fetch failed")
		return nil, fmt.Errorf("symbols: %w: %w", domain.ErrQuoteUnavailable, err)
	}
	symbols := make([]domain.SymbolInfo, len(resp))
	for i, s := range resp {
		symbols[i] = domain.SymbolInfo{Symbol: s.Symbol, Name: s.Name}
	}
	return symbols, nil
}
