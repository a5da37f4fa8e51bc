package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/pkg/uow"
)

const defaultQuoteWorkers uint = 5

// Position строка портфеля: позиция по тикеру, оцененная по текущей цене.
type Position struct {
	Symbol string
	Name   string
	Shares int64
	Price  decimal.Decimal
	Total  decimal.Decimal
}

type Portfolio struct {
	Positions []Position
	Cash      decimal.Decimal
	Total     decimal.Decimal
}

// PortfolioService строит представления счета юзера: портфель, историю операций и остатки.
type PortfolioService struct {
	ledgerRepo   LedgerRepository
	quotes       QuoteProvider
	l            *logrus.Entry
	quoteWorkers uint
}

func NewPortfolioService(u uow.UOW, quotes QuoteProvider, l *logrus.Logger) (*PortfolioService, error) {
	ledgerRepo, err := uow.GetRepositoryAs[LedgerRepository](u, uow.RepositoryName(repoargs.LedgerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PortfolioService{
		ledgerRepo: ledgerRepo,
		quotes:     quotes,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "portfolio",
		}),
		quoteWorkers: defaultQuoteWorkers,
	}, nil
}

// SetQuoteWorkers устанавливает кол-во параллельных запросов котировок при оценке портфеля.
func (p *PortfolioService) SetQuoteWorkers(workers uint) *PortfolioService {
	if workers == 0 {
		workers = 1
	}
	p.quoteWorkers = workers
	return p
}

// Portfolio оценивает все позиции юзера по текущим ценам. Позиции отсортированы по тикеру.
// Если хотя бы одну котировку получить не удалось, вернется ошибка domain.ErrQuoteUnavailable.
func (p *PortfolioService) Portfolio(ctx context.Context, userID int64) (*Portfolio, error) {
	holdings, holdingsErr := p.ledgerRepo.Holdings(ctx, userID)
	if holdingsErr != nil {
		return nil, fmt.Errorf("portfolio of userID %d: %w", userID, holdingsErr)
	}

	cash, cashErr := p.ledgerRepo.GetCash(ctx, userID)
	if cashErr != nil {
		return nil, fmt.Errorf("portfolio of userID %d: %w", userID, cashErr)
	}

	positions, valueErr := p.value(ctx, holdings)
	if valueErr != nil {
		return nil, fmt.Errorf("portfolio of userID %d: %w", userID, valueErr)
	}

	total := cash
	for _, position := range positions {
		total = total.Add(position.Total)
	}

	return &Portfolio{
		Positions: positions,
		Cash:      cash,
		Total:     total,
	}, nil
}

// History все операции юзера в порядке их совершения.
func (p *PortfolioService) History(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := p.ledgerRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history of userID %d: %w", userID, err)
	}
	return transactions, nil
}

// Holdings ненулевые позиции юзера без оценки.
func (p *PortfolioService) Holdings(ctx context.Context, userID int64) ([]domain.Holding, error) {
	holdings, err := p.ledgerRepo.Holdings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("holdings of userID %d: %w", userID, err)
	}
	return holdings, nil
}

func (p *PortfolioService) Cash(ctx context.Context, userID int64) (decimal.Decimal, error) {
	cash, err := p.ledgerRepo.GetCash(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cash of userID %d: %w", userID, err)
	}
	return cash, nil
}

// quoteResult результат работы воркера. Index позиция в исходном срезе holdings.
type quoteResult struct {
	Index int
	Quote *domain.Quote
	Error error
}

// value запрашивает котировки через пул воркеров (fan-out/fan-in) и собирает позиции в исходном порядке.
func (p *PortfolioService) value(ctx context.Context, holdings []domain.Holding) ([]Position, error) {
	positions := make([]Position, len(holdings))
	if len(holdings) == 0 {
		return positions, nil
	}

	var taskCh = make(chan int, len(holdings))
	for i := range holdings {
		taskCh <- i
	}
	close(taskCh)

	workers := min(int(p.quoteWorkers), len(holdings)) //nolint:gosec
	var resultCh = make(chan quoteResult, len(holdings))

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for range workers {
		go p.worker(ctx, wg, holdings, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var received int
	for result := range resultCh {
		received++
		holding := holdings[result.Index]
		if result.Error != nil {
			p.l.WithError(result.Error).WithField("symbol", holding.Symbol).Warn("quote lookup failed")
			return nil, fmt.Errorf("valuing `%s`: %w: %s", holding.Symbol, domain.ErrQuoteUnavailable, result.Error.Error())
		}
		shares := decimal.NewFromInt(holding.Shares)
		positions[result.Index] = Position{
			Symbol: holding.Symbol,
			Name:   result.Quote.Name,
			Shares: holding.Shares,
			Price:  result.Quote.Price,
			Total:  result.Quote.Price.Mul(shares),
		}
	}

	// воркеры вышли по отмене контекста, не обработав все задачи.
	if received < len(holdings) {
		return nil, fmt.Errorf("valuing holdings: %w: %w", domain.ErrQuoteUnavailable, ctx.Err())
	}
	return positions, nil
}

func (p *PortfolioService) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	holdings []domain.Holding,
	taskCh <-chan int,
	resultCh chan<- quoteResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case i, ok := <-taskCh:
			if !ok {
				return
			}
			quote, err := p.quotes.Lookup(ctx, holdings[i].Symbol)
			resultCh <- quoteResult{Index: i, Quote: quote, Error: err}
		}
	}
}
