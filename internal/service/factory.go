package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-finance/internal/service/psswd"
	"github.com/fsdevblog/groph-finance/pkg/uow"
)

type AppServices struct {
	UserService      *UserService
	TradeService     *TradeService
	PortfolioService *PortfolioService
	QuoteService     *QuoteService
}

func Factory(unitOfWork uow.UOW, quotes QuoteProvider, jwtSecret []byte, l *logrus.Logger) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.New(psswd.DefaultCost))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	tradeService, tradeServiceErr := NewTradeService(unitOfWork, quotes)
	if tradeServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tradeServiceErr.Error())
	}

	portfolioService, portfolioServiceErr := NewPortfolioService(unitOfWork, quotes, l)
	if portfolioServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", portfolioServiceErr.Error())
	}

	return &AppServices{
		UserService:      userService,
		TradeService:     tradeService,
		PortfolioService: portfolioService,
		QuoteService:     NewQuoteService(quotes),
	}, nil
}
