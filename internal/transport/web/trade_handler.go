package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-finance/internal/service"
)

type TradeHandler struct {
	tradeService     TradeServicer
	portfolioService PortfolioServicer
}

func NewTradeHandler(tradeService TradeServicer, portfolioService PortfolioServicer) *TradeHandler {
	return &TradeHandler{
		tradeService:     tradeService,
		portfolioService: portfolioService,
	}
}

// BuyForm GET BuyRoute.
func (h *TradeHandler) BuyForm(c *gin.Context) {
	render(c, http.StatusOK, "buy.html", nil)
}

// Buy POST BuyRoute. Покупает акции и возвращает юзера на главную с сообщением.
func (h *TradeHandler) Buy(c *gin.Context) {
	var form BuyForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		abortWithMessage(c, http.StatusBadRequest, bindErr, symbolMessages.message(bindErr))
		return
	}
	symbol := strings.ToUpper(strings.TrimSpace(form.Symbol))

	shares, sharesErr := parseShares(form.Shares)
	if sharesErr != nil {
		abortWithServiceError(c, sharesErr, symbol)
		return
	}

	ctx, cancel := context.WithTimeout(c, QuoteServiceTimeout)
	defer cancel()

	result, err := h.tradeService.Buy(ctx, getUserIDFromContext(c), service.BuyArgs{
		Symbol: symbol,
		Shares: shares,
	})
	if err != nil {
		abortWithServiceError(c, err, symbol)
		return
	}

	setFlash(c, fmt.Sprintf("%d %s share(s) purchased!", result.Shares, result.Symbol))
	c.Redirect(http.StatusFound, IndexRoute)
}

// SellForm GET SellRoute. В форме перечислены тикеры, которыми владеет юзер.
func (h *TradeHandler) SellForm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	holdings, err := h.portfolioService.Holdings(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	render(c, http.StatusOK, "sell.html", gin.H{"Holdings": holdings})
}

// Sell POST SellRoute.
func (h *TradeHandler) Sell(c *gin.Context) {
	var form SellForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		message := symbolMessages.message(bindErr)
		if message == symbolMessages["Symbol"] {
			message = "A stock symbol must be selected."
		}
		abortWithMessage(c, http.StatusBadRequest, bindErr, message)
		return
	}
	symbol := strings.ToUpper(strings.TrimSpace(form.Symbol))

	shares, sharesErr := parseShares(form.Shares)
	if sharesErr != nil {
		abortWithServiceError(c, sharesErr, symbol)
		return
	}

	ctx, cancel := context.WithTimeout(c, QuoteServiceTimeout)
	defer cancel()

	result, err := h.tradeService.Sell(ctx, getUserIDFromContext(c), service.SellArgs{
		Symbol: symbol,
		Shares: shares,
	})
	if err != nil {
		abortWithServiceError(c, err, symbol)
		return
	}

	setFlash(c, fmt.Sprintf("%d %s share(s) sold!", result.Shares, result.Symbol))
	c.Redirect(http.StatusFound, IndexRoute)
}

// DepositForm GET DepositRoute. Показывает текущий баланс.
func (h *TradeHandler) DepositForm(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cash, err := h.portfolioService.Cash(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	render(c, http.StatusOK, "deposit.html", gin.H{"Cash": cash})
}

// Deposit POST DepositRoute.
func (h *TradeHandler) Deposit(c *gin.Context) {
	var form DepositForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		abortWithMessage(c, http.StatusBadRequest, bindErr, depositMessages.message(bindErr))
		return
	}

	amount, amountErr := parseAmount(form.Amount)
	if amountErr != nil {
		abortWithServiceError(c, amountErr, "")
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.tradeService.Deposit(ctx, getUserIDFromContext(c), service.DepositArgs{Amount: amount})
	if err != nil {
		abortWithServiceError(c, err, "")
		return
	}

	setFlash(c, fmt.Sprintf("%s deposited!", usd(result.Price)))
	c.Redirect(http.StatusFound, IndexRoute)
}
