package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/transport/web/middlewares"
)

type PortfolioHandler struct {
	portfolioService PortfolioServicer
	userService      UserServicer
}

func NewPortfolioHandler(portfolioService PortfolioServicer, userService UserServicer) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		userService:      userService,
	}
}

// Index GET IndexRoute. Портфель юзера по текущим ценам.
func (h *PortfolioHandler) Index(c *gin.Context) {
	userID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, QuoteServiceTimeout)
	defer cancel()

	user, userErr := h.userService.FindByID(ctx, userID)
	if userErr != nil {
		// токен пережил юзера.
		if errors.Is(userErr, domain.ErrRecordNotFound) {
			middlewares.ClearSession(c)
			c.Redirect(http.StatusFound, middlewares.LoginRoute)
			return
		}
		abortWithError(c, http.StatusInternalServerError, userErr)
		return
	}

	portfolio, err := h.portfolioService.Portfolio(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err, "")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Username":  user.Username,
		"Flash":     popFlash(c),
		"Portfolio": portfolio,
	})
}

// History GET HistoryRoute.
func (h *PortfolioHandler) History(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.portfolioService.History(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	render(c, http.StatusOK, "history.html", gin.H{"Transactions": historyRows(transactions)})
}
