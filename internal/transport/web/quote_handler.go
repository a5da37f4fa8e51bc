package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService QuoteServicer
}

func NewQuoteHandler(quoteService QuoteServicer) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// QuoteForm GET QuoteRoute.
func (h *QuoteHandler) QuoteForm(c *gin.Context) {
	render(c, http.StatusOK, "quote.html", nil)
}

// Quote POST QuoteRoute.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var form QuoteForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		abortWithMessage(c, http.StatusBadRequest, bindErr, symbolMessages.message(bindErr))
		return
	}
	symbol := strings.ToUpper(strings.TrimSpace(form.Symbol))

	ctx, cancel := context.WithTimeout(c, QuoteServiceTimeout)
	defer cancel()

	quote, err := h.quoteService.Lookup(ctx, symbol)
	if err != nil {
		abortWithServiceError(c, err, symbol)
		return
	}
	render(c, http.StatusOK, "quoted.html", gin.H{"Quote": quote})
}

// Search GET SearchRoute?q=. JSON список тикеров, начинающихся с q.
func (h *QuoteHandler) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, QuoteServiceTimeout)
	defer cancel()

	symbols, err := h.quoteService.Search(ctx, c.Query("q"))
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "symbol list is unavailable"})
		return
	}
	c.JSON(http.StatusOK, symbols)
}
