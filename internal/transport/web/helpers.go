package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/transport/web/middlewares"
)

const (
	flashCookieName   = "flash"
	flashCookieMaxAge = 60
	historyTimeLayout = "2006-01-02 15:04:05"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.Session. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// render добавляет в данные шаблона общие для layout.html поля.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	_, loggedIn := c.Get(middlewares.CurrentUserIDKey)
	data["LoggedIn"] = loggedIn
	c.HTML(status, name, data)
}

// setFlash сохраняет сообщение до следующего показа главной страницы.
func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, message, flashCookieMaxAge, "/", "", false, true)
}

// popFlash возвращает сообщение и удаляет его. Экранирование значения cookie выполняет gin.
func popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}

// usd форматирует сумму как $1,234.56. Дробная часть округляется до центов только для отображения.
func usd(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart() //nolint:mnd
	return money.New(cents, money.USD).Display()
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"usd": usd,
	}
}

// historyRow строка таблицы истории. Для пополнений кол-во акций не показывается.
type historyRow struct {
	Symbol string
	Shares string
	Price  decimal.Decimal
	Time   string
}

func historyRows(transactions []domain.Transaction) []historyRow {
	var rows = make([]historyRow, len(transactions))
	for i, t := range transactions {
		rows[i] = historyRow{
			Symbol: t.Symbol,
			Price:  t.Price,
			Time:   t.CreatedAt.Format(historyTimeLayout),
		}
		if !t.IsDeposit() {
			rows[i].Shares = fmt.Sprintf("%d", t.Shares)
		}
	}
	return rows
}

// abortWithMessage прерывает запрос ошибкой, текст message будет показан юзеру.
func abortWithMessage(c *gin.Context, status int, err error, message string) {
	c.Status(status)
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(message)
	c.Abort()
}

// abortWithError прерывает запрос ошибкой, юзер увидит только общий текст статуса.
func abortWithError(c *gin.Context, status int, err error) {
	c.Status(status)
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.Abort()
}

// abortWithServiceError сопоставляет ошибку сервисного слоя со статусом и сообщением. symbol подставляется
// в сообщения, где он нужен.
func abortWithServiceError(c *gin.Context, err error, symbol string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abortWithMessage(c, http.StatusBadRequest, err, validationErr.Message)
	case errors.Is(err, domain.ErrQuoteUnavailable):
		abortWithMessage(c, http.StatusBadGateway, err, "Stock quotes are unavailable right now. Try again later.")
	case errors.Is(err, domain.ErrSymbolNotFound):
		abortWithMessage(c, http.StatusBadRequest, err, fmt.Sprintf("The symbol \"%s\" does not exist.", symbol))
	case errors.Is(err, domain.ErrInsufficientFunds):
		abortWithMessage(c, http.StatusBadRequest, err, "You do not have enough cash for this purchase.")
	case errors.Is(err, domain.ErrNoShares):
		abortWithMessage(c, http.StatusBadRequest, err, fmt.Sprintf("The user does not own any \"%s\" stocks.", symbol))
	case errors.Is(err, domain.ErrInsufficientShares):
		abortWithMessage(c, http.StatusBadRequest, err,
			fmt.Sprintf("The user does not have enough stocks of type \"%s\".", symbol))
	case errors.Is(err, context.DeadlineExceeded):
		abortWithError(c, http.StatusGatewayTimeout, err)
	default:
		abortWithError(c, http.StatusInternalServerError, err)
	}
}
