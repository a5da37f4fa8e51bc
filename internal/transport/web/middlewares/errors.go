package middlewares

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const ApologyTemplate = "apology.html"

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusBadGateway:
		return "bad gateway"
	case http.StatusGatewayTimeout:
		return "gateway timeout"
	default:
		return "internal server error"
	}
}

// memegenReplacer экранирует текст для подписи картинки memegen.link.
var memegenReplacer = strings.NewReplacer( //nolint:gochecknoglobals
	"-", "--",
	" ", "-",
	"_", "__",
	"?", "~q",
	"%", "~p",
	"#", "~h",
	"/", "~s",
	`"`, "''",
)

func EscapeMemegen(s string) string {
	return memegenReplacer.Replace(s)
}

// Apology рендерит первую ошибку запроса страницей apology.html (или JSON, если клиент его ждет).
// Для публичных ошибок показывается сообщение из Meta (или текст ошибки), для остальных общий текст статуса.
func Apology() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
			if meta, ok := firstErr.Meta.(string); ok && meta != "" {
				msg = meta
			}
		} else {
			msg = statusErrorText(status)
		}

		if strings.Contains(c.GetHeader("Accept"), "application/json") {
			c.JSON(status, gin.H{"error": msg})
			c.Abort()
			return
		}

		_, loggedIn := c.Get(CurrentUserIDKey)
		c.HTML(status, ApologyTemplate, gin.H{
			"LoggedIn": loggedIn,
			"Top":      strconv.Itoa(status),
			"Bottom":   EscapeMemegen(msg),
			"Message":  msg,
		})
		c.Abort()
	}
}

// Recovery превращает панику в ошибку 500, которую затем рендерит Apology.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.Status(http.StatusInternalServerError)
		_ = c.Error(fmt.Errorf("panic recovered: %v", recovered)).SetType(gin.ErrorTypePrivate)
		c.Abort()
	})
}
