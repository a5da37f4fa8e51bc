package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-finance/internal/service/tokens"
)

const (
	CurrentUserIDKey  = "currentUserID"
	SessionCookieName = "session"
	LoginRoute        = "/login"
)

// Session читает токен из cookie сессии и, если он действителен, записывает в контекст (поле CurrentUserIDKey)
// id юзера. Недействительный или просроченный токен удаляется из cookie.
func Session(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, cookieErr := c.Cookie(SessionCookieName)
		if cookieErr != nil || tokenStr == "" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
		if err != nil {
			ClearSession(c)
			c.Next()
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Next()
	}
}

// AuthRequired пропускает только запросы с открытой сессией, остальных отправляет на страницу входа.
// Должен стоять после Session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CurrentUserIDKey); !ok {
			c.Redirect(http.StatusFound, LoginRoute)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSession сохраняет токен в http-only cookie на время жизни токена.
func SetSession(c *gin.Context, token string, expire time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(expire.Seconds()), "/", "", isSecure(c), true)
}

// ClearSession удаляет cookie сессии и забывает юзера в текущем запросе.
func ClearSession(c *gin.Context) {
	delete(c.Keys, CurrentUserIDKey)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", isSecure(c), true)
}

func isSecure(c *gin.Context) bool {
	return c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
