package middlewares

import "github.com/gin-gonic/gin"

// NoCache запрещает кеширование ответов: страницы зависят от сессии и текущих котировок.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Expires", "0")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
