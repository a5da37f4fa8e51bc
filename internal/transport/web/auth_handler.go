package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/service"
	"github.com/fsdevblog/groph-finance/internal/transport/web/middlewares"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// LoginForm GET LoginRoute. Закрывает текущую сессию и показывает форму входа.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	middlewares.ClearSession(c)
	render(c, http.StatusOK, "login.html", nil)
}

// Login POST LoginRoute. Аутентификация по паре логин/пароль, токен сохраняется в cookie сессии.
func (h *AuthHandler) Login(c *gin.Context) {
	middlewares.ClearSession(c)

	var form LoginForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		abortWithMessage(c, http.StatusForbidden, bindErr, loginMessages.message(bindErr))
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			abortWithMessage(c, http.StatusForbidden, err, "invalid username and/or password")
			return
		}
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	middlewares.SetSession(c, token, service.JWTTokenExpire)
	c.Redirect(http.StatusFound, IndexRoute)
}

// Logout GET LogoutRoute.
func (h *AuthHandler) Logout(c *gin.Context) {
	middlewares.ClearSession(c)
	c.Redirect(http.StatusFound, IndexRoute)
}

// RegisterForm GET RegisterRoute.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register POST RegisterRoute. Создает юзера и показывает страницу входа. Сессию не открывает.
func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		abortWithMessage(c, http.StatusBadRequest, bindErr, registerMessages.message(bindErr))
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Register(ctx, service.RegisterUserArgs{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			abortWithMessage(c, http.StatusBadRequest, err,
				fmt.Sprintf("The username \"%s\" is already in use.", form.Username))
			return
		}
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	render(c, http.StatusOK, "login.html", gin.H{
		"Flash": fmt.Sprintf("Registered as %s! Please log in.", user.Username),
	})
}
