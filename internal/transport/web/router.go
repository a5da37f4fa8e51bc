package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-finance/internal/transport/web/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	QuoteServiceTimeout   = 10 * time.Second
)

const (
	IndexRoute    = "/"
	BuyRoute      = "/buy"
	SellRoute     = "/sell"
	DepositRoute  = "/deposit"
	HistoryRoute  = "/history"
	QuoteRoute    = "/quote"
	LoginRoute    = middlewares.LoginRoute
	LogoutRoute   = "/logout"
	RegisterRoute = "/register"
	SearchRoute   = "/search"
)

//go:embed templates/*.html
var templatesFS embed.FS

type RouterArgs struct {
	Logger           *logrus.Logger
	UserService      UserServicer
	TradeService     TradeServicer
	PortfolioService PortfolioServicer
	QuoteService     QuoteServicer
	JWTSecretKey     []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	tmpl, tmplErr := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if tmplErr != nil {
		return nil, fmt.Errorf("new router: parse templates: %w", tmplErr)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.NoCache())
	r.Use(middlewares.Session(args.JWTSecretKey))
	r.Use(middlewares.Apology())
	r.Use(middlewares.Recovery())

	authHandler := NewAuthHandler(args.UserService)
	tradeHandler := NewTradeHandler(args.TradeService, args.PortfolioService)
	portfolioHandler := NewPortfolioHandler(args.PortfolioService, args.UserService)
	quoteHandler := NewQuoteHandler(args.QuoteService)

	r.GET(LoginRoute, authHandler.LoginForm)
	r.POST(LoginRoute, authHandler.Login)
	r.GET(LogoutRoute, authHandler.Logout)
	r.GET(RegisterRoute, authHandler.RegisterForm)
	r.POST(RegisterRoute, authHandler.Register)
	r.GET(SearchRoute, quoteHandler.Search)

	auth := r.Group("/", middlewares.AuthRequired())
	// ниже все роуты группы требуют авторизованного пользователя.
	auth.GET(IndexRoute, portfolioHandler.Index)
	auth.GET(HistoryRoute, portfolioHandler.History)

	auth.GET(BuyRoute, tradeHandler.BuyForm)
	auth.POST(BuyRoute, tradeHandler.Buy)
	auth.GET(SellRoute, tradeHandler.SellForm)
	auth.POST(SellRoute, tradeHandler.Sell)
	auth.GET(DepositRoute, tradeHandler.DepositForm)
	auth.POST(DepositRoute, tradeHandler.Deposit)

	auth.GET(QuoteRoute, quoteHandler.QuoteForm)
	auth.POST(QuoteRoute, quoteHandler.Quote)
	return r, nil
}
