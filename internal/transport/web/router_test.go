package web

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/service"
	"github.com/fsdevblog/groph-finance/internal/service/tokens"
	"github.com/fsdevblog/groph-finance/internal/transport/web/middlewares"
	"github.com/fsdevblog/groph-finance/internal/transport/web/mocks"
	"github.com/fsdevblog/groph-finance/internal/transport/web/testutils"
)

type RouterTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockUsers         *mocks.MockUserServicer
	mockTrade         *mocks.MockTradeServicer
	mockPortfolio     *mocks.MockPortfolioServicer
	mockQuotes        *mocks.MockQuoteServicer
	jwtSecret         []byte
	router            *gin.Engine
	userID            int64
	userSessionCookie *http.Cookie
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserServicer(s.mockCtrl)
	s.mockTrade = mocks.NewMockTradeServicer(s.mockCtrl)
	s.mockPortfolio = mocks.NewMockPortfolioServicer(s.mockCtrl)
	s.mockQuotes = mocks.NewMockQuoteServicer(s.mockCtrl)
	s.jwtSecret = []byte(gofakeit.LetterN(32))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var err error
	s.router, err = New(RouterArgs{
		Logger:           logger,
		UserService:      s.mockUsers,
		TradeService:     s.mockTrade,
		PortfolioService: s.mockPortfolio,
		QuoteService:     s.mockQuotes,
		JWTSecretKey:     s.jwtSecret,
	})
	s.Require().NoError(err)

	s.userID = int64(gofakeit.IntRange(1, 1000))
	token, tokenErr := tokens.GenerateUserJWT(s.userID, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.userSessionCookie = &http.Cookie{Name: middlewares.SessionCookieName, Value: token}
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RouterTestSuite) request(
	method, target string,
	opts ...func(*testutils.RequestOptions),
) (*http.Response, string) {
	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    target,
	}, opts...)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())
	return resp, string(body)
}

func (s *RouterTestSuite) authRequest(
	method, target string,
	opts ...func(*testutils.RequestOptions),
) (*http.Response, string) {
	return s.request(method, target, append(opts, testutils.WithCookies(s.userSessionCookie))...)
}

func (s *RouterTestSuite) flashOf(resp *http.Response) string {
	cookie := testutils.FindCookie(resp, flashCookieName)
	s.Require().NotNil(cookie, "flash cookie expected")
	flash, err := url.QueryUnescape(cookie.Value)
	s.Require().NoError(err)
	return flash
}

func (s *RouterTestSuite) TestAuthRequired() {
	expiredToken, err := tokens.GenerateUserJWT(s.userID, -time.Minute, s.jwtSecret)
	s.Require().NoError(err)

	cases := []struct {
		name    string
		cookies []*http.Cookie
	}{
		{name: "no session"},
		{name: "garbage session", cookies: []*http.Cookie{{Name: middlewares.SessionCookieName, Value: "garbage"}}},
		{name: "expired session", cookies: []*http.Cookie{{Name: middlewares.SessionCookieName, Value: expiredToken}}},
	}

	routes := []struct{ method, path string }{
		{http.MethodGet, IndexRoute},
		{http.MethodGet, BuyRoute},
		{http.MethodPost, SellRoute},
		{http.MethodGet, DepositRoute},
		{http.MethodPost, DepositRoute},
		{http.MethodGet, HistoryRoute},
		{http.MethodGet, QuoteRoute},
	}

	for _, t := range cases {
		for _, route := range routes {
			s.Run(t.name+" "+route.method+" "+route.path, func() {
				resp, _ := s.request(route.method, route.path, testutils.WithCookies(t.cookies...))
				s.Equal(http.StatusFound, resp.StatusCode)
				s.Equal(LoginRoute, resp.Header.Get("Location"))
			})
		}
	}
}

func (s *RouterTestSuite) TestNoCacheAndRequestID() {
	resp, _ := s.request(http.MethodGet, LoginRoute)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
	s.Equal("0", resp.Header.Get("Expires"))
	s.Equal("no-cache", resp.Header.Get("Pragma"))
	s.NotEmpty(resp.Header.Get(middlewares.RequestIDHeader))

	// переданный id запроса возвращается как есть.
	resp, _ = s.request(http.MethodGet, LoginRoute, testutils.WithHeader(middlewares.RequestIDHeader, "abc"))
	s.Equal("abc", resp.Header.Get(middlewares.RequestIDHeader))
}

func (s *RouterTestSuite) TestLogin() {
	user := domain.User{ID: s.userID, Username: gofakeit.Username()}
	goodToken, err := tokens.GenerateUserJWT(user.ID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)

	s.mockUsers.EXPECT().Login(gomock.Any(), service.LoginUserArgs{Username: user.Username, Password: "right"}).
		Return(&user, goodToken, nil)
	s.mockUsers.EXPECT().Login(gomock.Any(), service.LoginUserArgs{Username: user.Username, Password: "wrong"}).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUsers.EXPECT().Login(gomock.Any(), service.LoginUserArgs{Username: "nobody", Password: "right"}).
		Return(nil, "", domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			form:       url.Values{"username": {user.Username}, "password": {"right"}},
			wantStatus: http.StatusFound,
		},
		{
			name:       "no username",
			form:       url.Values{"password": {"right"}},
			wantStatus: http.StatusForbidden,
			wantBody:   "must-provide-username",
		},
		{
			name:       "no password",
			form:       url.Values{"username": {user.Username}},
			wantStatus: http.StatusForbidden,
			wantBody:   "must-provide-password",
		},
		{
			name:       "wrong password",
			form:       url.Values{"username": {user.Username}, "password": {"wrong"}},
			wantStatus: http.StatusForbidden,
			wantBody:   "invalid-username-and~sor-password",
		},
		{
			name:       "unknown user",
			form:       url.Values{"username": {"nobody"}, "password": {"right"}},
			wantStatus: http.StatusForbidden,
			wantBody:   "invalid-username-and~sor-password",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp, body := s.request(http.MethodPost, LoginRoute, testutils.WithForm(t.form))
			s.Require().Equal(t.wantStatus, resp.StatusCode)

			session := testutils.FindCookie(resp, middlewares.SessionCookieName)
			s.Require().NotNil(session)
			if t.wantStatus == http.StatusFound {
				s.Equal(IndexRoute, resp.Header.Get("Location"))
				s.Equal(goodToken, session.Value)
				s.True(session.HttpOnly)
				return
			}
			// прошлая сессия закрывается даже при неудачной попытке.
			s.Empty(session.Value)
			s.Contains(body, t.wantBody)
			s.Contains(resp.Header.Get("Content-Type"), "text/html")
		})
	}
}

func (s *RouterTestSuite) TestLogout() {
	resp, _ := s.authRequest(http.MethodGet, LogoutRoute)
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal(IndexRoute, resp.Header.Get("Location"))

	session := testutils.FindCookie(resp, middlewares.SessionCookieName)
	s.Require().NotNil(session)
	s.Empty(session.Value)
	s.Negative(session.MaxAge)
}

func (s *RouterTestSuite) TestRegister() {
	username := gofakeit.Username()
	s.mockUsers.EXPECT().Register(gomock.Any(), service.RegisterUserArgs{Username: username, Password: "secret"}).
		Return(&domain.User{ID: 1, Username: username, Cash: domain.DefaultStartingCash}, nil)
	s.mockUsers.EXPECT().Register(gomock.Any(), service.RegisterUserArgs{Username: "taken", Password: "secret"}).
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			form:       url.Values{"username": {username}, "password": {"secret"}, "confirmation": {"secret"}},
			wantStatus: http.StatusOK,
			wantBody:   "Please log in.",
		},
		{
			name:       "no username",
			form:       url.Values{"password": {"secret"}, "confirmation": {"secret"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "No-username-has-been-entered.",
		},
		{
			name:       "no password",
			form:       url.Values{"username": {username}, "confirmation": {"secret"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "No-password-has-been-entered.",
		},
		{
			name:       "no confirmation",
			form:       url.Values{"username": {username}, "password": {"secret"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-passwords-did-not-match.",
		},
		{
			name:       "confirmation mismatch",
			form:       url.Values{"username": {username}, "password": {"secret"}, "confirmation": {"other"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-passwords-do-not-match.",
		},
		{
			name: "username too long in bytes",
			form: url.Values{
				"username":     {testutils.GenerateOverBytesUnderRunes(20)},
				"password":     {"secret"},
				"confirmation": {"secret"},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-username-is-too-long.",
		},
		{
			name:       "duplicate",
			form:       url.Values{"username": {"taken"}, "password": {"secret"}, "confirmation": {"secret"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "is-already-in-use.",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp, body := s.request(http.MethodPost, RegisterRoute, testutils.WithForm(t.form))
			s.Require().Equal(t.wantStatus, resp.StatusCode)
			s.Contains(body, t.wantBody)
			// регистрация не открывает сессию.
			s.Nil(testutils.FindCookie(resp, middlewares.SessionCookieName))
		})
	}
}

func (s *RouterTestSuite) TestIndex() {
	user := domain.User{ID: s.userID, Username: "trader"}
	s.mockUsers.EXPECT().FindByID(gomock.Any(), s.userID).Return(&user, nil)
	s.mockPortfolio.EXPECT().Portfolio(gomock.Any(), s.userID).Return(&service.Portfolio{
		Positions: []service.Position{{
			Symbol: "AAPL",
			Name:   "Apple Inc.",
			Shares: 3,
			Price:  decimal.RequireFromString("189.84"),
			Total:  decimal.RequireFromString("569.52"),
		}},
		Cash:  decimal.RequireFromString("9430.48"),
		Total: decimal.NewFromInt(10000),
	}, nil)

	flash := &http.Cookie{Name: flashCookieName, Value: url.QueryEscape("3 AAPL share(s) purchased!")}
	resp, body := s.authRequest(http.MethodGet, IndexRoute, testutils.WithCookies(flash))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	s.Contains(body, "Signed in as trader")
	s.Contains(body, "Apple Inc.")
	s.Contains(body, "$189.84")
	s.Contains(body, "$569.52")
	s.Contains(body, "$9,430.48")
	s.Contains(body, "$10,000.00")
	s.Contains(body, "3 AAPL share(s) purchased!")
	s.Contains(body, `href="/logout"`)

	// сообщение показывается один раз.
	cleared := testutils.FindCookie(resp, flashCookieName)
	s.Require().NotNil(cleared)
	s.Negative(cleared.MaxAge)
}

func (s *RouterTestSuite) TestIndex_Errors() {
	s.Run("quote unavailable", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), s.userID).Return(&domain.User{ID: s.userID}, nil)
		s.mockPortfolio.EXPECT().Portfolio(gomock.Any(), s.userID).Return(nil, domain.ErrQuoteUnavailable)

		resp, body := s.authRequest(http.MethodGet, IndexRoute)
		s.Equal(http.StatusBadGateway, resp.StatusCode)
		s.Contains(body, "/502/")
	})

	s.Run("user is gone", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), s.userID).Return(nil, domain.ErrRecordNotFound)

		resp, _ := s.authRequest(http.MethodGet, IndexRoute)
		s.Equal(http.StatusFound, resp.StatusCode)
		s.Equal(LoginRoute, resp.Header.Get("Location"))
	})

	s.Run("panic", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), s.userID).DoAndReturn(
			func(_ context.Context, _ int64) (*domain.User, error) {
				panic("boom")
			},
		)

		resp, body := s.authRequest(http.MethodGet, IndexRoute)
		s.Equal(http.StatusInternalServerError, resp.StatusCode)
		s.Contains(body, "internal-server-error")
		s.NotContains(body, "boom")
	})
}

func (s *RouterTestSuite) TestBuy() {
	s.mockTrade.EXPECT().Buy(gomock.Any(), s.userID, service.BuyArgs{Symbol: "AAPL", Shares: 3}).
		Return(&service.TradeResult{Symbol: "AAPL", Shares: 3, Price: decimal.NewFromInt(15)}, nil)
	s.mockTrade.EXPECT().Buy(gomock.Any(), s.userID, service.BuyArgs{Symbol: "AAPL", Shares: 10}).
		Return(nil, domain.ErrInsufficientFunds)
	s.mockTrade.EXPECT().Buy(gomock.Any(), s.userID, service.BuyArgs{Symbol: "ZZZZ", Shares: 1}).
		Return(nil, domain.ErrSymbolNotFound)
	s.mockTrade.EXPECT().Buy(gomock.Any(), s.userID, service.BuyArgs{Symbol: "AAPL", Shares: 0}).
		Return(nil, domain.NewValidationError("shares", "The shares amount must be 1 or more."))

	cases := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantBody   string
		wantFlash  string
	}{
		{
			name:       "ok",
			form:       url.Values{"symbol": {" aapl"}, "shares": {"3"}},
			wantStatus: http.StatusFound,
			wantFlash:  "3 AAPL share(s) purchased!",
		},
		{
			name:       "insufficient funds",
			form:       url.Values{"symbol": {"AAPL"}, "shares": {"10"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "You-do-not-have-enough-cash",
		},
		{
			name:       "unknown symbol",
			form:       url.Values{"symbol": {"zzzz"}, "shares": {"1"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "does-not-exist.",
		},
		{
			name:       "zero shares",
			form:       url.Values{"symbol": {"AAPL"}, "shares": {"0"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-shares-amount-must-be-1-or-more.",
		},
		{
			name:       "blank symbol",
			form:       url.Values{"shares": {"1"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "No-symbol-was-entered.",
		},
		{
			name:       "non numeric shares",
			form:       url.Values{"symbol": {"AAPL"}, "shares": {"three"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-shares-amount-must-be-a-whole-number.",
		},
		{
			name:       "fractional shares",
			form:       url.Values{"symbol": {"AAPL"}, "shares": {"1.5"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-shares-amount-must-be-a-whole-number.",
		},
		{
			name:       "inner space in symbol",
			form:       url.Values{"symbol": {"A B"}, "shares": {"1"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-symbol-can-contain-only",
		},
		{
			name:       "bad symbol characters",
			form:       url.Values{"symbol": {"AA<PL"}, "shares": {"1"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "The-symbol-can-contain-only",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp, body := s.authRequest(http.MethodPost, BuyRoute, testutils.WithForm(t.form))
			s.Require().Equal(t.wantStatus, resp.StatusCode)
			if t.wantFlash != "" {
				s.Equal(IndexRoute, resp.Header.Get("Location"))
				s.Equal(t.wantFlash, s.flashOf(resp))
				return
			}
			s.Contains(body, t.wantBody)
		})
	}
}

func (s *RouterTestSuite) TestSell() {
	s.Run("form lists holdings", func() {
		s.mockPortfolio.EXPECT().Holdings(gomock.Any(), s.userID).Return([]domain.Holding{
			{Symbol: "AAPL", Shares: 3},
			{Symbol: "NFLX", Shares: 1},
		}, nil)

		resp, body := s.authRequest(http.MethodGet, SellRoute)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.Contains(body, `<option value="AAPL">AAPL (3)</option>`)
		s.Contains(body, `<option value="NFLX">NFLX (1)</option>`)
		s.NotContains(body, domain.DepositSymbol)
	})

	s.Run("ok", func() {
		s.mockTrade.EXPECT().Sell(gomock.Any(), s.userID, service.SellArgs{Symbol: "AAPL", Shares: 3}).
			Return(&service.TradeResult{Symbol: "AAPL", Shares: 3}, nil)

		resp, _ := s.authRequest(http.MethodPost, SellRoute,
			testutils.WithForm(url.Values{"symbol": {"AAPL"}, "shares": {"3"}}))
		s.Require().Equal(http.StatusFound, resp.StatusCode)
		s.Equal("3 AAPL share(s) sold!", s.flashOf(resp))
	})

	s.Run("not owned", func() {
		s.mockTrade.EXPECT().Sell(gomock.Any(), s.userID, service.SellArgs{Symbol: "MSFT", Shares: 1}).
			Return(nil, domain.ErrNoShares)

		resp, body := s.authRequest(http.MethodPost, SellRoute,
			testutils.WithForm(url.Values{"symbol": {"MSFT"}, "shares": {"1"}}))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(body, "does-not-own-any")
	})

	s.Run("too many", func() {
		s.mockTrade.EXPECT().Sell(gomock.Any(), s.userID, service.SellArgs{Symbol: "AAPL", Shares: 9}).
			Return(nil, domain.ErrInsufficientShares)

		resp, body := s.authRequest(http.MethodPost, SellRoute,
			testutils.WithForm(url.Values{"symbol": {"AAPL"}, "shares": {"9"}}))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(body, "does-not-have-enough-stocks")
	})

	s.Run("no symbol selected", func() {
		resp, body := s.authRequest(http.MethodPost, SellRoute, testutils.WithForm(url.Values{"shares": {"1"}}))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(body, "A-stock-symbol-must-be-selected.")
	})
}

func (s *RouterTestSuite) TestDeposit() {
	s.Run("form shows cash", func() {
		s.mockPortfolio.EXPECT().Cash(gomock.Any(), s.userID).Return(domain.DefaultStartingCash, nil)

		resp, body := s.authRequest(http.MethodGet, DepositRoute)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.Contains(body, "$10,000.00")
	})

	s.Run("ok", func() {
		s.mockTrade.EXPECT().Deposit(gomock.Any(), s.userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, args service.DepositArgs) (*service.TradeResult, error) {
				s.True(decimal.RequireFromString("10.25").Equal(args.Amount))
				return &service.TradeResult{Symbol: domain.DepositSymbol, Price: args.Amount}, nil
			},
		)

		resp, _ := s.authRequest(http.MethodPost, DepositRoute, testutils.WithForm(url.Values{"amount": {"10.25"}}))
		s.Require().Equal(http.StatusFound, resp.StatusCode)
		s.Equal("$10.25 deposited!", s.flashOf(resp))
	})

	s.Run("rejected by service", func() {
		s.mockTrade.EXPECT().Deposit(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, domain.NewValidationError("amount", "The deposit amount can have at most two decimal places."))

		resp, body := s.authRequest(http.MethodPost, DepositRoute, testutils.WithForm(url.Values{"amount": {"10.005"}}))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(body, "at-most-two-decimal-places.")
	})

	s.Run("scientific notation", func() {
		for _, amount := range []string{"1e9999999", "1E-9999999"} {
			resp, body := s.authRequest(http.MethodPost, DepositRoute, testutils.WithForm(url.Values{"amount": {amount}}))
			s.Equal(http.StatusBadRequest, resp.StatusCode, amount)
			s.Contains(body, "A-valid-currency-number-should-be-entered.")
		}
	})

	s.Run("too long", func() {
		resp, body := s.authRequest(http.MethodPost, DepositRoute,
			testutils.WithForm(url.Values{"amount": {"1" + strings.Repeat("0", 40)}}))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(body, "The-deposit-amount-is-too-long.")
	})

	s.Run("not a number", func() {
		resp, body := s.authRequest(http.MethodPost, DepositRoute, testutils.WithForm(url.Values{"amount": {"ten"}}))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(body, "A-valid-currency-number-should-be-entered.")
	})
}

func (s *RouterTestSuite) TestHistory() {
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	s.mockPortfolio.EXPECT().History(gomock.Any(), s.userID).Return([]domain.Transaction{
		{ID: 1, Symbol: "AAPL", Shares: -2, Price: decimal.RequireFromString("15"), CreatedAt: created},
		{ID: 2, Symbol: domain.DepositSymbol, Price: decimal.RequireFromString("25"), CreatedAt: created},
	}, nil)

	resp, body := s.authRequest(http.MethodGet, HistoryRoute)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, "-2")
	s.Contains(body, "$15.00")
	s.Contains(body, "$25.00")
	s.Contains(body, "2024-03-01 12:30:00")
}

func (s *RouterTestSuite) TestQuote() {
	s.mockQuotes.EXPECT().Lookup(gomock.Any(), "AAPL").
		Return(&domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("1189.5")}, nil)
	s.mockQuotes.EXPECT().Lookup(gomock.Any(), "ZZZZ").Return(nil, domain.ErrSymbolNotFound)

	resp, body := s.authRequest(http.MethodPost, QuoteRoute, testutils.WithForm(url.Values{"symbol": {"aapl"}}))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, "A share of Apple Inc. (AAPL) costs $1,189.50.")

	resp, body = s.authRequest(http.MethodPost, QuoteRoute, testutils.WithForm(url.Values{"symbol": {"zzzz"}}))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(body, "does-not-exist.")
}

func (s *RouterTestSuite) TestSearch() {
	s.mockQuotes.EXPECT().Search(gomock.Any(), "aa").Return([]domain.SymbolInfo{
		{Symbol: "AA", Name: "Alcoa"},
		{Symbol: "AAPL", Name: "Apple Inc."},
	}, nil)
	s.mockQuotes.EXPECT().Search(gomock.Any(), "x").Return(nil, domain.ErrQuoteUnavailable)

	resp, body := s.request(http.MethodGet, SearchRoute+"?q=aa")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "application/json")
	s.JSONEq(`[{"symbol":"AA","name":"Alcoa"},{"symbol":"AAPL","name":"Apple Inc."}]`, body)

	resp, body = s.request(http.MethodGet, SearchRoute+"?q=x")
	s.Equal(http.StatusBadGateway, resp.StatusCode)
	s.JSONEq(`{"error":"symbol list is unavailable"}`, body)
}
