package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/internal/service/mocks"
	"github.com/fsdevblog/groph-finance/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-finance/pkg/uow/mocks"
)

type TradeServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockLedger   *mocks.MockLedgerRepository
	mockTxLedger *mocks.MockLedgerRepository
	mockQuotes   *mocks.MockQuoteProvider
	now          time.Time
	service      *TradeService
}

func TestTradeServiceSuite(t *testing.T) {
	suite.Run(t, new(TradeServiceTestSuite))
}

func (s *TradeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockLedger = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockTxLedger = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockQuotes = mocks.NewMockQuoteProvider(s.mockCtrl)

	// репозиторий вне транзакции, используется для предварительных проверок.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockLedger, nil).AnyTimes()

	// репозиторий внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockTxLedger, nil).AnyTimes()

	var err error
	s.service, err = NewTradeService(s.mockUOW, s.mockQuotes)
	s.Require().NoError(err)

	s.now = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *TradeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx настраивает мок uow на однократное выполнение fn с мок-транзакцией.
func (s *TradeServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
}

func (s *TradeServiceTestSuite) expectQuote(symbol, price string) {
	s.mockQuotes.EXPECT().Lookup(gomock.Any(), symbol).Return(&domain.Quote{
		Symbol: symbol,
		Name:   symbol + " Inc.",
		Price:  decimal.RequireFromString(price),
	}, nil)
}

func (s *TradeServiceTestSuite) expectRecord(userID int64, symbol string, shares int64, price string) {
	s.mockTxLedger.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args repoargs.RecordTransaction) (*domain.Transaction, error) {
			s.Equal(userID, args.UserID)
			s.Equal(symbol, args.Symbol)
			s.Equal(shares, args.Shares)
			s.True(decimal.RequireFromString(price).Equal(args.Price), "price %s", args.Price)
			s.Equal(s.now, args.CreatedAt)
			return &domain.Transaction{
				ID:        1,
				UserID:    args.UserID,
				Symbol:    args.Symbol,
				Shares:    args.Shares,
				Price:     args.Price,
				CreatedAt: args.CreatedAt,
			}, nil
		},
	)
}

func (s *TradeServiceTestSuite) TestBuy_Validation() {
	cases := []struct {
		name string
		args BuyArgs
	}{
		{name: "blank symbol", args: BuyArgs{Symbol: "  ", Shares: 1}},
		{name: "zero shares", args: BuyArgs{Symbol: "AAPL", Shares: 0}},
		{name: "negative shares", args: BuyArgs{Symbol: "AAPL", Shares: -3}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.Buy(s.T().Context(), 1, t.args)
			s.Require().ErrorIs(err, domain.ErrValidation)

			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.NotEmpty(validationErr.Message)
		})
	}
}

func (s *TradeServiceTestSuite) TestBuy_SymbolNotFound() {
	s.mockQuotes.EXPECT().Lookup(gomock.Any(), "ZZZZ").Return(nil, domain.ErrSymbolNotFound)

	_, err := s.service.Buy(s.T().Context(), 1, BuyArgs{Symbol: "zzzz", Shares: 1})
	s.ErrorIs(err, domain.ErrSymbolNotFound)
}

func (s *TradeServiceTestSuite) TestBuy_InsufficientFunds() {
	var userID int64 = 3
	s.expectQuote("AAPL", "15")
	s.expectTx()
	// на счету $100, покупка 10 x $15. Ни баланс, ни журнал не должны измениться.
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.NewFromInt(100), nil)
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockTxLedger.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.service.Buy(s.T().Context(), userID, BuyArgs{Symbol: "AAPL", Shares: 10})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	s.Nil(result)
}

func (s *TradeServiceTestSuite) TestBuy() {
	var userID int64 = 3
	s.expectQuote("AAPL", "189.845")
	s.expectTx()
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.NewFromInt(10000), nil)
	// 10000 - 3 * 189.845 = 9430.465, отбрасываем тысячные.
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), userID, decimalEq("9430.46")).Return(nil)
	s.expectRecord(userID, "AAPL", 3, "189.845")

	result, err := s.service.Buy(s.T().Context(), userID, BuyArgs{Symbol: " aapl ", Shares: 3})
	s.Require().NoError(err)
	s.Equal("AAPL", result.Symbol)
	s.Equal(int64(3), result.Shares)
	s.True(decimal.RequireFromString("9430.46").Equal(result.Cash))
}

func (s *TradeServiceTestSuite) TestBuy_ExactCash() {
	var userID int64 = 3
	s.expectQuote("AAPL", "25")
	s.expectTx()
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.NewFromInt(100), nil)
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), userID, decimalEq("0")).Return(nil)
	s.expectRecord(userID, "AAPL", 4, "25")

	result, err := s.service.Buy(s.T().Context(), userID, BuyArgs{Symbol: "AAPL", Shares: 4})
	s.Require().NoError(err)
	s.True(result.Cash.IsZero())
}

func (s *TradeServiceTestSuite) TestBuy_RecordFails() {
	var userID int64 = 3
	s.expectQuote("AAPL", "10")
	s.expectTx()
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.NewFromInt(100), nil)
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), userID, decimalEq("90")).Return(nil)
	s.mockTxLedger.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnknown)

	_, err := s.service.Buy(s.T().Context(), userID, BuyArgs{Symbol: "AAPL", Shares: 1})
	s.ErrorIs(err, domain.ErrUnknown)
}

func (s *TradeServiceTestSuite) TestSell_PreChecks() {
	var userID int64 = 5

	s.mockLedger.EXPECT().SumShares(gomock.Any(), userID, "MSFT").Return(int64(0), nil)
	s.mockLedger.EXPECT().SumShares(gomock.Any(), userID, "NFLX").Return(int64(5), nil)
	// котировка при провале предварительных проверок не запрашивается.
	s.mockQuotes.EXPECT().Lookup(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name    string
		args    SellArgs
		wantErr error
	}{
		{name: "blank symbol", args: SellArgs{Symbol: "", Shares: 1}, wantErr: domain.ErrValidation},
		{name: "zero shares", args: SellArgs{Symbol: "NFLX", Shares: 0}, wantErr: domain.ErrValidation},
		{name: "deposit symbol", args: SellArgs{Symbol: "deposit", Shares: 1}, wantErr: domain.ErrNoShares},
		{name: "not owned", args: SellArgs{Symbol: "msft", Shares: 1}, wantErr: domain.ErrNoShares},
		{name: "more than owned", args: SellArgs{Symbol: "NFLX", Shares: 6}, wantErr: domain.ErrInsufficientShares},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			result, err := s.service.Sell(s.T().Context(), userID, t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(result)
		})
	}
}

func (s *TradeServiceTestSuite) TestSell_All() {
	var userID int64 = 5
	s.mockLedger.EXPECT().SumShares(gomock.Any(), userID, "NFLX").Return(int64(5), nil)
	s.expectQuote("NFLX", "20.015")
	s.expectTx()
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.RequireFromString("50.5"), nil)
	s.mockTxLedger.EXPECT().SumShares(gomock.Any(), userID, "NFLX").Return(int64(5), nil)
	// 50.5 + 5 * 20.015 = 150.575.
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), userID, decimalEq("150.57")).Return(nil)
	s.expectRecord(userID, "NFLX", -5, "20.015")

	result, err := s.service.Sell(s.T().Context(), userID, SellArgs{Symbol: "NFLX", Shares: 5})
	s.Require().NoError(err)
	s.Equal(int64(5), result.Shares)
	s.True(decimal.RequireFromString("150.57").Equal(result.Cash))
}

func (s *TradeServiceTestSuite) TestSell_ConcurrentSellUnderLock() {
	var userID int64 = 5
	s.mockLedger.EXPECT().SumShares(gomock.Any(), userID, "NFLX").Return(int64(5), nil)
	s.expectQuote("NFLX", "20")
	s.expectTx()
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.NewFromInt(50), nil)
	// пока запрашивалась котировка, часть акций уже продана.
	s.mockTxLedger.EXPECT().SumShares(gomock.Any(), userID, "NFLX").Return(int64(2), nil)
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockTxLedger.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Sell(s.T().Context(), userID, SellArgs{Symbol: "NFLX", Shares: 5})
	s.ErrorIs(err, domain.ErrInsufficientShares)
}

func (s *TradeServiceTestSuite) TestDeposit() {
	var userID int64 = 9

	cases := []struct {
		name     string
		amount   string
		wantErr  error
		wantCash string
	}{
		{name: "thousandths rejected", amount: "10.005", wantErr: domain.ErrValidation},
		{name: "zero rejected", amount: "0", wantErr: domain.ErrValidation},
		{name: "negative rejected", amount: "-5", wantErr: domain.ErrValidation},
		{name: "huge exponent rejected", amount: "1e9999999", wantErr: domain.ErrValidation},
		{name: "tiny exponent rejected", amount: "1e-9999999", wantErr: domain.ErrValidation},
		{name: "over balance limit rejected", amount: "1000000000000", wantErr: domain.ErrValidation},
		{name: "trailing zeros", amount: "10.2500", wantCash: "110.25"},
		{name: "whole dollars", amount: "10.00", wantCash: "110"},
		{name: "cents", amount: "10.25", wantCash: "110.25"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			if t.wantErr == nil {
				s.expectTx()
				s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.NewFromInt(100), nil)
				s.mockTxLedger.EXPECT().SetCash(gomock.Any(), userID, decimalEq(t.wantCash)).Return(nil)
				s.expectRecord(userID, domain.DepositSymbol, 0, t.amount)
			}

			result, err := s.service.Deposit(s.T().Context(), userID, DepositArgs{
				Amount: decimal.RequireFromString(t.amount),
			})
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				s.Nil(result)
				return
			}
			s.Require().NoError(err)
			s.Equal(domain.DepositSymbol, result.Symbol)
			s.True(decimal.RequireFromString(t.wantCash).Equal(result.Cash))
		})
	}
}

func (s *TradeServiceTestSuite) TestDeposit_TooLarge() {
	var userID int64 = 9
	s.expectTx()
	s.mockTxLedger.EXPECT().LockCash(gomock.Any(), userID).Return(decimal.RequireFromString("999999999999"), nil)
	s.mockTxLedger.EXPECT().SetCash(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Deposit(s.T().Context(), userID, DepositArgs{Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, domain.ErrValidation)
}
