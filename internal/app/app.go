package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-finance/internal/config"
	"github.com/fsdevblog/groph-finance/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/internal/service"
	"github.com/fsdevblog/groph-finance/internal/transport/quote"
	"github.com/fsdevblog/groph-finance/internal/transport/quote/client"
	"github.com/fsdevblog/groph-finance/internal/transport/web"
	"github.com/fsdevblog/groph-finance/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const portfolioQuoteWorkers = 5

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	quotes := quote.New(client.New(a.Config.QuoteAPIURL, a.Config.APIKey), a.Logger)
	if a.Config.QuoteCacheTTL > 0 {
		quotes.SetCache(quote.NewCache(a.Config.RedisAddr), a.Config.QuoteCacheTTL)
	}

	services, sErr := service.Factory(unitOfWork, quotes, []byte(a.Config.JWTUserSecret), a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}
	services.PortfolioService.SetQuoteWorkers(portfolioQuoteWorkers)

	router, routerErr := web.New(web.RouterArgs{
		Logger:           a.Logger,
		UserService:      services.UserService,
		TradeService:     services.TradeService,
		PortfolioService: services.PortfolioService,
		QuoteService:     services.QuoteService,
		JWTSecretKey:     []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	// read committed + SELECT ... FOR UPDATE на строке юзера сериализует изменения баланса.
	unitOfWork := uow.NewUnitOfWork(conn).SetTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// ledger repo
	ledgerRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewLedgerRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.LedgerRepoName), ledgerRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
