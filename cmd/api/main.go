package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine"
	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/neclient"
	"github.com/rinori/sales-ledger-api/infrastructure/migration"
	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/api"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/scheduler"
	"github.com/rinori/sales-ledger-api/internal/usecases/authenticating"
	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/rinori/sales-ledger-api/internal/usecases/registering"
	"github.com/rinori/sales-ledger-api/internal/usecases/reporting"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco de dados")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	salesRecordRepo := repository.NewSalesRecordRepository(pgConn)
	candidateRepo := repository.NewCandidateRepository(pgConn)
	importHistoryRepo := repository.NewImportHistoryRepository(pgConn)
	shopMappingRepo := repository.NewShopMappingRepository(pgConn)
	keywordRepo := repository.NewExclusionKeywordRepository(pgConn)
	taxRateRepo := repository.NewTaxRateRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	budgetRepo := repository.NewBudgetRepository(pgConn)
	adExpenseRepo := repository.NewAdExpenseRepository(pgConn)
	neAuthRepo := repository.NewNEAuthRepository(pgConn)
	transactor := repository.NewTransactor(pgConn)

	httpClient := neclient.NewHTTPClient(cfg.NextEngine)
	tokenManager := neclient.NewTokenManager(cfg.NextEngine, httpClient, neAuthRepo)
	neClient := neclient.NewClient(httpClient, tokenManager)
	neIntegrator := nextengine.New(cfg.NextEngine, neClient)

	taxResolver := ingesting.NewTaxResolver(taxRateRepo, fallbackTaxMultiplier(cfg.Ingestion.FallbackTaxMultiplier))

	ingester := ingesting.NewService(
		transactor,
		productRepo,
		keywordRepo,
		shopMappingRepo,
		categoryRepo,
		importHistoryRepo,
		taxResolver,
		neIntegrator,
	)
	reporter := reporting.NewService(salesRecordRepo, budgetRepo, categoryRepo, adExpenseRepo)
	registrar := registering.NewService(transactor, candidateRepo)
	configurator := configuring.NewService(
		keywordRepo,
		taxRateRepo,
		categoryRepo,
		shopMappingRepo,
		neAuthRepo,
		neIntegrator,
	)
	authenticator := authenticating.NewService(userRepo, cfg.SecretKey)

	salesSyncService := scheduler.NewNextEngineSalesSyncService(shopMappingRepo, ingester, cfg)

	if err := salesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas")
	} else {
		logrus.Info("Agendador de sincronização de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Ingester:      ingester,
		Reporter:      reporter,
		Registrar:     registrar,
		Configurator:  configurator,
		SalesSync:     salesSyncService,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func fallbackTaxMultiplier(raw string) decimal.Decimal {
	multiplier, err := decimal.NewFromString(raw)
	if err != nil || !multiplier.IsPositive() {
		logrus.Warnf("Multiplicador de imposto inválido: %q, usando %s", raw, ingesting.DefaultTaxMultiplier)
		return ingesting.DefaultTaxMultiplier
	}
	return multiplier
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
