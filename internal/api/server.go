package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/rinori/sales-ledger-api/internal/api/handler"
	"github.com/rinori/sales-ledger-api/internal/api/handler/router"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/usecases/authenticating"
	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/rinori/sales-ledger-api/internal/usecases/registering"
	"github.com/rinori/sales-ledger-api/internal/usecases/reporting"
	"github.com/rinori/sales-ledger-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Ingester      ingesting.Ingester
	Reporter      reporting.Reporter
	Registrar     registering.Registrar
	Configurator  configuring.Configurator
	SalesSync     handler.SyncJob
	Database      handler.Pinger
}

func NewHandler(config *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		NextEngineSalesSync: services.SalesSync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Sales(services.Ingester)...),
		router.WithRoutes(handler.Candidates(services.Registrar)...),
		router.WithRoutes(handler.Settings(services.Configurator)...),
		router.WithRoutes(handler.NextEngine(services.Configurator)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) (*Server, error) {
	if config.Server.Port == "" {
		return nil, fmt.Errorf("porta do servidor não configurada")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      config.Server.WriteTimeout,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	return srv, nil
}

// Run serve até receber SIGINT/SIGTERM ou ctx ser cancelado; falha ao abrir a porta retorna erro
func (s Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("erro durante a execução do servidor: %w", err)
		}
		return nil
	case <-signals:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
