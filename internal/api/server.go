package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/api/handler"
	"github.com/vfg2006/portfolio-manager-api/internal/api/handler/router"
	"github.com/vfg2006/portfolio-manager-api/internal/config"
	"github.com/vfg2006/portfolio-manager-api/internal/scheduler"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/charting"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/customizing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/portfolio-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzerService analyzing.Analyzer,
	reporterService reporting.Reporter,
	charterService charting.Charter,
	managerService managing.Manager,
	customizerService customizing.Customizer,
	authenticator authenticating.Authenticator,
	snapshotRepository repository.SnapshotRepository,
	snapshotSyncService *scheduler.SnapshotSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotSyncService: snapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Portfolio(managerService)...),
		router.WithRoutes(handler.Projects(managerService)...),
		router.WithRoutes(handler.Milestones(managerService)...),
		router.WithRoutes(handler.Lookups(managerService)...),
		router.WithRoutes(handler.Analytics(analyzerService)...),
		router.WithRoutes(handler.Reports(reporterService)...),
		router.WithRoutes(handler.Gantt(charterService)...),
		router.WithRoutes(handler.Dashboard(customizerService)...),
		router.WithRoutes(handler.Snapshots(snapshotRepository)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
