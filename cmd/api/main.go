package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/api"
	"github.com/vfg2006/portfolio-manager-api/internal/config"
	"github.com/vfg2006/portfolio-manager-api/internal/scheduler"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/charting"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/customizing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/reporting"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	projectRepo := repository.NewProjectRepository(pgConn)
	milestoneRepo := repository.NewMilestoneRepository(pgConn)
	lookupRepo := repository.NewLookupRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	milestoneUpdateRepo := repository.NewMilestoneUpdateRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	analyzerService := analyzing.NewService(projectRepo, milestoneRepo, lookupRepo, userRepo)
	reporterService := reporting.NewService(projectRepo, milestoneRepo, lookupRepo, userRepo, milestoneUpdateRepo)
	charterService := charting.NewService(projectRepo, milestoneRepo)
	managerService := managing.NewService(projectRepo, milestoneRepo, lookupRepo, userRepo, milestoneUpdateRepo)

	customizerService := customizing.NewService(kvStore(ctx, cfg))

	snapshotSyncService := scheduler.NewSnapshotSyncService(analyzerService, snapshotRepo, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshots")
	} else {
		logrus.Info("Agendador de sincronização de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzerService,
		reporterService,
		charterService,
		managerService,
		customizerService,
		authenticator,
		snapshotRepo,
		snapshotSyncService,
	)
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

// kvStore escolhe o armazém chave-valor: Redis quando habilitado, memória
// caso contrário (perde a personalização do painel a cada reinício).
func kvStore(ctx context.Context, cfg *config.Config) kvstore.KeyValueStore {
	if !cfg.Redis.Enabled {
		logrus.Warn("Redis desabilitado, usando armazém chave-valor em memória")
		return kvstore.NewMemoryStore()
	}

	store, err := kvstore.NewRedisStore(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao Redis, usando armazém em memória")
		return kvstore.NewMemoryStore()
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return store
}
