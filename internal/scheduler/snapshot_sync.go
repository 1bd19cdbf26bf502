// Package scheduler contém os serviços de agendamento de pré-cálculo do
// portfólio
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/config"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
)

type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncStatus é o estado exposto pelo endpoint de cron.
type SnapshotSyncStatus struct {
	Enabled             bool       `json:"enabled"`
	CronSchedule        string     `json:"cron_schedule"`
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at"`
}

// SnapshotSyncService materializa a visão drill-down (período -> projeto) em
// uma tabela de snapshots, de madrugada, para consulta histórica barata.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	snapshotRepo        repository.SnapshotRepository
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotSyncService(
	analyzer analyzing.Analyzer,
	snapshotRepo repository.SnapshotRepository,
	cfg *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.SnapshotSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots do portfólio carregada")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		analyzer:     analyzer,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
	}
}

func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots do portfólio desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots do portfólio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots do portfólio")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots do portfólio")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshots recalcula a visão mensal completa e grava um upsert por
// (período, projeto). Disparos sobrepostos colapsam em uma execução só; a
// trava é liberada em defer para uma falha não travar as próximas execuções.
func (s *SnapshotSyncService) SyncSnapshots() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de snapshots do portfólio já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots do portfólio")

	// Coleções completas, sem filtro: o snapshot é a visão de todo o
	// portfólio; o balde sem data não vira período histórico.
	periods, err := s.analyzer.DrillDownByPeriod(domain.FilterCriteria{}, i18n.DefaultLocale)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular a visão mensal do portfólio")
		return err
	}

	snapshots := make([]*domain.PortfolioSnapshot, 0)
	for _, period := range periods {
		if period.Period == "" {
			continue
		}

		for _, row := range period.Projects {
			snapshots = append(snapshots, &domain.PortfolioSnapshot{
				Period:         period.Period,
				ProjectID:      row.ProjectID,
				ProjectName:    row.ProjectName,
				MilestoneCount: row.MilestoneCount,
				PaymentTotal:   row.PaymentTotal,
				PendingCount:   row.PendingCount,
				SentCount:      row.SentCount,
				PaidCount:      row.PaidCount,
			})
		}
	}

	if err := s.snapshotRepo.SaveOrUpdateSnapshots(snapshots); err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshots do portfólio")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"periods":   len(periods),
		"snapshots": len(snapshots),
	}).Info("Sincronização de snapshots do portfólio concluída")

	return nil
}

// Status devolve o estado atual do agendador para o endpoint de cron.
func (s *SnapshotSyncService) Status() SnapshotSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SnapshotSyncStatus{
		Enabled:      s.config.SyncEnabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}
