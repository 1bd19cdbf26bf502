package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	analyzingmocks "github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
	"go.uber.org/mock/gomock"
)

func TestSnapshotSyncService_SyncSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := &SnapshotSyncService{
		analyzer:     mockAnalyzer,
		snapshotRepo: mockSnapshotRepo,
		config: SnapshotSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
		},
	}

	t.Run("Materializa uma linha por par período-projeto", func(t *testing.T) {
		periods := []*analyzing.PeriodGroup{
			{
				Period: "01-2024",
				Label:  "January 2024",
				Projects: []*analyzing.PeriodProjectRow{
					{ProjectID: "P1", ProjectName: "Projeto Alfa", MilestoneCount: 2, PaymentTotal: 300, PendingCount: 1, PaidCount: 1},
					{ProjectID: "P2", ProjectName: "Projeto Beta", MilestoneCount: 1, PaymentTotal: 50, SentCount: 1},
				},
			},
			{
				Period: "03-2024",
				Label:  "March 2024",
				Projects: []*analyzing.PeriodProjectRow{
					{ProjectID: "P1", ProjectName: "Projeto Alfa", MilestoneCount: 1, PaymentTotal: 100, PendingCount: 1},
				},
			},
		}

		mockAnalyzer.EXPECT().
			DrillDownByPeriod(domain.FilterCriteria{}, i18n.DefaultLocale).
			Return(periods, nil)

		mockSnapshotRepo.EXPECT().
			SaveOrUpdateSnapshots(gomock.Any()).
			DoAndReturn(func(snapshots []*domain.PortfolioSnapshot) error {
				assert.Len(t, snapshots, 3)
				assert.Equal(t, "01-2024", snapshots[0].Period)
				assert.Equal(t, "P1", snapshots[0].ProjectID)
				assert.Equal(t, 300.0, snapshots[0].PaymentTotal)
				assert.Equal(t, "03-2024", snapshots[2].Period)
				return nil
			})

		err := service.SyncSnapshots()
		assert.NoError(t, err)

		status := service.Status()
		assert.False(t, status.Running)
		assert.NotNil(t, status.LastSyncStartedAt)
		assert.NotNil(t, status.LastSyncCompletedAt)
	})

	t.Run("Balde sem data não vira período histórico", func(t *testing.T) {
		periods := []*analyzing.PeriodGroup{
			{
				Period: "",
				Label:  "Unassigned",
				Projects: []*analyzing.PeriodProjectRow{
					{ProjectID: "P1", ProjectName: "Projeto Alfa", MilestoneCount: 1},
				},
			},
		}

		mockAnalyzer.EXPECT().
			DrillDownByPeriod(domain.FilterCriteria{}, i18n.DefaultLocale).
			Return(periods, nil)

		mockSnapshotRepo.EXPECT().
			SaveOrUpdateSnapshots(gomock.Any()).
			DoAndReturn(func(snapshots []*domain.PortfolioSnapshot) error {
				assert.Empty(t, snapshots)
				return nil
			})

		assert.NoError(t, service.SyncSnapshots())
	})

	t.Run("Erro do cálculo mensal sobe e libera a trava", func(t *testing.T) {
		mockAnalyzer.EXPECT().
			DrillDownByPeriod(domain.FilterCriteria{}, i18n.DefaultLocale).
			Return(nil, errors.New("conexão recusada"))

		err := service.SyncSnapshots()
		assert.Error(t, err)

		// A trava foi liberada: a próxima execução roda normalmente.
		mockAnalyzer.EXPECT().
			DrillDownByPeriod(domain.FilterCriteria{}, i18n.DefaultLocale).
			Return(nil, nil)
		mockSnapshotRepo.EXPECT().
			SaveOrUpdateSnapshots(gomock.Any()).
			Return(nil)

		assert.NoError(t, service.SyncSnapshots())
	})
}

func TestSnapshotSyncService_Status(t *testing.T) {
	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  false,
		},
	}

	status := service.Status()

	assert.False(t, status.Enabled)
	assert.Equal(t, "0 3 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastSyncStartedAt)
	assert.Nil(t, status.LastSyncCompletedAt)
}
