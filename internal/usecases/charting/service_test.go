package charting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
	"go.uber.org/mock/gomock"
)

func TestService_ProjectGanttSVG(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := mocks.NewMockProjectRepository(ctrl)
	mockMilestoneRepo := mocks.NewMockMilestoneRepository(ctrl)

	service := &Service{
		projectRepository:   mockProjectRepo,
		milestoneRepository: mockMilestoneRepo,
		now:                 func() time.Time { return time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC) },
	}

	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Projeto inexistente", func(t *testing.T) {
		mockProjectRepo.EXPECT().GetProjectByID("P404").Return(nil, nil)

		svg, err := service.ProjectGanttSVG("P404", i18n.LocaleEnglish)

		assert.Nil(t, svg)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("Projeto sem marcos datados propaga o erro de estado vazio", func(t *testing.T) {
		mockProjectRepo.EXPECT().GetProjectByID("P1").
			Return(&domain.Project{ID: "P1", Name: "Projeto Alfa"}, nil)
		mockMilestoneRepo.EXPECT().ListMilestonesByProject("P1").
			Return([]*domain.Milestone{{ID: "M1", Title: "Sem data"}}, nil)

		svg, err := service.ProjectGanttSVG("P1", i18n.LocaleEnglish)

		assert.Nil(t, svg)
		assert.ErrorIs(t, err, ErrNoDatedMilestones)
	})

	t.Run("Projeto com marco datado devolve o documento", func(t *testing.T) {
		mockProjectRepo.EXPECT().GetProjectByID("P1").
			Return(&domain.Project{ID: "P1", Name: "Projeto Alfa"}, nil)
		mockMilestoneRepo.EXPECT().ListMilestonesByProject("P1").
			Return([]*domain.Milestone{
				{ID: "M1", Title: "Kickoff", DueDate: &due, Status: domain.MilestoneStatusPending},
			}, nil)

		svg, err := service.ProjectGanttSVG("P1", i18n.LocaleEnglish)

		assert.NoError(t, err)
		assert.Contains(t, string(svg), "<svg")
	})

	t.Run("Erro do repositório sobe com contexto", func(t *testing.T) {
		mockProjectRepo.EXPECT().GetProjectByID("P1").
			Return(nil, errors.New("conexão recusada"))

		svg, err := service.ProjectGanttSVG("P1", i18n.LocaleEnglish)

		assert.Nil(t, svg)
		assert.ErrorContains(t, err, "erro ao carregar projeto")
	})
}
