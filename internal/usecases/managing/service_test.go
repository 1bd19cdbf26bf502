package managing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockProjectRepository,
	*mocks.MockMilestoneRepository,
	*mocks.MockLookupRepository,
	*mocks.MockMilestoneUpdateRepository,
) {
	projectRepo := mocks.NewMockProjectRepository(ctrl)
	milestoneRepo := mocks.NewMockMilestoneRepository(ctrl)
	lookupRepo := mocks.NewMockLookupRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	updateRepo := mocks.NewMockMilestoneUpdateRepository(ctrl)

	service := &Service{
		projectRepository:   projectRepo,
		milestoneRepository: milestoneRepo,
		lookupRepository:    lookupRepo,
		userRepository:      userRepo,
		updateRepository:    updateRepo,
	}

	return service, projectRepo, milestoneRepo, lookupRepo, updateRepo
}

func TestService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, projectRepo, _, _, _ := newTestService(ctrl)

	t.Run("Nome obrigatório", func(t *testing.T) {
		response, err := service.CreateProject(&domain.Project{})

		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("Progresso fora do intervalo é rejeitado", func(t *testing.T) {
		response, err := service.CreateProject(&domain.Project{Name: "Projeto Alfa", Progress: 120})

		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrInvalidProgress)
	})

	t.Run("Gera id e código quando ausentes", func(t *testing.T) {
		projectRepo.EXPECT().
			CreateProject(gomock.Any()).
			DoAndReturn(func(project *domain.Project) error {
				assert.NotEmpty(t, project.ID)
				assert.Contains(t, project.Code, "PRJ-")
				return nil
			})

		response, err := service.CreateProject(&domain.Project{Name: "Projeto Alfa", Progress: 50})

		assert.NoError(t, err)
		assert.Equal(t, 3, response.PriorityScore) // pesos todos no padrão
	})
}

func TestService_UpdateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, projectRepo, _, _, _ := newTestService(ctrl)

	t.Run("Projeto inexistente", func(t *testing.T) {
		projectRepo.EXPECT().GetProjectByID("P404").Return(nil, nil)

		response, err := service.UpdateProject(&domain.UpdateProjectRequest{ID: "P404"})

		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("Campo nulo não altera o registro persistido", func(t *testing.T) {
		current := &domain.Project{ID: "P1", Name: "Projeto Alfa", Description: "original", Progress: 40}

		projectRepo.EXPECT().GetProjectByID("P1").Return(current, nil)
		projectRepo.EXPECT().
			UpdateProject(gomock.Any()).
			DoAndReturn(func(project *domain.Project) error {
				assert.Equal(t, "Novo nome", project.Name)
				assert.Equal(t, "original", project.Description)
				assert.Equal(t, 40, project.Progress)
				return nil
			})

		name := "Novo nome"
		response, err := service.UpdateProject(&domain.UpdateProjectRequest{ID: "P1", Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Novo nome", response.Name)
	})
}

func TestService_CreateMilestone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, milestoneRepo, _, _ := newTestService(ctrl)

	t.Run("Título obrigatório", func(t *testing.T) {
		milestone, err := service.CreateMilestone(&domain.Milestone{})

		assert.Nil(t, milestone)
		assert.ErrorIs(t, err, ErrMissingTitle)
	})

	t.Run("Marco não pagável tem o sub-registro de pagamento limpo", func(t *testing.T) {
		status := domain.PaymentStatusSent
		input := &domain.Milestone{
			Title:         "Kickoff",
			HasPayment:    false,
			PaymentAmount: 999,
			PaymentStatus: &status,
		}

		milestoneRepo.EXPECT().
			CreateMilestone(gomock.Any()).
			DoAndReturn(func(milestone *domain.Milestone) error {
				assert.Zero(t, milestone.PaymentAmount)
				assert.Nil(t, milestone.PaymentStatus)
				assert.Equal(t, domain.MilestoneStatusPending, milestone.Status)
				return nil
			})

		milestone, err := service.CreateMilestone(input)

		assert.NoError(t, err)
		assert.NotEmpty(t, milestone.ID)
	})
}

func TestService_UpdateLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, lookupRepo, _ := newTestService(ctrl)

	t.Run("Tipo do cadastro nunca muda depois de criado", func(t *testing.T) {
		current := &domain.Lookup{ID: "L1", Kind: domain.LookupKindCountry, Name: "Brasil"}

		lookupRepo.EXPECT().GetLookupByID("L1").Return(current, nil)
		lookupRepo.EXPECT().
			UpdateLookup(gomock.Any()).
			DoAndReturn(func(lookup *domain.Lookup) error {
				assert.Equal(t, domain.LookupKindCountry, lookup.Kind)
				assert.Equal(t, "Brasil - Matriz", lookup.Name)
				return nil
			})

		updated, err := service.UpdateLookup(&domain.Lookup{
			ID:   "L1",
			Kind: domain.LookupKindTeam, // tentativa ignorada
			Name: "Brasil - Matriz",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.LookupKindCountry, updated.Kind)
	})

	t.Run("Cadastro inexistente", func(t *testing.T) {
		lookupRepo.EXPECT().GetLookupByID("L404").Return(nil, nil)

		updated, err := service.UpdateLookup(&domain.Lookup{ID: "L404", Name: "Qualquer"})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrLookupNotFound)
	})
}

func TestService_CreateLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, lookupRepo, _ := newTestService(ctrl)

	t.Run("Tipo inválido é rejeitado", func(t *testing.T) {
		lookup, err := service.CreateLookup(&domain.Lookup{Name: "Qualquer", Kind: domain.LookupKind("FRUTA")})

		assert.Nil(t, lookup)
		assert.ErrorIs(t, err, ErrInvalidLookupKind)
	})

	t.Run("Cadastro válido recebe id gerado", func(t *testing.T) {
		lookupRepo.EXPECT().CreateLookup(gomock.Any()).Return(nil)

		lookup, err := service.CreateLookup(&domain.Lookup{Name: "Israel", Kind: domain.LookupKindCountry})

		assert.NoError(t, err)
		assert.NotEmpty(t, lookup.ID)
	})
}

func TestService_AddMilestoneUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, milestoneRepo, _, updateRepo := newTestService(ctrl)

	t.Run("Texto obrigatório", func(t *testing.T) {
		update, err := service.AddMilestoneUpdate(&domain.MilestoneUpdate{MilestoneID: "M1"})

		assert.Nil(t, update)
		assert.ErrorIs(t, err, ErrMissingBody)
	})

	t.Run("Marco inexistente", func(t *testing.T) {
		milestoneRepo.EXPECT().GetMilestoneByID("M404").Return(nil, nil)

		update, err := service.AddMilestoneUpdate(&domain.MilestoneUpdate{MilestoneID: "M404", Body: "nota"})

		assert.Nil(t, update)
		assert.ErrorIs(t, err, ErrMilestoneNotFound)
	})

	t.Run("Nota recebe id e data de criação", func(t *testing.T) {
		milestoneRepo.EXPECT().GetMilestoneByID("M1").Return(&domain.Milestone{ID: "M1"}, nil)
		updateRepo.EXPECT().CreateUpdate(gomock.Any()).Return(nil)

		update, err := service.AddMilestoneUpdate(&domain.MilestoneUpdate{
			MilestoneID: "M1",
			AuthorID:    10,
			AuthorName:  "Ana Souza",
			Body:        "Cliente aprovou o escopo",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, update.ID)
		assert.False(t, update.CreatedAt.IsZero())
	})
}
