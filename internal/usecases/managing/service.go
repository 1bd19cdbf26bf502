// Package managing cobre as escritas do portfólio: CRUD de projetos, marcos,
// cadastros auxiliares e notas de marco, além da carga completa que a SPA
// busca por sessão.
package managing

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

var (
	ErrProjectNotFound   = errors.New("projeto não encontrado")
	ErrMilestoneNotFound = errors.New("marco não encontrado")
	ErrLookupNotFound    = errors.New("cadastro auxiliar não encontrado")
	ErrInvalidProgress   = errors.New("progresso deve estar entre 0 e 100")
	ErrInvalidLookupKind = errors.New("tipo de cadastro auxiliar inválido")
	ErrMissingName       = errors.New("nome é obrigatório")
	ErrMissingTitle      = errors.New("título é obrigatório")
	ErrMissingBody       = errors.New("texto da nota é obrigatório")
)

// Manager é a superfície de escrita e de carga do portfólio.
type Manager interface {
	LoadPortfolio() (*domain.Portfolio, error)

	ListProjects() ([]*domain.ProjectResponse, error)
	GetProject(id string) (*domain.ProjectResponse, error)
	CreateProject(project *domain.Project) (*domain.ProjectResponse, error)
	UpdateProject(request *domain.UpdateProjectRequest) (*domain.ProjectResponse, error)
	DeleteProject(id string) error

	ListMilestones() ([]*domain.Milestone, error)
	CreateMilestone(milestone *domain.Milestone) (*domain.Milestone, error)
	UpdateMilestone(request *domain.UpdateMilestoneRequest) (*domain.Milestone, error)
	DeleteMilestone(id string) error

	ListLookups(kinds []domain.LookupKind) ([]*domain.Lookup, error)
	CreateLookup(lookup *domain.Lookup) (*domain.Lookup, error)
	UpdateLookup(lookup *domain.Lookup) (*domain.Lookup, error)
	DeleteLookup(id string) error

	ListMilestoneUpdates(milestoneID string, from, to *time.Time) ([]*domain.MilestoneUpdate, error)
	AddMilestoneUpdate(update *domain.MilestoneUpdate) (*domain.MilestoneUpdate, error)
}

type Service struct {
	projectRepository   repository.ProjectRepository
	milestoneRepository repository.MilestoneRepository
	lookupRepository    repository.LookupRepository
	userRepository      repository.UserRepository
	updateRepository    repository.MilestoneUpdateRepository
}

func NewService(
	projectRepo repository.ProjectRepository,
	milestoneRepo repository.MilestoneRepository,
	lookupRepo repository.LookupRepository,
	userRepo repository.UserRepository,
	updateRepo repository.MilestoneUpdateRepository,
) Manager {
	return &Service{
		projectRepository:   projectRepo,
		milestoneRepository: milestoneRepo,
		lookupRepository:    lookupRepo,
		userRepository:      userRepo,
		updateRepository:    updateRepo,
	}
}

// LoadPortfolio devolve todas as coleções de uma vez; é a única leitura que a
// SPA faz no login e depois de cada escrita.
func (s *Service) LoadPortfolio() (*domain.Portfolio, error) {
	projects, err := s.ListProjects()
	if err != nil {
		return nil, err
	}

	milestones, err := s.milestoneRepository.ListMilestones()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar marcos: %w", err)
	}

	users, err := s.userRepository.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar usuários: %w", err)
	}
	for _, user := range users {
		user.PasswordHash = ""
	}

	lookups, err := s.lookupRepository.ListLookups(nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar cadastros auxiliares: %w", err)
	}

	return &domain.Portfolio{
		Projects:   projects,
		Milestones: milestones,
		Users:      users,
		Lookups:    lookups,
	}, nil
}

func (s *Service) ListProjects() ([]*domain.ProjectResponse, error) {
	projects, err := s.projectRepository.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar projetos: %w", err)
	}

	responses := make([]*domain.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, domain.NewProjectResponse(project))
	}
	return responses, nil
}

func (s *Service) GetProject(id string) (*domain.ProjectResponse, error) {
	project, err := s.projectRepository.GetProjectByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return domain.NewProjectResponse(project), nil
}

func (s *Service) CreateProject(project *domain.Project) (*domain.ProjectResponse, error) {
	if project.Name == "" {
		return nil, ErrMissingName
	}
	if err := validateProgress(project.Progress); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	project.ID = id

	if project.Code == "" {
		code, err := utils.GenerateProjectCode()
		if err != nil {
			return nil, err
		}
		project.Code = code
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("erro ao criar projeto: %w", err)
	}

	return domain.NewProjectResponse(project), nil
}

func (s *Service) UpdateProject(request *domain.UpdateProjectRequest) (*domain.ProjectResponse, error) {
	project, err := s.projectRepository.GetProjectByID(request.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	applyProjectUpdate(project, request)

	if err := validateProgress(project.Progress); err != nil {
		return nil, err
	}

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, fmt.Errorf("erro ao atualizar projeto: %w", err)
	}

	return domain.NewProjectResponse(project), nil
}

func (s *Service) DeleteProject(id string) error {
	project, err := s.projectRepository.GetProjectByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	return s.projectRepository.DeleteProject(id)
}

func (s *Service) ListMilestones() ([]*domain.Milestone, error) {
	return s.milestoneRepository.ListMilestones()
}

func (s *Service) CreateMilestone(milestone *domain.Milestone) (*domain.Milestone, error) {
	if milestone.Title == "" {
		return nil, ErrMissingTitle
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	milestone.ID = id

	if milestone.Status == "" {
		milestone.Status = domain.MilestoneStatusPending
	}
	milestone.NormalizePayment()

	if err := s.milestoneRepository.CreateMilestone(milestone); err != nil {
		return nil, fmt.Errorf("erro ao criar marco: %w", err)
	}

	return milestone, nil
}

func (s *Service) UpdateMilestone(request *domain.UpdateMilestoneRequest) (*domain.Milestone, error) {
	milestone, err := s.milestoneRepository.GetMilestoneByID(request.ID)
	if err != nil {
		return nil, err
	}
	if milestone == nil {
		return nil, ErrMilestoneNotFound
	}

	applyMilestoneUpdate(milestone, request)
	milestone.NormalizePayment()

	if err := s.milestoneRepository.UpdateMilestone(milestone); err != nil {
		return nil, fmt.Errorf("erro ao atualizar marco: %w", err)
	}

	return milestone, nil
}

func (s *Service) DeleteMilestone(id string) error {
	milestone, err := s.milestoneRepository.GetMilestoneByID(id)
	if err != nil {
		return err
	}
	if milestone == nil {
		return ErrMilestoneNotFound
	}

	return s.milestoneRepository.DeleteMilestone(id)
}

func (s *Service) ListLookups(kinds []domain.LookupKind) ([]*domain.Lookup, error) {
	for _, kind := range kinds {
		if !kind.Valid() {
			return nil, ErrInvalidLookupKind
		}
	}
	return s.lookupRepository.ListLookups(kinds)
}

func (s *Service) CreateLookup(lookup *domain.Lookup) (*domain.Lookup, error) {
	if lookup.Name == "" {
		return nil, ErrMissingName
	}
	if !lookup.Kind.Valid() {
		return nil, ErrInvalidLookupKind
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	lookup.ID = id

	if err := s.lookupRepository.CreateLookup(lookup); err != nil {
		return nil, fmt.Errorf("erro ao criar cadastro auxiliar: %w", err)
	}

	return lookup, nil
}

func (s *Service) UpdateLookup(lookup *domain.Lookup) (*domain.Lookup, error) {
	if lookup.Name == "" {
		return nil, ErrMissingName
	}

	current, err := s.lookupRepository.GetLookupByID(lookup.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrLookupNotFound
	}

	// O tipo de um cadastro auxiliar nunca muda depois de criado.
	current.Name = lookup.Name

	if err := s.lookupRepository.UpdateLookup(current); err != nil {
		return nil, fmt.Errorf("erro ao atualizar cadastro auxiliar: %w", err)
	}

	return current, nil
}

func (s *Service) DeleteLookup(id string) error {
	lookup, err := s.lookupRepository.GetLookupByID(id)
	if err != nil {
		return err
	}
	if lookup == nil {
		return ErrLookupNotFound
	}

	return s.lookupRepository.DeleteLookup(id)
}

func (s *Service) ListMilestoneUpdates(milestoneID string, from, to *time.Time) ([]*domain.MilestoneUpdate, error) {
	return s.updateRepository.ListUpdatesByMilestone(milestoneID, from, to)
}

// AddMilestoneUpdate anexa uma nota imutável ao marco; notas nunca são
// editadas nem removidas.
func (s *Service) AddMilestoneUpdate(update *domain.MilestoneUpdate) (*domain.MilestoneUpdate, error) {
	if update.Body == "" {
		return nil, ErrMissingBody
	}

	milestone, err := s.milestoneRepository.GetMilestoneByID(update.MilestoneID)
	if err != nil {
		return nil, err
	}
	if milestone == nil {
		return nil, ErrMilestoneNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	update.ID = id
	update.CreatedAt = time.Now()

	if err := s.updateRepository.CreateUpdate(update); err != nil {
		return nil, fmt.Errorf("erro ao registrar nota do marco: %w", err)
	}

	return update, nil
}

func validateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}
	return nil
}

func applyProjectUpdate(project *domain.Project, request *domain.UpdateProjectRequest) {
	if request.Name != nil {
		project.Name = *request.Name
	}
	if request.Description != nil {
		project.Description = *request.Description
	}
	if request.CountryID != nil {
		project.CountryID = request.CountryID
	}
	if request.CategoryID != nil {
		project.CategoryID = request.CategoryID
	}
	if request.TeamID != nil {
		project.TeamID = request.TeamID
	}
	if request.ProductID != nil {
		project.ProductID = request.ProductID
	}
	if request.StatusID != nil {
		project.StatusID = request.StatusID
	}
	if request.ManagerID != nil {
		project.ManagerID = request.ManagerID
	}
	if request.CustomerID != nil {
		project.CustomerID = request.CustomerID
	}
	if request.LaunchDate != nil {
		project.LaunchDate = request.LaunchDate
	}
	if request.ActualStartDate != nil {
		project.ActualStartDate = request.ActualStartDate
	}
	if request.ExpectedClosureDate != nil {
		project.ExpectedClosureDate = request.ExpectedClosureDate
	}
	if request.Progress != nil {
		project.Progress = *request.Progress
	}
	if request.RevenueImpact != nil {
		project.RevenueImpact = request.RevenueImpact
	}
	if request.StrategicValue != nil {
		project.StrategicValue = request.StrategicValue
	}
	if request.DeliveryRisk != nil {
		project.DeliveryRisk = request.DeliveryRisk
	}
	if request.CustomerPressure != nil {
		project.CustomerPressure = request.CustomerPressure
	}
	if request.ResourceLoad != nil {
		project.ResourceLoad = request.ResourceLoad
	}
}

func applyMilestoneUpdate(milestone *domain.Milestone, request *domain.UpdateMilestoneRequest) {
	if request.Title != nil {
		milestone.Title = *request.Title
	}
	if request.Description != nil {
		milestone.Description = *request.Description
	}
	if request.ProjectID != nil {
		milestone.ProjectID = request.ProjectID
	}
	if request.TeamID != nil {
		milestone.TeamID = request.TeamID
	}
	if request.DueDate != nil {
		milestone.DueDate = request.DueDate
	}
	if request.Status != nil {
		milestone.Status = *request.Status
	}
	if request.HasPayment != nil {
		milestone.HasPayment = *request.HasPayment
	}
	if request.PaymentAmount != nil {
		milestone.PaymentAmount = *request.PaymentAmount
	}
	if request.PaymentStatus != nil {
		milestone.PaymentStatus = request.PaymentStatus
	}
}
