package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
)

// Reporter monta relatórios compostos pelo usuário sobre o portfólio e as
// exportações em CSV derivadas deles.
type Reporter interface {
	Build(params Params) (*Report, error)
	BuildCSV(params Params) ([]byte, error)
	UpdateHistoryCSV(milestoneID string, from, to *time.Time) ([]byte, error)
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
) Reporter {
	return &Service{
		projectRepository:   projectRepo,
		milestoneRepository: milestoneRepo,
		lookupRepository:    lookupRepo,
		userRepository:      userRepo,
		updateRepository:    updateRepo,
	}
}

// Build carrega as coleções, aplica os critérios do painel e reconstrói o
// relatório do zero.
func (s *Service) Build(params Params) (*Report, error) {
	projects, err := s.projectRepository.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar projetos: %w", err)
	}

	milestones, err := s.milestoneRepository.ListMilestones()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar marcos: %w", err)
	}

	lookups, err := s.lookupRepository.ListLookups(nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar cadastros auxiliares: %w", err)
	}

	users, err := s.userRepository.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar usuários: %w", err)
	}

	resolver := analyzing.NewResolver(lookups, users, projects)

	filteredProjects := analyzing.FilterProjects(projects, params.Criteria)
	filteredMilestones := analyzing.FilterMilestones(milestones, projects, params.Criteria)

	return BuildReport(filteredProjects, filteredMilestones, resolver, params), nil
}

// BuildCSV monta o relatório e o serializa para download.
func (s *Service) BuildCSV(params Params) ([]byte, error) {
	report, err := s.Build(params)
	if err != nil {
		return nil, err
	}

	return ReportCSV(report)
}

// UpdateHistoryCSV exporta o histórico de notas de um marco no intervalo
// pedido.
func (s *Service) UpdateHistoryCSV(milestoneID string, from, to *time.Time) ([]byte, error) {
	updates, err := s.updateRepository.ListUpdatesByMilestone(milestoneID, from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar histórico do marco: %w", err)
	}

	return MilestoneUpdatesCSV(updates)
}
