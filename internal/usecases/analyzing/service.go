package analyzing

import (
	"fmt"

	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
)

// Analyzer expõe as leituras analíticas do painel sobre o portfólio.
type Analyzer interface {
	Summary(criteria domain.FilterCriteria) (*Summary, error)
	Groups(criteria domain.FilterCriteria, dimension Dimension, measure Measure, locale i18n.Locale) ([]GroupRow, error)
	DrillDownByPeriod(criteria domain.FilterCriteria, locale i18n.Locale) ([]*PeriodGroup, error)
	Reconcile(criteria domain.FilterCriteria) (domain.FilterCriteria, error)
}

type Service struct {
	projectRepository   repository.ProjectRepository
	milestoneRepository repository.MilestoneRepository
	lookupRepository    repository.LookupRepository
	userRepository      repository.UserRepository
}

// NewService cria uma nova instância do serviço de análise do portfólio
func NewService(
	projectRepo repository.ProjectRepository,
	milestoneRepo repository.MilestoneRepository,
	lookupRepo repository.LookupRepository,
	userRepo repository.UserRepository,
) Analyzer {
	return &Service{
		projectRepository:   projectRepo,
		milestoneRepository: milestoneRepo,
		lookupRepository:    lookupRepo,
		userRepository:      userRepo,
	}
}

// collections agrupa o que cada leitura analítica precisa carregar.
type collections struct {
	projects   []*domain.Project
	milestones []*domain.Milestone
	resolver   *Resolver
}

func (s *Service) load() (*collections, error) {
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

	return &collections{
		projects:   projects,
		milestones: milestones,
		resolver:   NewResolver(lookups, users, projects),
	}, nil
}

// Summary calcula os cartões de KPI sobre o conjunto filtrado.
func (s *Service) Summary(criteria domain.FilterCriteria) (*Summary, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	projects := FilterProjects(data.projects, criteria)
	milestones := FilterMilestones(data.milestones, data.projects, criteria)

	summary := Summarize(projects, milestones)
	return &summary, nil
}

// Groups agrupa os marcos filtrados por uma dimensão e devolve as linhas já
// agregadas e ordenadas pela medida ativa.
func (s *Service) Groups(
	criteria domain.FilterCriteria,
	dimension Dimension,
	measure Measure,
	locale i18n.Locale,
) ([]GroupRow, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	milestones := FilterMilestones(data.milestones, data.projects, criteria)
	groups := GroupMilestones(milestones, data.resolver, dimension, locale)

	return AggregateGroups(groups, measure), nil
}

// DrillDownByPeriod devolve a visão mensal detalhada por projeto.
func (s *Service) DrillDownByPeriod(criteria domain.FilterCriteria, locale i18n.Locale) ([]*PeriodGroup, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	milestones := FilterMilestones(data.milestones, data.projects, criteria)

	return DrillDown(milestones, data.resolver, locale), nil
}

// Reconcile limpa o filtro de projeto quando ele deixa de ser compatível com
// os demais critérios, espelhando o comportamento do seletor dependente do
// painel.
func (s *Service) Reconcile(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
	data, err := s.load()
	if err != nil {
		return criteria, err
	}

	return ReconcileCriteria(criteria, data.projects), nil
}
