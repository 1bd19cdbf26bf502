package charting

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
)

// ErrProjectNotFound indica que o projeto pedido não existe.
var ErrProjectNotFound = errors.New("projeto não encontrado")

// Charter produz o documento Gantt de um projeto.
type Charter interface {
	ProjectGanttSVG(projectID string, locale i18n.Locale) ([]byte, error)
}

type Service struct {
	projectRepository   repository.ProjectRepository
	milestoneRepository repository.MilestoneRepository
	now                 func() time.Time
}

func NewService(
	projectRepo repository.ProjectRepository,
	milestoneRepo repository.MilestoneRepository,
) Charter {
	return &Service{
		projectRepository:   projectRepo,
		milestoneRepository: milestoneRepo,
		now:                 time.Now,
	}
}

// ProjectGanttSVG monta a geometria dos marcos datados do projeto e devolve o
// SVG. ErrNoDatedMilestones sobe intacto para a camada HTTP responder 204.
func (s *Service) ProjectGanttSVG(projectID string, locale i18n.Locale) ([]byte, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar projeto: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	milestones, err := s.milestoneRepository.ListMilestonesByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar marcos do projeto: %w", err)
	}

	layout, err := BuildLayout(project, milestones, locale, s.now())
	if err != nil {
		return nil, err
	}

	return []byte(RenderSVG(layout)), nil
}
