package analyzing

import (
	"strings"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

// FilterMilestones aplica o conjunto conjuntivo de critérios sobre a coleção
// de marcos. Critério não preenchido sempre passa; os preenchidos são
// combinados com E lógico. A função é pura: devolve uma coleção nova e nunca
// altera os registros de entrada.
func FilterMilestones(
	milestones []*domain.Milestone,
	projects []*domain.Project,
	criteria domain.FilterCriteria,
) []*domain.Milestone {
	projectsByID := indexProjects(projects)

	filtered := make([]*domain.Milestone, 0, len(milestones))
	for _, milestone := range milestones {
		if !milestonePasses(milestone, projectsByID, criteria) {
			continue
		}

		filtered = append(filtered, milestone)
	}

	return filtered
}

// FilterProjects aplica os critérios de nível de projeto (gerente, cliente,
// status, país, busca textual e o próprio projeto). Os critérios de nível de
// marco não reduzem a lista de projetos: o projectCount do KPI conta o
// conjunto filtrado de projetos independente de terem marcos.
func FilterProjects(projects []*domain.Project, criteria domain.FilterCriteria) []*domain.Project {
	filtered := make([]*domain.Project, 0, len(projects))
	for _, project := range projects {
		if !projectPasses(project, criteria) {
			continue
		}

		filtered = append(filtered, project)
	}

	return filtered
}

// ReconcileCriteria valida o filtro dependente de projeto após uma mudança nos
// filtros de cima (gerente, cliente etc.). Se o projeto selecionado deixou de
// pertencer ao conjunto visível, o filtro volta para "todos". A regra é uma
// função pura chamada explicitamente a cada mudança de critérios, e não um
// efeito reativo implícito.
func ReconcileCriteria(criteria domain.FilterCriteria, projects []*domain.Project) domain.FilterCriteria {
	if criteria.ProjectID == nil {
		return criteria
	}

	available := FilterProjects(projects, criteria.WithoutProject())
	for _, project := range available {
		if project.ID == *criteria.ProjectID {
			return criteria
		}
	}

	criteria.ProjectID = nil
	return criteria
}

func indexProjects(projects []*domain.Project) map[string]*domain.Project {
	byID := make(map[string]*domain.Project, len(projects))
	for _, project := range projects {
		byID[project.ID] = project
	}
	return byID
}

func milestonePasses(
	milestone *domain.Milestone,
	projectsByID map[string]*domain.Project,
	criteria domain.FilterCriteria,
) bool {
	// Critérios de nível de projeto passam pelo projeto dono do marco.
	// Marco sem projeto (ou com referência órfã) falha qualquer critério
	// de projeto ativo.
	needsProject := criteria.ProjectID != nil ||
		criteria.ManagerID != nil ||
		criteria.CustomerID != nil ||
		criteria.StatusID != nil ||
		criteria.CountryID != nil ||
		criteria.SearchText != ""

	if needsProject {
		if milestone.ProjectID == nil {
			return false
		}

		project, ok := projectsByID[*milestone.ProjectID]
		if !ok {
			return false
		}

		if !projectPasses(project, criteria) {
			return false
		}
	}

	if criteria.PaymentStatus != nil {
		status, ok := milestone.EffectivePaymentStatus()
		if !ok || status != *criteria.PaymentStatus {
			return false
		}
	}

	if criteria.HasPayment != nil && milestone.HasPayment != *criteria.HasPayment {
		return false
	}

	// Marco sem data de vencimento falha qualquer filtro de mês/ano ativo.
	if criteria.Year != nil {
		if milestone.DueDate == nil || milestone.DueDate.Year() != *criteria.Year {
			return false
		}
	}

	if criteria.Month != nil {
		if milestone.DueDate == nil || milestone.DueDate.Month() != *criteria.Month {
			return false
		}
	}

	return true
}

func projectPasses(project *domain.Project, criteria domain.FilterCriteria) bool {
	if criteria.ProjectID != nil && project.ID != *criteria.ProjectID {
		return false
	}

	if criteria.ManagerID != nil {
		if project.ManagerID == nil || *project.ManagerID != *criteria.ManagerID {
			return false
		}
	}

	if criteria.CustomerID != nil {
		if project.CustomerID == nil || *project.CustomerID != *criteria.CustomerID {
			return false
		}
	}

	if criteria.StatusID != nil {
		if project.StatusID == nil || *project.StatusID != *criteria.StatusID {
			return false
		}
	}

	if criteria.CountryID != nil {
		if project.CountryID == nil || *project.CountryID != *criteria.CountryID {
			return false
		}
	}

	if criteria.SearchText != "" {
		if !strings.Contains(strings.ToLower(project.Name), strings.ToLower(criteria.SearchText)) {
			return false
		}
	}

	return true
}
