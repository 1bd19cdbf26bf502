package analyzing

import (
	"sort"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// Dimension é o eixo categórico ou temporal de um agrupamento.
type Dimension string

const (
	DimensionStatus   Dimension = "status"
	DimensionCustomer Dimension = "customer"
	DimensionManager  Dimension = "manager"
	DimensionCountry  Dimension = "country"
	DimensionTeam     Dimension = "team"
	DimensionProject  Dimension = "project"
	DimensionMonth    Dimension = "month"
)

// ParseDimension normaliza a dimensão vinda da query string; valor
// desconhecido cai no agrupamento por status.
func ParseDimension(s string) Dimension {
	switch Dimension(s) {
	case DimensionStatus, DimensionCustomer, DimensionManager,
		DimensionCountry, DimensionTeam, DimensionProject, DimensionMonth:
		return Dimension(s)
	}
	return DimensionStatus
}

// Measure é a medida agregada de um grupo.
type Measure string

const (
	MeasureCount Measure = "count"
	MeasureSum   Measure = "sum"
	MeasureAvg   Measure = "avg"
)

func ParseMeasure(s string) Measure {
	switch Measure(s) {
	case MeasureCount, MeasureSum, MeasureAvg:
		return Measure(s)
	}
	return MeasureCount
}

// Group é um balde de marcos com o mesmo rótulo de dimensão, na ordem de
// primeira aparição do rótulo na coleção de entrada.
type Group struct {
	Label      string
	Milestones []*domain.Milestone
}

// GroupRow é uma linha agregada pronta para o gráfico do painel.
type GroupRow struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
}

// GroupMilestones agrupa os marcos por uma dimensão. Registro com valor de
// dimensão ausente vai para o balde "Unassigned" em vez de ser descartado, de
// modo que a soma dos tamanhos dos grupos é sempre o tamanho da entrada.
func GroupMilestones(
	milestones []*domain.Milestone,
	resolver *Resolver,
	dimension Dimension,
	locale i18n.Locale,
) []Group {
	order := make([]string, 0)
	buckets := make(map[string][]*domain.Milestone)

	for _, milestone := range milestones {
		label := milestoneLabel(milestone, resolver, dimension, locale)

		if _, seen := buckets[label]; !seen {
			order = append(order, label)
		}
		buckets[label] = append(buckets[label], milestone)
	}

	groups := make([]Group, 0, len(order))
	for _, label := range order {
		groups = append(groups, Group{Label: label, Milestones: buckets[label]})
	}

	return groups
}

// AggregateGroups calcula a medida de cada grupo e ordena as linhas de forma
// decrescente pela medida ativa. Empates preservam a ordem de inserção
// (primeiro rótulo visto vence) via ordenação estável.
func AggregateGroups(groups []Group, measure Measure) []GroupRow {
	rows := make([]GroupRow, 0, len(groups))

	for _, group := range groups {
		row := GroupRow{
			Label: group.Label,
			Count: len(group.Milestones),
			Sum:   utils.RoundWithTwoDecimalPlace(sumPayments(group.Milestones)),
		}

		// Média definida como 0 quando o grupo está vazio; nunca NaN.
		if row.Count > 0 {
			row.Avg = utils.RoundWithTwoDecimalPlace(row.Sum / float64(row.Count))
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return measureValue(rows[i], measure) > measureValue(rows[j], measure)
	})

	return rows
}

// sumPayments soma os valores de pagamento apenas dos marcos pagáveis.
func sumPayments(milestones []*domain.Milestone) float64 {
	total := 0.0
	for _, milestone := range milestones {
		if milestone.HasPayment {
			total += milestone.PaymentAmount
		}
	}
	return total
}

func measureValue(row GroupRow, measure Measure) float64 {
	switch measure {
	case MeasureSum:
		return row.Sum
	case MeasureAvg:
		return row.Avg
	}
	return float64(row.Count)
}

func milestoneLabel(
	milestone *domain.Milestone,
	resolver *Resolver,
	dimension Dimension,
	locale i18n.Locale,
) string {
	switch dimension {
	case DimensionStatus:
		return milestone.Status.DisplayMeta().Label
	case DimensionProject:
		return resolver.ProjectName(milestone.ProjectID)
	case DimensionTeam:
		return resolver.LookupName(milestone.TeamID)
	case DimensionMonth:
		if milestone.DueDate == nil {
			return LabelUnassigned
		}
		return locale.MonthYearLabel(*milestone.DueDate)
	}

	// As demais dimensões são atributos do projeto dono do marco.
	project := resolver.Project(milestone.ProjectID)
	if project == nil {
		return LabelUnassigned
	}

	switch dimension {
	case DimensionCustomer:
		return resolver.LookupName(project.CustomerID)
	case DimensionManager:
		return resolver.UserName(project.ManagerID)
	case DimensionCountry:
		return resolver.LookupName(project.CountryID)
	}

	return LabelUnassigned
}
