package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// periodKeyFormat é o formato mm-yyyy usado como chave de período (ex: 01-2024).
const periodKeyFormat = "01-2006"

// PeriodProjectRow resume os marcos de um projeto dentro de um período, com o
// total pago e a quebra por status de pagamento para o drill-down do painel.
type PeriodProjectRow struct {
	ProjectID      string  `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	MilestoneCount int     `json:"milestone_count"`
	PaymentTotal   float64 `json:"payment_total"`
	PendingCount   int     `json:"pending_count"`
	SentCount      int     `json:"sent_count"`
	PaidCount      int     `json:"paid_count"`
}

// PeriodGroup é o primeiro nível do drill-down: um período (mês/ano) com os
// projetos que têm marcos nele. Um projeto aparece em todos os períodos em que
// tem marcos — essa dupla contagem entre períodos é intencional.
type PeriodGroup struct {
	Period       string              `json:"period"` // mm-yyyy, vazio para marcos sem data
	Label        string              `json:"label"`
	PaymentTotal float64             `json:"payment_total"`
	Projects     []*PeriodProjectRow `json:"projects"`
}

// DrillDown monta a visão em dois níveis período -> projeto sobre marcos já
// filtrados. Marcos sem data caem no período "Unassigned", listado por último;
// dentro de cada período os projetos saem em ordem decrescente de total pago.
func DrillDown(milestones []*domain.Milestone, resolver *Resolver, locale i18n.Locale) []*PeriodGroup {
	type periodBucket struct {
		group    *PeriodGroup
		sortKey  time.Time
		dated    bool
		projects map[string]*PeriodProjectRow
	}

	buckets := make(map[string]*periodBucket)
	order := make([]*periodBucket, 0)

	for _, milestone := range milestones {
		key := ""
		label := LabelUnassigned
		var sortKey time.Time
		dated := false

		if milestone.DueDate == nil {
			// mantém o balde sem data
		} else {
			due := *milestone.DueDate
			key = due.Format(periodKeyFormat)
			label = locale.MonthYearLabel(due)
			sortKey = time.Date(due.Year(), due.Month(), 1, 0, 0, 0, 0, time.UTC)
			dated = true
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &periodBucket{
				group:    &PeriodGroup{Period: key, Label: label},
				sortKey:  sortKey,
				dated:    dated,
				projects: make(map[string]*PeriodProjectRow),
			}
			buckets[key] = bucket
			order = append(order, bucket)
		}

		projectID := ""
		projectName := LabelUnassigned
		if project := resolver.Project(milestone.ProjectID); project != nil {
			projectID = project.ID
			projectName = project.Name
		}

		row, ok := bucket.projects[projectID]
		if !ok {
			row = &PeriodProjectRow{ProjectID: projectID, ProjectName: projectName}
			bucket.projects[projectID] = row
			bucket.group.Projects = append(bucket.group.Projects, row)
		}

		row.MilestoneCount++

		if status, payable := milestone.EffectivePaymentStatus(); payable {
			row.PaymentTotal += milestone.PaymentAmount
			bucket.group.PaymentTotal += milestone.PaymentAmount

			switch status {
			case domain.PaymentStatusPending:
				row.PendingCount++
			case domain.PaymentStatusSent:
				row.SentCount++
			case domain.PaymentStatusPaid:
				row.PaidCount++
			}
		}
	}

	// Períodos em ordem cronológica; o balde sem data sempre no fim.
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].dated != order[j].dated {
			return order[i].dated
		}
		return order[i].sortKey.Before(order[j].sortKey)
	})

	groups := make([]*PeriodGroup, 0, len(order))
	for _, bucket := range order {
		sort.SliceStable(bucket.group.Projects, func(i, j int) bool {
			return bucket.group.Projects[i].PaymentTotal > bucket.group.Projects[j].PaymentTotal
		})

		bucket.group.PaymentTotal = utils.RoundWithTwoDecimalPlace(bucket.group.PaymentTotal)
		for _, row := range bucket.group.Projects {
			row.PaymentTotal = utils.RoundWithTwoDecimalPlace(row.PaymentTotal)
		}

		groups = append(groups, bucket.group)
	}

	return groups
}
