package analyzing

import (
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// Summary é o agregado de formato fixo exibido nos cartões de KPI do painel.
type Summary struct {
	ProjectCount int     `json:"project_count"`
	PendingTotal float64 `json:"pending_total"`
	SentTotal    float64 `json:"sent_total"`
	PaidTotal    float64 `json:"paid_total"`
}

// Summarize percorre uma única vez o conjunto (já filtrado) de marcos e soma o
// valor de pagamento no balde do status efetivo. Marco pagável com status nulo
// conta como Pending, nunca é excluído. O projectCount é o tamanho do conjunto
// filtrado de projetos, tenham eles marcos ou não.
func Summarize(projects []*domain.Project, milestones []*domain.Milestone) Summary {
	summary := Summary{ProjectCount: len(projects)}

	for _, milestone := range milestones {
		status, payable := milestone.EffectivePaymentStatus()
		if !payable {
			continue
		}

		switch status {
		case domain.PaymentStatusPending:
			summary.PendingTotal += milestone.PaymentAmount
		case domain.PaymentStatusSent:
			summary.SentTotal += milestone.PaymentAmount
		case domain.PaymentStatusPaid:
			summary.PaidTotal += milestone.PaymentAmount
		}
	}

	summary.PendingTotal = utils.RoundWithTwoDecimalPlace(summary.PendingTotal)
	summary.SentTotal = utils.RoundWithTwoDecimalPlace(summary.SentTotal)
	summary.PaidTotal = utils.RoundWithTwoDecimalPlace(summary.PaidTotal)

	return summary
}
