package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

func TestSummarize(t *testing.T) {
	t.Run("Projeto com marcos pago, pendente e sem pagamento", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: "P1", Name: "Projeto Alfa"},
		}
		milestones := []*domain.Milestone{
			{ID: "M1", ProjectID: stringPtr("P1"), HasPayment: true, PaymentAmount: 500, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPaid)},
			{ID: "M2", ProjectID: stringPtr("P1"), HasPayment: true, PaymentAmount: 300, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPending)},
			{ID: "M3", ProjectID: stringPtr("P1"), HasPayment: false},
		}

		summary := Summarize(projects, milestones)

		assert.Equal(t, 1, summary.ProjectCount)
		assert.Equal(t, 500.0, summary.PaidTotal)
		assert.Equal(t, 300.0, summary.PendingTotal)
		assert.Zero(t, summary.SentTotal)
	})

	t.Run("Marco pagável com status nulo conta como Pending", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", HasPayment: true, PaymentAmount: 250, PaymentStatus: nil},
		}

		summary := Summarize(nil, milestones)

		assert.Equal(t, 250.0, summary.PendingTotal)
	})

	t.Run("Cada marco pagável entra em exatamente um balde", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{HasPayment: true, PaymentAmount: 100, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPending)},
			{HasPayment: true, PaymentAmount: 200, PaymentStatus: paymentStatusPtr(domain.PaymentStatusSent)},
			{HasPayment: true, PaymentAmount: 300, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPaid)},
			{HasPayment: true, PaymentAmount: 400, PaymentStatus: nil},
			{HasPayment: false, PaymentAmount: 999},
		}

		summary := Summarize(nil, milestones)

		payableTotal := 0.0
		for _, m := range milestones {
			if m.HasPayment {
				payableTotal += m.PaymentAmount
			}
		}

		assert.Equal(t, payableTotal, summary.PendingTotal+summary.SentTotal+summary.PaidTotal)
	})

	t.Run("Contagem de projetos independe de terem marcos", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: "P1"}, {ID: "P2"}, {ID: "P3"},
		}

		summary := Summarize(projects, nil)

		assert.Equal(t, 3, summary.ProjectCount)
		assert.Zero(t, summary.PendingTotal)
	})

	t.Run("Totais arredondados em duas casas decimais", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{HasPayment: true, PaymentAmount: 0.105, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPaid)},
			{HasPayment: true, PaymentAmount: 0.105, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPaid)},
		}

		summary := Summarize(nil, milestones)

		assert.Equal(t, 0.21, summary.PaidTotal)
	})
}
