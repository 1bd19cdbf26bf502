package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
)

func TestDrillDown(t *testing.T) {
	resolver := newTestResolver()

	january := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	marchLater := time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)

	t.Run("Períodos em ordem cronológica, sem data por último", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &march},
			{ID: "M2", ProjectID: stringPtr("P1"), DueDate: &january},
			{ID: "M3", ProjectID: stringPtr("P2"), DueDate: nil},
		}

		groups := DrillDown(milestones, resolver, i18n.LocaleEnglish)

		assert.Len(t, groups, 3)
		assert.Equal(t, "01-2024", groups[0].Period)
		assert.Equal(t, "January 2024", groups[0].Label)
		assert.Equal(t, "03-2024", groups[1].Period)
		assert.Equal(t, "", groups[2].Period)
		assert.Equal(t, LabelUnassigned, groups[2].Label)
	})

	t.Run("Projeto aparece em todos os períodos em que tem marcos", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &january},
			{ID: "M2", ProjectID: stringPtr("P1"), DueDate: &march},
		}

		groups := DrillDown(milestones, resolver, i18n.LocaleEnglish)

		assert.Len(t, groups, 2)
		assert.Equal(t, "P1", groups[0].Projects[0].ProjectID)
		assert.Equal(t, "P1", groups[1].Projects[0].ProjectID)
	})

	t.Run("Marcos do mesmo mês somam na mesma linha de projeto", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &march, HasPayment: true, PaymentAmount: 100, PaymentStatus: paymentStatusPtr(domain.PaymentStatusPaid)},
			{ID: "M2", ProjectID: stringPtr("P1"), DueDate: &marchLater, HasPayment: true, PaymentAmount: 200, PaymentStatus: paymentStatusPtr(domain.PaymentStatusSent)},
			{ID: "M3", ProjectID: stringPtr("P1"), DueDate: &march, HasPayment: false},
		}

		groups := DrillDown(milestones, resolver, i18n.LocaleEnglish)

		assert.Len(t, groups, 1)
		group := groups[0]
		assert.Equal(t, 300.0, group.PaymentTotal)
		assert.Len(t, group.Projects, 1)

		row := group.Projects[0]
		assert.Equal(t, 3, row.MilestoneCount)
		assert.Equal(t, 300.0, row.PaymentTotal)
		assert.Equal(t, 1, row.PaidCount)
		assert.Equal(t, 1, row.SentCount)
		assert.Zero(t, row.PendingCount)
	})

	t.Run("Projetos do período em ordem decrescente de total pago", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &march, HasPayment: true, PaymentAmount: 50},
			{ID: "M2", ProjectID: stringPtr("P2"), DueDate: &march, HasPayment: true, PaymentAmount: 500},
		}

		groups := DrillDown(milestones, resolver, i18n.LocaleEnglish)

		assert.Equal(t, "P2", groups[0].Projects[0].ProjectID)
		assert.Equal(t, "P1", groups[0].Projects[1].ProjectID)
	})

	t.Run("Marco pagável sem status conta como pendente no período", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &march, HasPayment: true, PaymentAmount: 75, PaymentStatus: nil},
		}

		groups := DrillDown(milestones, resolver, i18n.LocaleEnglish)

		assert.Equal(t, 1, groups[0].Projects[0].PendingCount)
		assert.Equal(t, 75.0, groups[0].PaymentTotal)
	})
}
