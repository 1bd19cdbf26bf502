package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
)

func newTestResolver() *Resolver {
	lookups := []*domain.Lookup{
		{ID: "C1", Kind: domain.LookupKindCustomer, Name: "Acme"},
		{ID: "C2", Kind: domain.LookupKindCustomer, Name: "Globex"},
		{ID: "T1", Kind: domain.LookupKindTeam, Name: "Plataforma"},
	}
	users := []*domain.User{
		{ID: 10, Name: "Ana", Lastname: "Souza"},
	}
	projects := []*domain.Project{
		{ID: "P1", Name: "Projeto Alfa", CustomerID: stringPtr("C1"), ManagerID: intPtr(10)},
		{ID: "P2", Name: "Projeto Beta", CustomerID: stringPtr("C2")},
		{ID: "P3", Name: "Projeto Gama"},
	}

	return NewResolver(lookups, users, projects)
}

func TestGroupMilestones(t *testing.T) {
	resolver := newTestResolver()
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	milestones := []*domain.Milestone{
		{ID: "M1", ProjectID: stringPtr("P1"), TeamID: stringPtr("T1"), DueDate: &march, Status: domain.MilestoneStatusPending},
		{ID: "M2", ProjectID: stringPtr("P2"), Status: domain.MilestoneStatusCompleted},
		{ID: "M3", ProjectID: stringPtr("P3"), Status: domain.MilestoneStatusPending},
		{ID: "M4", ProjectID: nil, Status: domain.MilestoneStatusPending},
	}

	tests := []struct {
		name           string
		dimension      Dimension
		expectedLabels []string
		expectedSizes  []int
	}{
		{
			name:           "Por cliente - chave ausente vira Unassigned, nunca descartada",
			dimension:      DimensionCustomer,
			expectedLabels: []string{"Acme", "Globex", LabelUnassigned},
			expectedSizes:  []int{1, 1, 2},
		},
		{
			name:           "Por status - rótulo de apresentação do enum",
			dimension:      DimensionStatus,
			expectedLabels: []string{"Pending", "Completed"},
			expectedSizes:  []int{3, 1},
		},
		{
			name:           "Por gerente - resolvido pelo projeto dono",
			dimension:      DimensionManager,
			expectedLabels: []string{"Ana Souza", LabelUnassigned},
			expectedSizes:  []int{1, 3},
		},
		{
			name:           "Por mês - marco sem data cai em Unassigned",
			dimension:      DimensionMonth,
			expectedLabels: []string{"March 2024", LabelUnassigned},
			expectedSizes:  []int{1, 3},
		},
		{
			name:           "Por time - atributo do próprio marco",
			dimension:      DimensionTeam,
			expectedLabels: []string{"Plataforma", LabelUnassigned},
			expectedSizes:  []int{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupMilestones(milestones, resolver, tt.dimension, i18n.LocaleEnglish)

			labels := make([]string, 0, len(groups))
			total := 0
			for i, group := range groups {
				labels = append(labels, group.Label)
				assert.Len(t, group.Milestones, tt.expectedSizes[i])
				total += len(group.Milestones)
			}

			assert.Equal(t, tt.expectedLabels, labels)
			// A soma dos tamanhos dos grupos é sempre o tamanho da entrada.
			assert.Equal(t, len(milestones), total)
		})
	}
}

func TestAggregateGroups(t *testing.T) {
	t.Run("Ordenação decrescente pela medida ativa", func(t *testing.T) {
		groups := []Group{
			{Label: "Globex", Milestones: []*domain.Milestone{
				{HasPayment: true, PaymentAmount: 50},
			}},
			{Label: "Acme", Milestones: []*domain.Milestone{
				{HasPayment: true, PaymentAmount: 100},
				{HasPayment: true, PaymentAmount: 200},
			}},
		}

		rows := AggregateGroups(groups, MeasureSum)

		assert.Equal(t, "Acme", rows[0].Label)
		assert.Equal(t, 300.0, rows[0].Sum)
		assert.Equal(t, 2, rows[0].Count)
		assert.Equal(t, 150.0, rows[0].Avg)
		assert.Equal(t, "Globex", rows[1].Label)
		assert.Equal(t, 50.0, rows[1].Sum)
	})

	t.Run("Marco não pagável não entra na soma, mas entra na contagem", func(t *testing.T) {
		groups := []Group{
			{Label: "Acme", Milestones: []*domain.Milestone{
				{HasPayment: true, PaymentAmount: 100},
				{HasPayment: false, PaymentAmount: 999},
			}},
		}

		rows := AggregateGroups(groups, MeasureCount)

		assert.Equal(t, 2, rows[0].Count)
		assert.Equal(t, 100.0, rows[0].Sum)
		assert.Equal(t, 50.0, rows[0].Avg)
	})

	t.Run("Empate preserva a ordem de primeira aparição do rótulo", func(t *testing.T) {
		groups := []Group{
			{Label: "Primeiro", Milestones: []*domain.Milestone{{}}},
			{Label: "Segundo", Milestones: []*domain.Milestone{{}}},
			{Label: "Terceiro", Milestones: []*domain.Milestone{{}}},
		}

		rows := AggregateGroups(groups, MeasureCount)

		assert.Equal(t, "Primeiro", rows[0].Label)
		assert.Equal(t, "Segundo", rows[1].Label)
		assert.Equal(t, "Terceiro", rows[2].Label)
	})

	t.Run("Grupo vazio tem média 0, nunca NaN", func(t *testing.T) {
		rows := AggregateGroups([]Group{{Label: "Vazio"}}, MeasureAvg)

		assert.Zero(t, rows[0].Count)
		assert.Zero(t, rows[0].Avg)
	})
}

func TestParseDimension(t *testing.T) {
	assert.Equal(t, DimensionCustomer, ParseDimension("customer"))
	assert.Equal(t, DimensionMonth, ParseDimension("month"))
	// Valor desconhecido cai no agrupamento por status.
	assert.Equal(t, DimensionStatus, ParseDimension("qualquer"))
	assert.Equal(t, DimensionStatus, ParseDimension(""))
}

func TestParseMeasure(t *testing.T) {
	assert.Equal(t, MeasureSum, ParseMeasure("sum"))
	assert.Equal(t, MeasureAvg, ParseMeasure("avg"))
	assert.Equal(t, MeasureCount, ParseMeasure(""))
	assert.Equal(t, MeasureCount, ParseMeasure("mediana"))
}
