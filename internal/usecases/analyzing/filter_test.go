package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

func TestFilterMilestones(t *testing.T) {
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	projects := []*domain.Project{
		{ID: "P1", Name: "Projeto Alfa", ManagerID: intPtr(10), CustomerID: stringPtr("C1")},
		{ID: "P2", Name: "Projeto Beta", ManagerID: intPtr(20), CustomerID: stringPtr("C2")},
	}

	milestones := []*domain.Milestone{
		{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &march, HasPayment: true, PaymentAmount: 500},
		{ID: "M2", ProjectID: stringPtr("P2"), DueDate: &april, HasPayment: false},
		{ID: "M3", ProjectID: stringPtr("P1"), DueDate: nil, HasPayment: true, PaymentAmount: 300},
		{ID: "M4", ProjectID: nil, DueDate: &march, HasPayment: true, PaymentAmount: 100},
	}

	tests := []struct {
		name        string
		criteria    domain.FilterCriteria
		expectedIDs []string
	}{
		{
			name:        "Sem critérios - todos os marcos passam",
			criteria:    domain.FilterCriteria{},
			expectedIDs: []string{"M1", "M2", "M3", "M4"},
		},
		{
			name:        "Filtro de gerente passa pelo projeto dono do marco",
			criteria:    domain.FilterCriteria{ManagerID: intPtr(10)},
			expectedIDs: []string{"M1", "M3"},
		},
		{
			name:        "Marco sem projeto falha qualquer critério de projeto ativo",
			criteria:    domain.FilterCriteria{CustomerID: stringPtr("C1")},
			expectedIDs: []string{"M1", "M3"},
		},
		{
			name:        "Filtro de ano exclui marco sem data de vencimento",
			criteria:    domain.FilterCriteria{Year: intPtr(2024)},
			expectedIDs: []string{"M1", "M2", "M4"},
		},
		{
			name:        "Filtro de mês exclui marco sem data de vencimento",
			criteria:    domain.FilterCriteria{Month: monthPtr(time.March)},
			expectedIDs: []string{"M1", "M4"},
		},
		{
			name:        "Filtro de pagamento pendente inclui status nulo de marco pagável",
			criteria:    domain.FilterCriteria{PaymentStatus: paymentStatusPtr(domain.PaymentStatusPending)},
			expectedIDs: []string{"M1", "M3", "M4"},
		},
		{
			name:        "Critérios combinados com E lógico",
			criteria:    domain.FilterCriteria{ManagerID: intPtr(10), Month: monthPtr(time.March)},
			expectedIDs: []string{"M1"},
		},
		{
			name:        "Busca textual no nome do projeto sem diferenciar maiúsculas",
			criteria:    domain.FilterCriteria{SearchText: "beta"},
			expectedIDs: []string{"M2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterMilestones(milestones, projects, tt.criteria)

			ids := make([]string, 0, len(result))
			for _, m := range result {
				ids = append(ids, m.ID)
			}

			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterMilestones_Idempotencia(t *testing.T) {
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	projects := []*domain.Project{
		{ID: "P1", Name: "Projeto Alfa", ManagerID: intPtr(10)},
	}
	milestones := []*domain.Milestone{
		{ID: "M1", ProjectID: stringPtr("P1"), DueDate: &march},
		{ID: "M2", ProjectID: nil},
	}

	criteria := domain.FilterCriteria{ManagerID: intPtr(10), Year: intPtr(2024)}

	first := FilterMilestones(milestones, projects, criteria)
	second := FilterMilestones(milestones, projects, criteria)

	assert.Equal(t, first, second)
	// A coleção de entrada nunca é alterada.
	assert.Len(t, milestones, 2)
}

func TestFilterProjects(t *testing.T) {
	projects := []*domain.Project{
		{ID: "P1", Name: "Projeto Alfa", StatusID: stringPtr("S1"), CountryID: stringPtr("BR")},
		{ID: "P2", Name: "Projeto Beta", StatusID: stringPtr("S2"), CountryID: stringPtr("IL")},
		{ID: "P3", Name: "Projeto Gama"},
	}

	t.Run("Filtro de status exclui projeto sem status", func(t *testing.T) {
		result := FilterProjects(projects, domain.FilterCriteria{StatusID: stringPtr("S1")})

		assert.Len(t, result, 1)
		assert.Equal(t, "P1", result[0].ID)
	})

	t.Run("Filtro de país", func(t *testing.T) {
		result := FilterProjects(projects, domain.FilterCriteria{CountryID: stringPtr("IL")})

		assert.Len(t, result, 1)
		assert.Equal(t, "P2", result[0].ID)
	})

	t.Run("Critérios de nível de marco não reduzem projetos", func(t *testing.T) {
		result := FilterProjects(projects, domain.FilterCriteria{Year: intPtr(2024)})

		assert.Len(t, result, 3)
	})
}

func TestReconcileCriteria(t *testing.T) {
	projects := []*domain.Project{
		{ID: "P1", Name: "Projeto Alfa", ManagerID: intPtr(10)},
		{ID: "P2", Name: "Projeto Beta", ManagerID: intPtr(20)},
	}

	t.Run("Projeto selecionado ainda visível - filtro preservado", func(t *testing.T) {
		criteria := domain.FilterCriteria{ProjectID: stringPtr("P1"), ManagerID: intPtr(10)}

		result := ReconcileCriteria(criteria, projects)

		assert.NotNil(t, result.ProjectID)
		assert.Equal(t, "P1", *result.ProjectID)
	})

	t.Run("Projeto selecionado fora do conjunto visível - filtro volta para todos", func(t *testing.T) {
		criteria := domain.FilterCriteria{ProjectID: stringPtr("P1"), ManagerID: intPtr(20)}

		result := ReconcileCriteria(criteria, projects)

		assert.Nil(t, result.ProjectID)
		// Os demais critérios não são tocados.
		assert.Equal(t, 20, *result.ManagerID)
	})

	t.Run("Sem filtro de projeto - nada a reconciliar", func(t *testing.T) {
		criteria := domain.FilterCriteria{ManagerID: intPtr(10)}

		result := ReconcileCriteria(criteria, projects)

		assert.Equal(t, criteria, result)
	})
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(v int) *int {
	return &v
}

func monthPtr(m time.Month) *time.Month {
	return &m
}

func paymentStatusPtr(s domain.PaymentStatus) *domain.PaymentStatus {
	return &s
}
