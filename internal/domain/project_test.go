package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_PriorityScore(t *testing.T) {
	tests := []struct {
		name     string
		project  *Project
		expected int
	}{
		{
			name:     "Todos os pesos ausentes - usa o padrão 1 em cada termo",
			project:  &Project{},
			expected: 3, // (1+1+1+1) - 1
		},
		{
			name: "Todos os pesos preenchidos",
			project: &Project{
				RevenueImpact:    intPtr(5),
				StrategicValue:   intPtr(4),
				DeliveryRisk:     intPtr(3),
				CustomerPressure: intPtr(2),
				ResourceLoad:     intPtr(4),
			},
			expected: 10, // (5+4+3+2) - 4
		},
		{
			name: "Pesos parcialmente preenchidos - ausentes valem 1",
			project: &Project{
				RevenueImpact: intPtr(10),
				ResourceLoad:  intPtr(2),
			},
			expected: 11, // (10+1+1+1) - 2
		},
		{
			name: "Carga de recursos alta pode deixar o score negativo",
			project: &Project{
				RevenueImpact:    intPtr(1),
				StrategicValue:   intPtr(1),
				DeliveryRisk:     intPtr(1),
				CustomerPressure: intPtr(1),
				ResourceLoad:     intPtr(9),
			},
			expected: -5,
		},
		{
			name: "Peso explícito zero não é tratado como ausente",
			project: &Project{
				RevenueImpact:    intPtr(0),
				StrategicValue:   intPtr(0),
				DeliveryRisk:     intPtr(0),
				CustomerPressure: intPtr(0),
				ResourceLoad:     intPtr(0),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.project.PriorityScore())
		})
	}
}

func TestNewProjectResponse(t *testing.T) {
	project := &Project{
		ID:            "PRJ001",
		Name:          "Projeto Alfa",
		RevenueImpact: intPtr(3),
	}

	response := NewProjectResponse(project)

	assert.Equal(t, "PRJ001", response.ID)
	assert.Equal(t, 5, response.PriorityScore) // (3+1+1+1) - 1
}

func intPtr(v int) *int {
	return &v
}
