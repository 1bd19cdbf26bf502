package domain

import "time"

// defaultWeight é o valor assumido para um peso ausente. O padrão é 1, e não
// 0, para o score não colapsar artificialmente quando os pesos não foram
// preenchidos.
const defaultWeight = 1

// Project é o registro central do portfólio. As chaves estrangeiras apontam
// para entidades de referência (Lookup) e para o gerente (User); todas são
// opcionais e uma chave órfã nunca quebra os cálculos do painel.
type Project struct {
	ID                  string     `json:"id"`
	Code                string     `json:"code"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	CountryID           *string    `json:"country_id"`
	CategoryID          *string    `json:"category_id"`
	TeamID              *string    `json:"team_id"`
	ProductID           *string    `json:"product_id"`
	StatusID            *string    `json:"status_id"`
	ManagerID           *int       `json:"manager_id"`
	CustomerID          *string    `json:"customer_id"`
	LaunchDate          *time.Time `json:"launch_date"`
	ActualStartDate     *time.Time `json:"actual_start_date"`
	ExpectedClosureDate *time.Time `json:"expected_closure_date"`
	Progress            int        `json:"progress"`
	RevenueImpact       *int       `json:"revenue_impact"`
	StrategicValue      *int       `json:"strategic_value"`
	DeliveryRisk        *int       `json:"delivery_risk"`
	CustomerPressure    *int       `json:"customer_pressure"`
	ResourceLoad        *int       `json:"resource_load"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func weightOrDefault(w *int) int {
	if w == nil {
		return defaultWeight
	}
	return *w
}

// PriorityScore é derivado, nunca persistido: recalculado em toda leitura como
// (revenueImpact + strategicValue + deliveryRisk + customerPressure) −
// resourceLoad, com pesos ausentes valendo 1.
func (p *Project) PriorityScore() int {
	return weightOrDefault(p.RevenueImpact) +
		weightOrDefault(p.StrategicValue) +
		weightOrDefault(p.DeliveryRisk) +
		weightOrDefault(p.CustomerPressure) -
		weightOrDefault(p.ResourceLoad)
}

// UpdateProjectRequest carrega apenas os campos enviados; campo nulo não é
// alterado no registro persistido.
type UpdateProjectRequest struct {
	ID                  string     `json:"id"`
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	CountryID           *string    `json:"country_id"`
	CategoryID          *string    `json:"category_id"`
	TeamID              *string    `json:"team_id"`
	ProductID           *string    `json:"product_id"`
	StatusID            *string    `json:"status_id"`
	ManagerID           *int       `json:"manager_id"`
	CustomerID          *string    `json:"customer_id"`
	LaunchDate          *time.Time `json:"launch_date"`
	ActualStartDate     *time.Time `json:"actual_start_date"`
	ExpectedClosureDate *time.Time `json:"expected_closure_date"`
	Progress            *int       `json:"progress"`
	RevenueImpact       *int       `json:"revenue_impact"`
	StrategicValue      *int       `json:"strategic_value"`
	DeliveryRisk        *int       `json:"delivery_risk"`
	CustomerPressure    *int       `json:"customer_pressure"`
	ResourceLoad        *int       `json:"resource_load"`
}

// ProjectResponse é o projeto com o score derivado já calculado para o painel.
type ProjectResponse struct {
	*Project
	PriorityScore int `json:"priority_score"`
}

func NewProjectResponse(project *Project) *ProjectResponse {
	return &ProjectResponse{
		Project:       project,
		PriorityScore: project.PriorityScore(),
	}
}
