package domain

import "time"

// FilterCriteria é o conjunto conjuntivo de filtros opcionais do painel.
// Campo nulo/vazio significa "todos" e sempre passa; todos os critérios
// preenchidos são combinados com E lógico.
type FilterCriteria struct {
	ProjectID     *string        `json:"project_id,omitempty"`
	ManagerID     *int           `json:"manager_id,omitempty"`
	CustomerID    *string        `json:"customer_id,omitempty"`
	StatusID      *string        `json:"status_id,omitempty"`
	CountryID     *string        `json:"country_id,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
	HasPayment    *bool          `json:"has_payment,omitempty"`
	Year          *int           `json:"year,omitempty"`
	Month         *time.Month    `json:"month,omitempty"`
	SearchText    string         `json:"search_text,omitempty"`
}

// IsZero informa se nenhum critério está ativo.
func (c FilterCriteria) IsZero() bool {
	return c.ProjectID == nil &&
		c.ManagerID == nil &&
		c.CustomerID == nil &&
		c.StatusID == nil &&
		c.CountryID == nil &&
		c.PaymentStatus == nil &&
		c.HasPayment == nil &&
		c.Year == nil &&
		c.Month == nil &&
		c.SearchText == ""
}

// WithoutProject retorna uma cópia sem o filtro de projeto, usada pela
// reconciliação do filtro dependente.
func (c FilterCriteria) WithoutProject() FilterCriteria {
	c.ProjectID = nil
	return c
}
