package domain

import "time"

// PortfolioSnapshot é uma linha pré-calculada da visão drill-down
// (período -> projeto), persistida pelo agendador noturno para consulta
// histórica sem recomputar sobre as coleções completas.
type PortfolioSnapshot struct {
	ID             int       `json:"id"`
	Period         string    `json:"period"` // Formato mm-yyyy (ex: 01-2024)
	ProjectID      string    `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	MilestoneCount int       `json:"milestone_count"`
	PaymentTotal   float64   `json:"payment_total"`
	PendingCount   int       `json:"pending_count"`
	SentCount      int       `json:"sent_count"`
	PaidCount      int       `json:"paid_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SnapshotPeriodsResponse struct {
	Periods []string `json:"periods"`
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}

type SnapshotResponse struct {
	Period     string               `json:"period"`
	Rows       []*PortfolioSnapshot `json:"rows"`
	LastUpdate time.Time            `json:"last_update"`
}
