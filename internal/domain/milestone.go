package domain

import "time"

// MilestoneStatus é a enumeração fechada de andamento de um marco.
type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "PENDING"
	MilestoneStatusInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
)

// PaymentStatus é a enumeração fechada de cobrança de um marco pagável.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSent    PaymentStatus = "SENT"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// DisplayMeta é o rótulo e a cor de apresentação de um valor de enumeração.
type DisplayMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// DisplayMeta é total: todo valor da enumeração tem rótulo e cor, e um valor
// desconhecido cai no fallback "Unassigned" em vez de quebrar a renderização.
func (s MilestoneStatus) DisplayMeta() DisplayMeta {
	switch s {
	case MilestoneStatusPending:
		return DisplayMeta{Label: "Pending", Color: "#9e9e9e"}
	case MilestoneStatusInProgress:
		return DisplayMeta{Label: "In Progress", Color: "#2196f3"}
	case MilestoneStatusCompleted:
		return DisplayMeta{Label: "Completed", Color: "#4caf50"}
	}
	return DisplayMeta{Label: "Unassigned", Color: "#bdbdbd"}
}

func (s PaymentStatus) DisplayMeta() DisplayMeta {
	switch s {
	case PaymentStatusPending:
		return DisplayMeta{Label: "Pending", Color: "#ff9800"}
	case PaymentStatusSent:
		return DisplayMeta{Label: "Sent", Color: "#2196f3"}
	case PaymentStatusPaid:
		return DisplayMeta{Label: "Paid", Color: "#4caf50"}
	}
	return DisplayMeta{Label: "Unassigned", Color: "#bdbdbd"}
}

// Milestone é um marco de projeto com um sub-registro de pagamento.
// Invariante: PaymentAmount e PaymentStatus são semanticamente vazios quando
// HasPayment é falso; escritores limpam os dois juntos via NormalizePayment.
type Milestone struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ProjectID     *string         `json:"project_id"`
	TeamID        *string         `json:"team_id"`
	DueDate       *time.Time      `json:"due_date"`
	Status        MilestoneStatus `json:"status"`
	HasPayment    bool            `json:"has_payment"`
	PaymentAmount float64         `json:"payment_amount"`
	PaymentStatus *PaymentStatus  `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EffectivePaymentStatus devolve o status de cobrança usado em todos os
// agregados. Marco não pagável devolve ok=false; marco pagável com status nulo
// conta como Pending em toda parte, nunca é excluído nem exibido cru.
func (m *Milestone) EffectivePaymentStatus() (PaymentStatus, bool) {
	if !m.HasPayment {
		return "", false
	}
	if m.PaymentStatus == nil {
		return PaymentStatusPending, true
	}
	return *m.PaymentStatus, true
}

// NormalizePayment aplica o invariante do sub-registro de pagamento antes de
// persistir.
func (m *Milestone) NormalizePayment() {
	if !m.HasPayment {
		m.PaymentAmount = 0
		m.PaymentStatus = nil
	}
}

// UpdateMilestoneRequest carrega apenas os campos enviados; campo nulo não é
// alterado no registro persistido.
type UpdateMilestoneRequest struct {
	ID            string           `json:"id"`
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	ProjectID     *string          `json:"project_id"`
	TeamID        *string          `json:"team_id"`
	DueDate       *time.Time       `json:"due_date"`
	Status        *MilestoneStatus `json:"status"`
	HasPayment    *bool            `json:"has_payment"`
	PaymentAmount *float64         `json:"payment_amount"`
	PaymentStatus *PaymentStatus   `json:"payment_status"`
}

// MilestoneUpdate é uma nota imutável anexada a um marco: nunca é editada nem
// removida, apenas filtrada por intervalo de datas para exibição e exportação.
type MilestoneUpdate struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestone_id"`
	AuthorID    int       `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}
