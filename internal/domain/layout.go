package domain

// DashboardWidget é um cartão posicionável do painel.
type DashboardWidget struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Position int    `json:"position"`
	Visible  bool   `json:"visible"`
}

// DashboardLayout é o objeto de valor com a personalização do painel de um
// usuário. Ele é passado explicitamente para a camada de renderização e
// persistido por um armazém chave-valor injetado, nunca por estado ambiente.
type DashboardLayout struct {
	Widgets []DashboardWidget `json:"widgets"`
}

// DefaultDashboardLayout é o layout inicial de quem nunca personalizou o painel.
func DefaultDashboardLayout() *DashboardLayout {
	return &DashboardLayout{
		Widgets: []DashboardWidget{
			{ID: "kpi-summary", Kind: "kpi", Position: 0, Visible: true},
			{ID: "payment-groups", Kind: "chart", Position: 1, Visible: true},
			{ID: "drilldown", Kind: "table", Position: 2, Visible: true},
			{ID: "gantt", Kind: "gantt", Position: 3, Visible: true},
		},
	}
}
