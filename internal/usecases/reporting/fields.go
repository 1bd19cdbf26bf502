// Package reporting implementa o construtor de relatórios do painel: um pivô
// composto pelo usuário sobre os pares projeto+marco, com modo detalhado e
// modo agregado, e a exportação em CSV.
package reporting

import (
	"strconv"
	"time"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
)

// FieldKey identifica um acessor nomeado do catálogo de campos.
type FieldKey string

const (
	FieldProjectCode     FieldKey = "project_code"
	FieldProjectName     FieldKey = "project_name"
	FieldCustomer        FieldKey = "customer"
	FieldManager         FieldKey = "manager"
	FieldStatus          FieldKey = "status"
	FieldCountry         FieldKey = "country"
	FieldCategory        FieldKey = "category"
	FieldTeam            FieldKey = "team"
	FieldProduct         FieldKey = "product"
	FieldProgress        FieldKey = "progress"
	FieldPriorityScore   FieldKey = "priority_score"
	FieldLaunchDate      FieldKey = "launch_date"
	FieldMilestoneTitle  FieldKey = "milestone_title"
	FieldMilestoneStatus FieldKey = "milestone_status"
	FieldDueDate         FieldKey = "due_date"
	FieldHasPayment      FieldKey = "has_payment"
	FieldPaymentAmount   FieldKey = "payment_amount"
	FieldPaymentStatus   FieldKey = "payment_status"
)

// DefaultGroupField é o agrupamento assumido quando o campo pedido não existe
// ou não tem escopo de projeto.
const DefaultGroupField = FieldCustomer

// Field é um acessor puro sobre um par (projeto, marco). Acessor com escopo de
// marco devolve o marcador "--" quando a linha não tem marco.
type Field struct {
	Key           FieldKey
	Label         string
	ProjectScoped bool
	Accessor      func(project *domain.Project, milestone *domain.Milestone, resolver *analyzing.Resolver) string
}

// fieldCatalog define os campos na ordem oferecida ao usuário.
var fieldCatalog = []Field{
	{
		Key: FieldProjectCode, Label: "Code", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, _ *analyzing.Resolver) string {
			return cellOrPlaceholder(p.Code)
		},
	},
	{
		Key: FieldProjectName, Label: "Project", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, _ *analyzing.Resolver) string {
			return cellOrPlaceholder(p.Name)
		},
	},
	{
		Key: FieldCustomer, Label: "Customer", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.LookupName(p.CustomerID))
		},
	},
	{
		Key: FieldManager, Label: "Manager", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.UserName(p.ManagerID))
		},
	},
	{
		Key: FieldStatus, Label: "Status", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.LookupName(p.StatusID))
		},
	},
	{
		Key: FieldCountry, Label: "Country", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.LookupName(p.CountryID))
		},
	},
	{
		Key: FieldCategory, Label: "Category", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.LookupName(p.CategoryID))
		},
	},
	{
		Key: FieldTeam, Label: "Team", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.LookupName(p.TeamID))
		},
	},
	{
		Key: FieldProduct, Label: "Product", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, r *analyzing.Resolver) string {
			return resolvedCell(r.LookupName(p.ProductID))
		},
	},
	{
		Key: FieldProgress, Label: "Progress", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, _ *analyzing.Resolver) string {
			return strconv.Itoa(p.Progress) + "%"
		},
	},
	{
		Key: FieldPriorityScore, Label: "Priority", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, _ *analyzing.Resolver) string {
			return strconv.Itoa(p.PriorityScore())
		},
	},
	{
		Key: FieldLaunchDate, Label: "Launch Date", ProjectScoped: true,
		Accessor: func(p *domain.Project, _ *domain.Milestone, _ *analyzing.Resolver) string {
			return dateCell(p.LaunchDate)
		},
	},
	{
		Key: FieldMilestoneTitle, Label: "Milestone",
		Accessor: func(_ *domain.Project, m *domain.Milestone, _ *analyzing.Resolver) string {
			if m == nil {
				return analyzing.CellPlaceholder
			}
			return cellOrPlaceholder(m.Title)
		},
	},
	{
		Key: FieldMilestoneStatus, Label: "Milestone Status",
		Accessor: func(_ *domain.Project, m *domain.Milestone, _ *analyzing.Resolver) string {
			if m == nil {
				return analyzing.CellPlaceholder
			}
			return m.Status.DisplayMeta().Label
		},
	},
	{
		Key: FieldDueDate, Label: "Due Date",
		Accessor: func(_ *domain.Project, m *domain.Milestone, _ *analyzing.Resolver) string {
			if m == nil {
				return analyzing.CellPlaceholder
			}
			return dateCell(m.DueDate)
		},
	},
	{
		Key: FieldHasPayment, Label: "Billable",
		Accessor: func(_ *domain.Project, m *domain.Milestone, _ *analyzing.Resolver) string {
			if m == nil {
				return analyzing.CellPlaceholder
			}
			if m.HasPayment {
				return "Yes"
			}
			return "No"
		},
	},
	{
		Key: FieldPaymentAmount, Label: "Amount",
		Accessor: func(_ *domain.Project, m *domain.Milestone, _ *analyzing.Resolver) string {
			if m == nil || !m.HasPayment {
				return analyzing.CellPlaceholder
			}
			return strconv.FormatFloat(m.PaymentAmount, 'f', 2, 64)
		},
	},
	{
		Key: FieldPaymentStatus, Label: "Payment Status",
		Accessor: func(_ *domain.Project, m *domain.Milestone, _ *analyzing.Resolver) string {
			if m == nil {
				return analyzing.CellPlaceholder
			}
			status, ok := m.EffectivePaymentStatus()
			if !ok {
				return analyzing.CellPlaceholder
			}
			return status.DisplayMeta().Label
		},
	},
}

var fieldsByKey = func() map[FieldKey]Field {
	index := make(map[FieldKey]Field, len(fieldCatalog))
	for _, field := range fieldCatalog {
		index[field.Key] = field
	}
	return index
}()

// Fields devolve o catálogo na ordem de apresentação.
func Fields() []Field {
	catalog := make([]Field, len(fieldCatalog))
	copy(catalog, fieldCatalog)
	return catalog
}

// FieldByKey devolve o campo do catálogo, se existir.
func FieldByKey(key FieldKey) (Field, bool) {
	field, ok := fieldsByKey[key]
	return field, ok
}

// GroupFieldOrDefault valida o campo de agrupamento do modo agregado. Chave
// desconhecida ou sem escopo de projeto cai no agrupamento por cliente em vez
// de falhar.
func GroupFieldOrDefault(key FieldKey) Field {
	field, ok := fieldsByKey[key]
	if !ok || !field.ProjectScoped {
		return fieldsByKey[DefaultGroupField]
	}
	return field
}

func cellOrPlaceholder(value string) string {
	if value == "" {
		return analyzing.CellPlaceholder
	}
	return value
}

// resolvedCell converte o balde "Unassigned" do resolvedor no marcador de
// célula vazia usado pelas linhas de relatório.
func resolvedCell(name string) string {
	if name == analyzing.LabelUnassigned {
		return analyzing.CellPlaceholder
	}
	return name
}

func dateCell(date *time.Time) string {
	if date == nil {
		return analyzing.CellPlaceholder
	}
	return date.Format("2006-01-02")
}
