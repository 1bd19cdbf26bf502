package domain

import "time"

// LookupKind distingue os cadastros auxiliares que compartilham a mesma forma
// id + nome.
type LookupKind string

const (
	LookupKindCountry  LookupKind = "COUNTRY"
	LookupKindCategory LookupKind = "CATEGORY"
	LookupKindTeam     LookupKind = "TEAM"
	LookupKindProduct  LookupKind = "PRODUCT"
	LookupKindStatus   LookupKind = "STATUS"
	LookupKindCustomer LookupKind = "CUSTOMER"
)

// LookupKinds lista todos os tipos de cadastro auxiliar aceitos.
var LookupKinds = []LookupKind{
	LookupKindCountry,
	LookupKindCategory,
	LookupKindTeam,
	LookupKindProduct,
	LookupKindStatus,
	LookupKindCustomer,
}

func (k LookupKind) Valid() bool {
	for _, kind := range LookupKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Lookup é a entidade de referência genérica: id + nome de exibição, usada
// para país, categoria, time, produto, status e cliente.
type Lookup struct {
	ID        string     `json:"id"`
	Kind      LookupKind `json:"kind"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Portfolio é a carga completa que a SPA busca uma vez por sessão e depois de
// cada ação de escrita.
type Portfolio struct {
	Projects   []*ProjectResponse `json:"projects"`
	Milestones []*Milestone       `json:"milestones"`
	Users      []*User            `json:"users"`
	Lookups    []*Lookup          `json:"lookups"`
}
