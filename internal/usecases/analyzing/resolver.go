// Package analyzing implementa o núcleo analítico do painel: filtros,
// agrupamentos, agregações e o resumo de KPIs, todos como funções puras sobre
// as coleções já carregadas em memória.
package analyzing

import (
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

const (
	// LabelUnassigned é o balde para dimensões sem valor ou com chave
	// estrangeira órfã; o registro nunca é descartado.
	LabelUnassigned = "Unassigned"

	// CellPlaceholder é o marcador de célula vazia em linhas de relatório.
	CellPlaceholder = "--"
)

// Resolver junta as chaves estrangeiras de projetos e marcos às entidades de
// referência legíveis. É montado uma vez por ciclo de leitura e não tem estado
// mutável.
type Resolver struct {
	lookups  map[string]*domain.Lookup
	users    map[int]*domain.User
	projects map[string]*domain.Project
}

func NewResolver(lookups []*domain.Lookup, users []*domain.User, projects []*domain.Project) *Resolver {
	r := &Resolver{
		lookups:  make(map[string]*domain.Lookup, len(lookups)),
		users:    make(map[int]*domain.User, len(users)),
		projects: make(map[string]*domain.Project, len(projects)),
	}

	for _, lookup := range lookups {
		r.lookups[lookup.ID] = lookup
	}

	for _, user := range users {
		r.users[user.ID] = user
	}

	for _, project := range projects {
		r.projects[project.ID] = project
	}

	return r
}

// LookupName resolve o nome de uma entidade de referência; chave ausente ou
// órfã vira "Unassigned" em vez de falhar o cálculo.
func (r *Resolver) LookupName(id *string) string {
	if id == nil {
		return LabelUnassigned
	}

	lookup, ok := r.lookups[*id]
	if !ok {
		return LabelUnassigned
	}

	return lookup.Name
}

// UserName resolve o nome completo de um gerente.
func (r *Resolver) UserName(id *int) string {
	if id == nil {
		return LabelUnassigned
	}

	user, ok := r.users[*id]
	if !ok {
		return LabelUnassigned
	}

	return user.FullName()
}

// Project resolve o projeto dono de um marco, ou nil quando a referência está
// vazia ou órfã (estado transitório de edição tolerado pelo modelo).
func (r *Resolver) Project(id *string) *domain.Project {
	if id == nil {
		return nil
	}

	return r.projects[*id]
}

// ProjectName resolve o nome do projeto dono de um marco.
func (r *Resolver) ProjectName(id *string) string {
	project := r.Project(id)
	if project == nil {
		return LabelUnassigned
	}

	return project.Name
}
