package reporting

import (
	"sort"
	"strings"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// Mode seleciona a forma de saída do relatório. Os dois modos têm formas
// independentes: o detalhado emite células pelos campos selecionados e o
// agregado sempre emite rótulo + três métricas derivadas.
type Mode string

const (
	ModeDetailed  Mode = "detailed"
	ModeAggregate Mode = "aggregate"
)

func ParseMode(s string) Mode {
	if Mode(s) == ModeAggregate {
		return ModeAggregate
	}
	return ModeDetailed
}

// Params é a composição do usuário: campos na ordem escolhida, modo, campo de
// agrupamento e medida (modo agregado) e filtros por coluna (modo detalhado).
type Params struct {
	Fields        []FieldKey            `json:"fields"`
	Mode          Mode                  `json:"mode"`
	GroupField    FieldKey              `json:"group_field"`
	Measure       analyzing.Measure     `json:"measure"`
	ColumnFilters map[FieldKey]string   `json:"column_filters"`
	Criteria      domain.FilterCriteria `json:"criteria"`
}

// DetailedRow é uma linha do modo detalhado: uma célula por campo selecionado.
type DetailedRow struct {
	Cells map[FieldKey]string `json:"cells"`
}

// AggregateRow é uma linha do modo agregado.
type AggregateRow struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
}

// Report é a união etiquetada das duas formas de saída: consumidores decidem
// pelo Mode em vez de sondar chaves presentes.
type Report struct {
	Mode          Mode           `json:"mode"`
	Fields        []FieldKey     `json:"fields,omitempty"`
	GroupField    FieldKey       `json:"group_field,omitempty"`
	DetailedRows  []DetailedRow  `json:"detailed_rows,omitempty"`
	AggregateRows []AggregateRow `json:"aggregate_rows,omitempty"`
}

// BuildReport reconstrói o relatório do zero a cada chamada: mudar a seleção
// de campos nunca remenda linhas já computadas.
func BuildReport(
	projects []*domain.Project,
	milestones []*domain.Milestone,
	resolver *analyzing.Resolver,
	params Params,
) *Report {
	if params.Mode == ModeAggregate {
		return buildAggregate(projects, milestones, resolver, params)
	}
	return buildDetailed(projects, milestones, resolver, params)
}

// buildDetailed emite uma linha por par (projeto, marco); projeto sem marco
// emite exatamente uma linha com os acessores de marco devolvendo "--". Os
// filtros por coluna são um pós-passo conjuntivo sobre as linhas juntadas.
func buildDetailed(
	projects []*domain.Project,
	milestones []*domain.Milestone,
	resolver *analyzing.Resolver,
	params Params,
) *Report {
	fields := selectedFields(params.Fields)
	byProject := milestonesByProject(milestones)

	rows := make([]DetailedRow, 0, len(milestones))
	for _, project := range projects {
		projectMilestones := byProject[project.ID]
		if len(projectMilestones) == 0 {
			rows = append(rows, buildRow(project, nil, resolver, fields))
			continue
		}

		for _, milestone := range projectMilestones {
			rows = append(rows, buildRow(project, milestone, resolver, fields))
		}
	}

	rows = applyColumnFilters(rows, params.ColumnFilters)

	keys := make([]FieldKey, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, field.Key)
	}

	return &Report{
		Mode:         ModeDetailed,
		Fields:       keys,
		DetailedRows: rows,
	}
}

// buildAggregate agrupa projetos pelo valor textual de um campo com escopo de
// projeto e acumula contagem de projetos e soma dos marcos pagáveis de cada
// um. As linhas saem em ordem decrescente pela medida ativa; empates mantêm a
// ordem do primeiro rótulo visto.
func buildAggregate(
	projects []*domain.Project,
	milestones []*domain.Milestone,
	resolver *analyzing.Resolver,
	params Params,
) *Report {
	groupField := GroupFieldOrDefault(params.GroupField)
	byProject := milestonesByProject(milestones)

	order := make([]string, 0)
	buckets := make(map[string]*AggregateRow)

	for _, project := range projects {
		label := groupField.Accessor(project, nil, resolver)

		row, seen := buckets[label]
		if !seen {
			row = &AggregateRow{Label: label}
			buckets[label] = row
			order = append(order, label)
		}

		row.Count++
		for _, milestone := range byProject[project.ID] {
			if milestone.HasPayment {
				row.Sum += milestone.PaymentAmount
			}
		}
	}

	rows := make([]AggregateRow, 0, len(order))
	for _, label := range order {
		row := buckets[label]
		row.Sum = utils.RoundWithTwoDecimalPlace(row.Sum)
		if row.Count > 0 {
			row.Avg = utils.RoundWithTwoDecimalPlace(row.Sum / float64(row.Count))
		}
		rows = append(rows, *row)
	}

	measure := params.Measure
	sort.SliceStable(rows, func(i, j int) bool {
		return aggregateMeasure(rows[i], measure) > aggregateMeasure(rows[j], measure)
	})

	return &Report{
		Mode:          ModeAggregate,
		GroupField:    groupField.Key,
		AggregateRows: rows,
	}
}

// selectedFields resolve as chaves pedidas contra o catálogo, preservando a
// ordem; seleção vazia usa o catálogo inteiro e chave desconhecida é ignorada.
func selectedFields(keys []FieldKey) []Field {
	if len(keys) == 0 {
		return Fields()
	}

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		if field, ok := FieldByKey(key); ok {
			fields = append(fields, field)
		}
	}

	if len(fields) == 0 {
		return Fields()
	}
	return fields
}

func buildRow(
	project *domain.Project,
	milestone *domain.Milestone,
	resolver *analyzing.Resolver,
	fields []Field,
) DetailedRow {
	cells := make(map[FieldKey]string, len(fields))
	for _, field := range fields {
		cells[field.Key] = field.Accessor(project, milestone, resolver)
	}
	return DetailedRow{Cells: cells}
}

// applyColumnFilters mantém apenas as linhas cujas células contêm cada filtro
// como substring, sem diferenciar maiúsculas. Filtro de coluna não presente na
// seleção é ignorado.
func applyColumnFilters(rows []DetailedRow, filters map[FieldKey]string) []DetailedRow {
	active := make(map[FieldKey]string, len(filters))
	for key, filter := range filters {
		if filter != "" {
			active[key] = strings.ToLower(filter)
		}
	}

	if len(active) == 0 {
		return rows
	}

	filtered := make([]DetailedRow, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, active) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowMatches(row DetailedRow, filters map[FieldKey]string) bool {
	for key, filter := range filters {
		cell, ok := row.Cells[key]
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(cell), filter) {
			return false
		}
	}
	return true
}

func aggregateMeasure(row AggregateRow, measure analyzing.Measure) float64 {
	switch measure {
	case analyzing.MeasureSum:
		return row.Sum
	case analyzing.MeasureAvg:
		return row.Avg
	}
	return float64(row.Count)
}

func milestonesByProject(milestones []*domain.Milestone) map[string][]*domain.Milestone {
	byProject := make(map[string][]*domain.Milestone)
	for _, milestone := range milestones {
		if milestone.ProjectID == nil {
			continue
		}
		byProject[*milestone.ProjectID] = append(byProject[*milestone.ProjectID], milestone)
	}
	return byProject
}
