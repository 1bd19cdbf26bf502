// Package charting calcula a geometria do cronograma (Gantt) de um projeto e
// a serializa como um documento SVG autocontido.
package charting

import (
	"errors"
	"sort"
	"time"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// Escala fixa do desenho; o documento cresce com a janela, nunca comprime.
const (
	pxPerDay      = 24
	rowHeight     = 32
	headerHeight  = 48
	barHeight     = 20
	barRadius     = 4
	avgGlyphWidth = 7

	// Cada marco vira uma tarefa sintética de 7 dias terminando na data
	// prevista. Convenção de apresentação, não uma duração armazenada.
	taskDurationDays = 7

	// Folga da janela visível em cada lado.
	windowPaddingDays = 3

	// Largura mínima de barra para receber o título truncado.
	minLabelGlyphs = 4
)

// ErrNoDatedMilestones indica que nenhum marco tem data prevista: não há
// documento a produzir e o chamador mostra o estado vazio.
var ErrNoDatedMilestones = errors.New("nenhum marco com data prevista para desenhar")

// Task é a barra de um marco já posicionada na janela.
type Task struct {
	Title string
	Label string // título truncado; vazio quando a barra é estreita demais
	Color string
	Start time.Time
	End   time.Time
	X     int
	Y     int
	Width int
}

// DayColumn é um dia de calendário da janela, com a marcação de fim de semana
// da localidade ativa.
type DayColumn struct {
	Date    time.Time
	X       int
	Weekend bool
}

// MonthBand é o intervalo de pixels coberto por um (ano, mês) da janela.
type MonthBand struct {
	Label string
	X     int
	Width int
}

// TodayMarker é a linha vertical de "hoje", presente só quando o dia cai
// dentro da janela.
type TodayMarker struct {
	Label string
	X     int
}

// Layout é a geometria completa do cronograma, pronta para serialização.
type Layout struct {
	ProjectName string
	Locale      i18n.Locale
	WindowStart time.Time
	WindowEnd   time.Time
	Width       int
	Height      int
	Days        []DayColumn
	Months      []MonthBand
	Tasks       []Task
	Today       *TodayMarker
}

// BuildLayout posiciona os marcos datados de um projeto na linha do tempo.
// Marco sem data prevista fica de fora; se nenhum sobrar, devolve
// ErrNoDatedMilestones em vez de uma janela de largura zero.
func BuildLayout(
	project *domain.Project,
	milestones []*domain.Milestone,
	locale i18n.Locale,
	now time.Time,
) (*Layout, error) {
	tasks := make([]Task, 0, len(milestones))
	for _, milestone := range milestones {
		if milestone.DueDate == nil {
			continue
		}

		end := utils.StartOfDay(*milestone.DueDate)
		tasks = append(tasks, Task{
			Title: milestone.Title,
			Color: milestone.Status.DisplayMeta().Color,
			Start: end.AddDate(0, 0, -taskDurationDays),
			End:   end,
		})
	}

	if len(tasks) == 0 {
		return nil, ErrNoDatedMilestones
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start.Before(tasks[j].Start)
	})

	windowStart := tasks[0].Start
	windowEnd := tasks[0].End
	for _, task := range tasks[1:] {
		if task.End.After(windowEnd) {
			windowEnd = task.End
		}
	}
	windowStart = windowStart.AddDate(0, 0, -windowPaddingDays)
	windowEnd = windowEnd.AddDate(0, 0, windowPaddingDays)

	layout := &Layout{
		ProjectName: project.Name,
		Locale:      locale,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Width:       (utils.DaysBetween(windowStart, windowEnd) + 1) * pxPerDay,
		Height:      headerHeight + len(tasks)*rowHeight,
	}

	layout.Days = dayColumns(windowStart, windowEnd, locale)
	layout.Months = monthBands(layout.Days, locale)

	for i := range tasks {
		task := &tasks[i]
		task.X = utils.DaysBetween(windowStart, task.Start) * pxPerDay
		task.Y = headerHeight + i*rowHeight + (rowHeight-barHeight)/2

		width := utils.DaysBetween(task.Start, task.End) * pxPerDay
		if width < 1 {
			width = 1
		}
		task.Width = width

		task.Label = truncateTitle(task.Title, width)
	}
	layout.Tasks = tasks

	today := utils.StartOfDay(now)
	if !today.Before(windowStart) && !today.After(windowEnd) {
		layout.Today = &TodayMarker{
			Label: locale.TodayLabel(),
			X:     utils.DaysBetween(windowStart, today) * pxPerDay,
		}
	}

	return layout, nil
}

func dayColumns(windowStart, windowEnd time.Time, locale i18n.Locale) []DayColumn {
	days := make([]DayColumn, 0, utils.DaysBetween(windowStart, windowEnd)+1)
	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, DayColumn{
			Date:    day,
			X:       utils.DaysBetween(windowStart, day) * pxPerDay,
			Weekend: locale.IsWeekend(day.Weekday()),
		})
	}
	return days
}

// monthBands soma os dias que cada (ano, mês) contribui à janela e devolve o
// intervalo de pixels correspondente; o rótulo é centralizado pelo renderizador.
func monthBands(days []DayColumn, locale i18n.Locale) []MonthBand {
	bands := make([]MonthBand, 0, 2)

	for _, day := range days {
		label := locale.MonthYearLabel(day.Date)
		if len(bands) > 0 && bands[len(bands)-1].Label == label {
			bands[len(bands)-1].Width += pxPerDay
			continue
		}
		bands = append(bands, MonthBand{Label: label, X: day.X, Width: pxPerDay})
	}

	return bands
}

// truncateTitle corta o título pelo orçamento de caracteres derivado da
// largura da barra; barra estreita demais fica sem rótulo.
func truncateTitle(title string, barWidth int) string {
	budget := barWidth / avgGlyphWidth
	if budget < minLabelGlyphs {
		return ""
	}

	runes := []rune(title)
	if len(runes) <= budget {
		return title
	}
	if budget <= 1 {
		return string(runes[:1])
	}
	return string(runes[:budget-1]) + "…"
}
