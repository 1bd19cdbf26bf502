package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/i18n"
)

func TestBuildLayout(t *testing.T) {
	project := &domain.Project{ID: "P1", Name: "Projeto Alfa"}
	now := time.Date(2024, 3, 12, 15, 30, 0, 0, time.UTC)

	due1 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Nenhum marco datado - erro de estado vazio", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", Title: "Sem data", DueDate: nil},
		}

		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)

		assert.Nil(t, layout)
		assert.ErrorIs(t, err, ErrNoDatedMilestones)
	})

	t.Run("Janela cobre as tarefas com folga de 3 dias em cada lado", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", Title: "Kickoff", DueDate: &due1},
			{ID: "M2", Title: "Entrega", DueDate: &due2},
		}

		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)

		// Tarefa mais cedo começa 7 dias antes do vencimento.
		expectedStart := due1.AddDate(0, 0, -7-3)
		expectedEnd := due2.AddDate(0, 0, 3)
		assert.Equal(t, expectedStart, layout.WindowStart)
		assert.Equal(t, expectedEnd, layout.WindowEnd)

		// Nenhuma barra sai da janela.
		for _, task := range layout.Tasks {
			assert.False(t, task.Start.Before(layout.WindowStart))
			assert.False(t, task.End.After(layout.WindowEnd))
			assert.GreaterOrEqual(t, task.X, 0)
			assert.LessOrEqual(t, task.X+task.Width, layout.Width)
		}
	})

	t.Run("Posição horizontal cresce com a data de início", func(t *testing.T) {
		due3 := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
		milestones := []*domain.Milestone{
			{ID: "M2", Title: "Entrega", DueDate: &due2},
			{ID: "M1", Title: "Kickoff", DueDate: &due1},
			{ID: "M3", Title: "Encerramento", DueDate: &due3},
		}

		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)

		for i := 1; i < len(layout.Tasks); i++ {
			assert.GreaterOrEqual(t, layout.Tasks[i].X, layout.Tasks[i-1].X)
		}
	})

	t.Run("Marco sem data fica fora do desenho", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", Title: "Kickoff", DueDate: &due1},
			{ID: "M2", Title: "Sem data", DueDate: nil},
		}

		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)

		assert.Len(t, layout.Tasks, 1)
		assert.Equal(t, "Kickoff", layout.Tasks[0].Title)
	})

	t.Run("Marcador de hoje presente só quando o dia cai na janela", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", Title: "Kickoff", DueDate: &due1},
		}

		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)
		assert.NotNil(t, layout.Today)
		assert.Equal(t, "Today", layout.Today.Label)

		farFuture := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		layout, err = BuildLayout(project, milestones, i18n.LocaleEnglish, farFuture)
		assert.NoError(t, err)
		assert.Nil(t, layout.Today)
	})

	t.Run("Fim de semana segue o calendário do locale", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", Title: "Kickoff", DueDate: &due1},
		}

		english, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)
		hebrew, err := BuildLayout(project, milestones, i18n.LocaleHebrew, now)
		assert.NoError(t, err)

		for i, day := range english.Days {
			switch day.Date.Weekday() {
			case time.Friday:
				assert.False(t, day.Weekend)
				assert.True(t, hebrew.Days[i].Weekend)
			case time.Saturday:
				assert.True(t, day.Weekend)
				assert.True(t, hebrew.Days[i].Weekend)
			case time.Sunday:
				assert.True(t, day.Weekend)
				assert.False(t, hebrew.Days[i].Weekend)
			default:
				assert.False(t, day.Weekend)
				assert.False(t, hebrew.Days[i].Weekend)
			}
		}
	})

	t.Run("Faixas de meses cobrem a janela inteira sem sobreposição", func(t *testing.T) {
		milestones := []*domain.Milestone{
			{ID: "M1", Title: "Kickoff", DueDate: &due1},
			{ID: "M2", Title: "Entrega", DueDate: &due2},
		}

		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)

		total := 0
		x := 0
		for _, band := range layout.Months {
			assert.Equal(t, x, band.X)
			x += band.Width
			total += band.Width
		}
		assert.Equal(t, layout.Width, total)
	})
}

func TestTruncateTitle(t *testing.T) {
	t.Run("Título curto cabe inteiro", func(t *testing.T) {
		assert.Equal(t, "Kickoff", truncateTitle("Kickoff", 168))
	})

	t.Run("Título longo recebe reticências", func(t *testing.T) {
		label := truncateTitle("Entrega do ambiente de homologação", 70)
		assert.Contains(t, label, "…")
		assert.LessOrEqual(t, len([]rune(label)), 10)
	})

	t.Run("Barra estreita demais fica sem rótulo", func(t *testing.T) {
		assert.Empty(t, truncateTitle("Kickoff", 10))
	})
}

func TestRenderSVG(t *testing.T) {
	project := &domain.Project{ID: "P1", Name: "Projeto <Alfa> & Cia"}
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	milestones := []*domain.Milestone{
		{ID: "M1", Title: `Entrega "final"`, DueDate: &due, Status: domain.MilestoneStatusInProgress},
	}

	t.Run("Documento SVG com dimensões do layout e texto escapado", func(t *testing.T) {
		layout, err := BuildLayout(project, milestones, i18n.LocaleEnglish, now)
		assert.NoError(t, err)

		svg := RenderSVG(layout)

		assert.Contains(t, svg, "<svg")
		assert.Contains(t, svg, "</svg>")
		assert.Contains(t, svg, `direction="ltr"`)
		// Caracteres especiais nunca saem crus no documento.
		assert.NotContains(t, svg, "<Alfa>")
		assert.Contains(t, svg, "&lt;Alfa&gt;")
	})

	t.Run("Locale hebraico renderiza com direção rtl", func(t *testing.T) {
		layout, err := BuildLayout(project, milestones, i18n.LocaleHebrew, now)
		assert.NoError(t, err)

		svg := RenderSVG(layout)

		assert.Contains(t, svg, `direction="rtl"`)
		assert.Contains(t, svg, "היום")
	})
}
