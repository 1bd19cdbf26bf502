package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

func TestReportCSV_Detalhado(t *testing.T) {
	report := &Report{
		Mode:   ModeDetailed,
		Fields: []FieldKey{FieldProjectName, FieldCustomer},
		DetailedRows: []DetailedRow{
			{Cells: map[FieldKey]string{
				FieldProjectName: "Projeto Alfa",
				FieldCustomer:    "Acme, Inc.",
			}},
		},
	}

	content, err := ReportCSV(report)
	assert.NoError(t, err)

	// BOM UTF-8 na frente para planilhas abrirem com a codificação correta.
	assert.True(t, strings.HasPrefix(string(content), "\xef\xbb\xbf"))

	body := strings.TrimPrefix(string(content), "\xef\xbb\xbf")
	lines := strings.Split(strings.TrimSpace(body), "\n")

	assert.Equal(t, "Project,Customer", lines[0])
	// Célula com vírgula sai entre aspas duplas.
	assert.Equal(t, `Projeto Alfa,"Acme, Inc."`, lines[1])
}

func TestReportCSV_CelulaComAspasEQuebraDeLinha(t *testing.T) {
	report := &Report{
		Mode:   ModeDetailed,
		Fields: []FieldKey{FieldProjectName},
		DetailedRows: []DetailedRow{
			{Cells: map[FieldKey]string{FieldProjectName: `Projeto "Alfa"`}},
			{Cells: map[FieldKey]string{FieldProjectName: "linha um\nlinha dois"}},
		},
	}

	content, err := ReportCSV(report)
	assert.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, `"Projeto ""Alfa"""`)
	assert.Contains(t, text, "\"linha um\nlinha dois\"")
}

func TestReportCSV_Agregado(t *testing.T) {
	report := &Report{
		Mode:       ModeAggregate,
		GroupField: FieldCustomer,
		AggregateRows: []AggregateRow{
			{Label: "Acme", Count: 2, Sum: 300, Avg: 150},
			{Label: "Globex", Count: 1, Sum: 50, Avg: 50},
		},
	}

	content, err := ReportCSV(report)
	assert.NoError(t, err)

	body := strings.TrimPrefix(string(content), "\xef\xbb\xbf")
	lines := strings.Split(strings.TrimSpace(body), "\n")

	assert.Equal(t, "Customer,Count,Sum,Avg", lines[0])
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Acme,2,"))
}

func TestMilestoneUpdatesCSV(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	updates := []*domain.MilestoneUpdate{
		{AuthorName: "Ana Souza", Body: "Cliente aprovou o escopo, seguimos", CreatedAt: createdAt},
	}

	content, err := MilestoneUpdatesCSV(updates)
	assert.NoError(t, err)

	body := strings.TrimPrefix(string(content), "\xef\xbb\xbf")
	lines := strings.Split(strings.TrimSpace(body), "\n")

	assert.Equal(t, "Date,Author,Update", lines[0])
	assert.Equal(t, `2024-03-15 09:30,Ana Souza,"Cliente aprovou o escopo, seguimos"`, lines[1])
}
