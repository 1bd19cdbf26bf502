package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// utf8BOM na frente do arquivo para planilhas abrirem o CSV com a codificação
// correta nas duas línguas do painel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReportCSV serializa o relatório como CSV separado por vírgula, com aspas
// RFC 4180 para células contendo vírgula, aspas ou quebra de linha.
func ReportCSV(report *Report) ([]byte, error) {
	buffer := &bytes.Buffer{}
	buffer.Write(utf8BOM)

	writer := csv.NewWriter(buffer)

	switch report.Mode {
	case ModeAggregate:
		if err := writeAggregateRows(writer, report); err != nil {
			return nil, err
		}
	default:
		if err := writeDetailedRows(writer, report); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV do relatório: %w", err)
	}

	return buffer.Bytes(), nil
}

func writeDetailedRows(writer *csv.Writer, report *Report) error {
	header := make([]string, 0, len(report.Fields))
	for _, key := range report.Fields {
		if field, ok := FieldByKey(key); ok {
			header = append(header, field.Label)
		}
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(report.Fields))
	for _, row := range report.DetailedRows {
		for i, key := range report.Fields {
			record[i] = row.Cells[key]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeAggregateRows(writer *csv.Writer, report *Report) error {
	groupLabel := string(report.GroupField)
	if field, ok := FieldByKey(report.GroupField); ok {
		groupLabel = field.Label
	}

	if err := writer.Write([]string{groupLabel, "Count", "Sum", "Avg"}); err != nil {
		return err
	}

	for _, row := range report.AggregateRows {
		record := []string{
			row.Label,
			fmt.Sprintf("%d", row.Count),
			utils.FormatAmount(row.Sum),
			utils.FormatAmount(row.Avg),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// MilestoneUpdatesCSV exporta o histórico de notas de um marco, já filtrado
// por intervalo de datas pelo repositório.
func MilestoneUpdatesCSV(updates []*domain.MilestoneUpdate) ([]byte, error) {
	buffer := &bytes.Buffer{}
	buffer.Write(utf8BOM)

	writer := csv.NewWriter(buffer)

	if err := writer.Write([]string{"Date", "Author", "Update"}); err != nil {
		return nil, err
	}

	for _, update := range updates {
		record := []string{
			update.CreatedAt.Format("2006-01-02 15:04"),
			update.AuthorName,
			update.Body,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV do histórico: %w", err)
	}

	return buffer.Bytes(), nil
}
