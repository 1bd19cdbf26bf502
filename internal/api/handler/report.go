package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

// ListReportFields expõe o catálogo de colunas disponíveis ao construtor de
// relatórios do frontend.
func ListReportFields() http.HandlerFunc {
	type fieldResponse struct {
		Key           reporting.FieldKey `json:"key"`
		Label         string             `json:"label"`
		ProjectScoped bool               `json:"projectScoped"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		fields := reporting.Fields()

		out := make([]fieldResponse, 0, len(fields))
		for _, f := range fields {
			out = append(out, fieldResponse{
				Key:           f.Key,
				Label:         f.Label,
				ProjectScoped: f.ProjectScoped,
			})
		}

		respondJSON(w, r, http.StatusOK, out)
	}
}

// BuildReport monta um relatório tabular a partir dos parâmetros enviados no
// corpo (colunas, modo, agrupamento e filtros).
func BuildReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := reportParamsFromRequest(w, r)
		if !ok {
			return
		}

		report, err := service.Build(params)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar o relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, report)
	}
}

// ExportReportCSV devolve o mesmo relatório como arquivo CSV para download.
func ExportReportCSV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := reportParamsFromRequest(w, r)
		if !ok {
			return
		}

		content, err := service.BuildCSV(params)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar o relatório em CSV")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar o relatório", nil)
			return
		}

		filename := fmt.Sprintf("relatorio-%s.csv", time.Now().Format("2006-01-02"))
		writeCSV(w, filename, content)
	}
}

// ExportMilestoneUpdatesCSV exporta o histórico de atualizações de um marco,
// com recorte opcional por período (?from=2024-01-01&to=2024-03-31).
func ExportMilestoneUpdatesCSV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		milestoneID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		from := utils.ParseDateLenient(r.URL.Query().Get("from"))
		to := utils.ParseDateLenient(r.URL.Query().Get("to"))

		content, err := service.UpdateHistoryCSV(milestoneID, from, to)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar o histórico do marco")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar o histórico", nil)
			return
		}

		filename := fmt.Sprintf("marco-%s-atualizacoes.csv", milestoneID)
		writeCSV(w, filename, content)
	}
}

func reportParamsFromRequest(w http.ResponseWriter, r *http.Request) (reporting.Params, bool) {
	var params reporting.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return params, false
	}

	return params, true
}

func writeCSV(w http.ResponseWriter, filename string, content []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(content) //nolint:errcheck
}
