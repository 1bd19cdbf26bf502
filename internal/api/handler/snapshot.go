package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
)

// GetSnapshotPeriods lista os períodos com snapshot disponível, já quebrados
// em anos e meses distintos para popular os seletores do painel.
func GetSnapshotPeriods(snapshotRepository repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := snapshotRepository.GetAllPeriods()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar os períodos de snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar os períodos", nil)
			return
		}

		response := &domain.SnapshotPeriodsResponse{Periods: periods}

		seenYears := make(map[string]bool)
		seenMonths := make(map[string]bool)
		for _, period := range periods {
			parts := strings.SplitN(period, "-", 2)
			if len(parts) != 2 {
				continue
			}

			if !seenMonths[parts[0]] {
				seenMonths[parts[0]] = true
				response.Months = append(response.Months, parts[0])
			}

			if !seenYears[parts[1]] {
				seenYears[parts[1]] = true
				response.Years = append(response.Years, parts[1])
			}
		}

		respondJSON(w, r, http.StatusOK, response)
	}
}

// GetSnapshotByPeriod devolve as linhas pré-calculadas de um período mm-yyyy.
func GetSnapshotByPeriod(snapshotRepository repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		snapshot, err := snapshotRepository.GetByPeriod(period)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("period", period).
				Error("Erro ao buscar o snapshot do período")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o snapshot", nil)
			return
		}

		if snapshot == nil || len(snapshot.Rows) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhum snapshot para o período informado", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, snapshot)
	}
}
