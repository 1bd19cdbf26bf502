package handler

import (
	"net/http"

	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
)

// GetSummary devolve os cartões de KPI do painel sobre o conjunto filtrado.
func GetSummary(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := criteriaFromRequest(r)

		summary, err := service.Summary(criteria)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular o resumo de KPIs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular o resumo", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, summary)
	}
}

// GetGroups agrupa os marcos filtrados por uma dimensão
// (?dimension=customer&measure=sum&locale=he).
func GetGroups(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := criteriaFromRequest(r)
		dimension := analyzing.ParseDimension(r.URL.Query().Get("dimension"))
		measure := analyzing.ParseMeasure(r.URL.Query().Get("measure"))
		locale := localeFromRequest(r)

		rows, err := service.Groups(criteria, dimension, measure, locale)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao agrupar os marcos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agrupar os marcos", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, rows)
	}
}

// GetDrillDown devolve a visão mensal detalhada por projeto.
func GetDrillDown(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := criteriaFromRequest(r)
		locale := localeFromRequest(r)

		periods, err := service.DrillDownByPeriod(criteria, locale)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular a visão mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular a visão mensal", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, periods)
	}
}

// ReconcileFilters limpa o filtro dependente de projeto quando os critérios
// enviados deixaram de incluí-lo; o painel chama após cada mudança de filtro.
func ReconcileFilters(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := criteriaFromRequest(r)

		reconciled, err := service.Reconcile(criteria)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao reconciliar os filtros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao reconciliar os filtros", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, reconciled)
	}
}
