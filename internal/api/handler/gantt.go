package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/charting"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
)

// GetProjectGantt renderiza o cronograma do projeto como SVG pronto para
// ser embutido no painel. Projetos sem marcos datados devolvem 204.
func GetProjectGantt(service charting.Charter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		locale := localeFromRequest(r)

		svg, err := service.ProjectGanttSVG(projectID, locale)
		if err != nil {
			switch {
			case errors.Is(err, charting.ErrProjectNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Projeto não encontrado", nil)
			case errors.Is(err, charting.ErrNoDatedMilestones):
				w.WriteHeader(http.StatusNoContent)
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar o cronograma do projeto")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar o cronograma", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(svg) //nolint:errcheck
	}
}
