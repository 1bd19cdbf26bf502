package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
)

// ListLookups lista os cadastros auxiliares, com recorte opcional por tipo
// (?kinds=COUNTRY,TEAM).
func ListLookups(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var kinds []domain.LookupKind
		if raw := r.URL.Query().Get("kinds"); raw != "" {
			for _, kind := range strings.Split(raw, ",") {
				kinds = append(kinds, domain.LookupKind(strings.ToUpper(strings.TrimSpace(kind))))
			}
		}

		lookups, err := service.ListLookups(kinds)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao listar cadastros auxiliares")
			return
		}

		respondJSON(w, r, http.StatusOK, lookups)
	}
}

func CreateLookup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lookup domain.Lookup
		if err := json.NewDecoder(r.Body).Decode(&lookup); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateLookup(&lookup)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao criar cadastro auxiliar")
			return
		}

		respondJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateLookup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lookup domain.Lookup
		if err := json.NewDecoder(r.Body).Decode(&lookup); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		lookup.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateLookup(&lookup)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao atualizar cadastro auxiliar")
			return
		}

		respondJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteLookup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lookupID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteLookup(lookupID); err != nil {
			handleManagingError(w, r, err, "Erro ao remover cadastro auxiliar")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
