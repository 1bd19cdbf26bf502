package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
)

func ListProjects(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := service.ListProjects()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar projetos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar projetos", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, projects)
	}
}

func GetProject(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		project, err := service.GetProject(projectID)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao obter projeto")
			return
		}

		respondJSON(w, r, http.StatusOK, project)
	}
}

func CreateProject(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project domain.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateProject(&project)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao criar projeto")
			return
		}

		respondJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateProject(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateProject(&req)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao atualizar projeto")
			return
		}

		respondJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteProject(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProject(projectID); err != nil {
			handleManagingError(w, r, err, "Erro ao remover projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleManagingError converte os erros sentinela da camada de escrita no
// envelope de erro da API; falha de persistência vira o envelope genérico.
func handleManagingError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)

	switch {
	case errors.Is(err, managing.ErrProjectNotFound),
		errors.Is(err, managing.ErrMilestoneNotFound),
		errors.Is(err, managing.ErrLookupNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, managing.ErrInvalidProgress),
		errors.Is(err, managing.ErrInvalidLookupKind):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, managing.ErrMissingName),
		errors.Is(err, managing.ErrMissingTitle),
		errors.Is(err, managing.ErrMissingBody):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
