package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/middleware"
	"github.com/vfg2006/portfolio-manager-api/pkg/utils"
)

func ListMilestones(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		milestones, err := service.ListMilestones()
		if err != nil {
			handleManagingError(w, r, err, "Erro ao listar marcos")
			return
		}

		respondJSON(w, r, http.StatusOK, milestones)
	}
}

func CreateMilestone(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var milestone domain.Milestone
		if err := json.NewDecoder(r.Body).Decode(&milestone); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateMilestone(&milestone)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao criar marco")
			return
		}

		respondJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateMilestone(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateMilestoneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateMilestone(&req)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao atualizar marco")
			return
		}

		respondJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteMilestone(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		milestoneID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteMilestone(milestoneID); err != nil {
			handleManagingError(w, r, err, "Erro ao remover marco")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListMilestoneUpdates devolve o histórico de notas de um marco, com recorte
// opcional por intervalo de datas (from/to, AAAA-MM-DD).
func ListMilestoneUpdates(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		milestoneID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		from := utils.ParseDateLenient(r.URL.Query().Get("from"))
		to := utils.ParseDateLenient(r.URL.Query().Get("to"))

		updates, err := service.ListMilestoneUpdates(milestoneID, from, to)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao listar notas do marco")
			return
		}

		respondJSON(w, r, http.StatusOK, updates)
	}
}

type MilestoneUpdateRequest struct {
	Body string `json:"body"`
}

func AddMilestoneUpdate(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req MilestoneUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		update := &domain.MilestoneUpdate{
			MilestoneID: httprouter.ParamsFromContext(r.Context()).ByName("id"),
			AuthorID:    userClaims.UserID,
			AuthorName:  userClaims.UserName + " " + userClaims.UserLastname,
			Body:        req.Body,
		}

		created, err := service.AddMilestoneUpdate(update)
		if err != nil {
			handleManagingError(w, r, err, "Erro ao registrar nota do marco")
			return
		}

		respondJSON(w, r, http.StatusCreated, created)
	}
}
