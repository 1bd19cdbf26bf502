package handler

import (
	"net/http"

	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/customizing"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
	"github.com/vfg2006/portfolio-manager-api/pkg/middleware"
)

// GetDashboardLayout devolve o arranjo de widgets do usuário autenticado,
// caindo no layout padrão quando ele nunca personalizou o painel.
func GetDashboardLayout(service customizing.Customizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		layout, err := service.GetLayout(r.Context(), userClaims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar o layout do painel")
			apiErrors.WriteError(w, apiErrors.ErrKeyValueStore, "Erro ao buscar o layout do painel", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, layout)
	}
}

// SaveDashboardLayout persiste o arranjo de widgets enviado pelo usuário.
func SaveDashboardLayout(service customizing.Customizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var layout domain.DashboardLayout
		if err := json.NewDecoder(r.Body).Decode(&layout); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.SaveLayout(r.Context(), userClaims.UserID, &layout); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao salvar o layout do painel")
			apiErrors.WriteError(w, apiErrors.ErrKeyValueStore, "Erro ao salvar o layout do painel", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, &layout)
	}
}

// ResetDashboardLayout descarta a personalização e volta ao layout padrão.
func ResetDashboardLayout(service customizing.Customizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.ResetLayout(r.Context(), userClaims.UserID); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao restaurar o layout do painel")
			apiErrors.WriteError(w, apiErrors.ErrKeyValueStore, "Erro ao restaurar o layout do painel", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, domain.DefaultDashboardLayout())
	}
}
