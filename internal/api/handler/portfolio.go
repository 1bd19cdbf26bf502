package handler

import (
	"net/http"

	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
)

// GetPortfolio devolve todas as coleções de uma vez; a SPA chama no login e
// depois de cada ação de escrita.
func GetPortfolio(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolio, err := service.LoadPortfolio()
		if err != nil {
			handleManagingError(w, r, err, "Erro ao carregar o portfólio")
			return
		}

		respondJSON(w, r, http.StatusOK, portfolio)
	}
}
