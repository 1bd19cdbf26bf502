package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/portfolio-manager-api/internal/scheduler"
	"github.com/vfg2006/portfolio-manager-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-manager-api/pkg/log"
)

// CronJobServices agrupa os serviços agendados acionáveis manualmente.
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// RunCronJob dispara uma execução manual do job informado em /cron/:type.
// A execução acontece em background; a resposta confirma apenas o disparo.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "snapshot-sync":
			go func() {
				if err := services.SnapshotSyncService.SyncSnapshots(); err != nil {
					log.L.WithError(err).Error("Erro na execução manual da sincronização de snapshots")
				}
			}()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job desconhecido", map[string]interface{}{
				"type": jobType,
			})
			return
		}

		respondJSON(w, r, http.StatusAccepted, map[string]string{
			"status": "started",
			"type":   jobType,
		})
	}
}

// GetCronStatus expõe o estado atual dos jobs agendados.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]interface{}{
			"snapshot_sync": services.SnapshotSyncService.Status(),
		})
	}
}
