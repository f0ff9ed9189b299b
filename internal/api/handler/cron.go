package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobTypeRefresh identifica a atualização periódica do dashboard
const CronJobTypeRefresh = "refresh"

// RefreshScheduler é o agendador que pode ser disparado manualmente
type RefreshScheduler interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(refresh RefreshScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != CronJobTypeRefresh {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh", nil)
			return
		}

		if refresh == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dashboard não disponível", nil)
			return
		}

		refresh.TriggerManualSync()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(refresh RefreshScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if refresh == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dashboard não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			CronJobTypeRefresh: refresh.GetStatus(),
		})
	}
}
