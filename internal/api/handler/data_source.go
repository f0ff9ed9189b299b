package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type DataSourceRequest struct {
	Mode string `json:"mode"`
}

type DataSourceResponse struct {
	Mode      domain.DataSourceMode `json:"mode"`
	Dashboard *domain.Dashboard     `json:"dashboard,omitempty"`
}

func GetDataSource(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, DataSourceResponse{Mode: service.Mode()})
	}
}

// UpdateDataSource define o modo explicitamente e recarrega o dashboard
func UpdateDataSource(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request DataSourceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if request.Mode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo mode é obrigatório", nil)
			return
		}

		mode, err := domain.ParseDataSourceMode(request.Mode)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Modo inválido. Valores aceitos: mock, remote", nil)
			return
		}

		service.SetMode(mode)
		logger.WithField("mode", mode).Info("Fonte de dados definida")

		writeJSON(w, r, http.StatusOK, DataSourceResponse{
			Mode:      mode,
			Dashboard: reloadCurrent(r, service),
		})
	}
}

// ToggleDataSource alterna entre mock e remote e recarrega o dashboard
func ToggleDataSource(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := service.ToggleMode()
		log.ForContext(r.Context()).WithField("mode", mode).Info("Fonte de dados alternada")

		writeJSON(w, r, http.StatusOK, DataSourceResponse{
			Mode:      mode,
			Dashboard: reloadCurrent(r, service),
		})
	}
}

// reloadCurrent recarrega e devolve o dashboard efetivamente aplicado, que pode
// ser de um ciclo mais recente que o disparado aqui
func reloadCurrent(r *http.Request, service dashboard.DashboardService) *domain.Dashboard {
	service.Reload(r.Context())
	return service.Current(r.Context())
}
