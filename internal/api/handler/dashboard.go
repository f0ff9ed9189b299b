package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetDashboard retorna o dashboard atual, opcionalmente restrito a start_date/end_date
func GetDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := dashboardForRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, current)
	}
}

// ReloadDashboard executa um novo ciclo de carga e retorna o resultado
func ReloadDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ReloadDashboard")

		reloaded := service.Reload(r.Context())

		logger.WithFields(log.Fields{
			"generation": reloaded.Generation,
			"provenance": reloaded.Provenance,
		}).Info("Dashboard recarregado")

		writeJSON(w, r, http.StatusOK, reloaded)
	}
}

func ListSales(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := dashboardForRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, current.Sales)
	}
}

func GetSalesSummary(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := dashboardForRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, current.Summary)
	}
}

func GetProductSales(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := dashboardForRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, current.ProductSales)
	}
}

func GetClientSpending(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := dashboardForRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, current.ClientSpending)
	}
}

func GetDailySales(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := dashboardForRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, current.DailySales)
	}
}

// dashboardForRequest lê os filtros de período e escreve o erro na resposta quando são inválidos
func dashboardForRequest(w http.ResponseWriter, r *http.Request, service dashboard.DashboardService) (*domain.Dashboard, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de start_date inválido. Use YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de end_date inválido. Use YYYY-MM-DD", nil)
		return nil, false
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date deve ser anterior ou igual a end_date", nil)
		return nil, false
	}

	return dashboard.ForPeriod(service.Current(r.Context()), startDate, endDate), true
}
