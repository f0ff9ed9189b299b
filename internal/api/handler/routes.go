package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/reload",
			Method:  http.MethodPost,
			Handler: ReloadDashboard(service),
		},
	}
}

func Sales(service dashboard.DashboardService, maxFileSize int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
		{
			Path:    "/v1/sales/by-product",
			Method:  http.MethodGet,
			Handler: GetProductSales(service),
		},
		{
			Path:    "/v1/sales/by-client",
			Method:  http.MethodGet,
			Handler: GetClientSpending(service),
		},
		{
			Path:    "/v1/sales/by-day",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
		{
			Path:    "/v1/sales/import",
			Method:  http.MethodPost,
			Handler: ImportSales(service, maxFileSize),
		},
	}
}

func DataSource(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/data-source",
			Method:  http.MethodGet,
			Handler: GetDataSource(service),
		},
		{
			Path:    "/v1/data-source",
			Method:  http.MethodPut,
			Handler: UpdateDataSource(service),
		},
		{
			Path:    "/v1/data-source/toggle",
			Method:  http.MethodPost,
			Handler: ToggleDataSource(service),
		},
	}
}

func CronJobs(refresh RefreshScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(refresh),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refresh),
		},
	}
}
