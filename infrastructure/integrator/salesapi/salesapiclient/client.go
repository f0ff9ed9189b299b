package salesapiclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	salesapidomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	ListSales(ctx context.Context) (ListSalesResponse, error)
	UploadSales(ctx context.Context, sales []domain.RawSale) error
}

type SalesAPIClient struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	listURL     string
	uploadURL   string
	contentType string
}

type ListSalesResponse []salesapidomain.Venda

// NewClient cria o cliente HTTP da API de vendas
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.SalesAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.SalesAPI.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.SalesAPI.RequestsPerSecond)
	}

	return &SalesAPIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:     rate.NewLimiter(limit, 1),
		listURL:     cfg.SalesAPI.URL,
		uploadURL:   cfg.SalesAPI.UploadURL,
		contentType: "application/json",
	}
}
