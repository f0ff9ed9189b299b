package sourcing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesAPI := mocks.NewMockSalesAPIIntegrator(ctrl)
	service := NewService(mockSalesAPI)

	remoteSales := []domain.Sale{
		domain.NewSale(1, "2025-10-05", 2, domain.Product{ID: 7, Name: "Cadeira", UnitPrice: 500}, domain.Client{ID: 9, Name: "Bia"}),
	}

	tests := []struct {
		name       string
		mode       domain.DataSourceMode
		setup      func()
		expected   []domain.Sale
		provenance domain.Provenance
		hasErr     bool
	}{
		{
			name:       "Modo mock não acessa a API",
			mode:       domain.MockMode,
			setup:      func() {},
			expected:   domain.MockSales(),
			provenance: domain.FromMock,
		},
		{
			name: "Modo remoto retorna as vendas da API",
			mode: domain.RemoteMode,
			setup: func() {
				mockSalesAPI.EXPECT().GetSales(gomock.Any()).Return(remoteSales, nil)
			},
			expected:   remoteSales,
			provenance: domain.FromSource,
		},
		{
			name: "Modo remoto com resposta vazia",
			mode: domain.RemoteMode,
			setup: func() {
				mockSalesAPI.EXPECT().GetSales(gomock.Any()).Return(nil, nil)
			},
			expected:   []domain.Sale{},
			provenance: domain.FromSource,
		},
		{
			name: "Falha remota usa os dados mock",
			mode: domain.RemoteMode,
			setup: func() {
				mockSalesAPI.EXPECT().GetSales(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expected:   domain.MockSales(),
			provenance: domain.FromFallback,
			hasErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result := service.Fetch(context.Background(), tt.mode)

			assert.Equal(t, tt.expected, result.Sales)
			assert.Equal(t, tt.provenance, result.Provenance)
			assert.Equal(t, tt.provenance == domain.FromFallback, result.Fallback())
			if tt.hasErr {
				assert.Error(t, result.Err)
			} else {
				assert.NoError(t, result.Err)
			}
		})
	}
}

func TestFetchRemoteStatus500FallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := salesapiclient.NewClient(&config.Config{
		SalesAPI: config.SalesAPI{URL: srv.URL + "/vendas", TimeoutSeconds: 5},
	})
	service := NewService(salesapi.New(client))

	remote := service.Fetch(context.Background(), domain.RemoteMode)
	mock := service.Fetch(context.Background(), domain.MockMode)

	require.True(t, remote.Fallback())
	assert.Equal(t, mock.Sales, remote.Sales)
	assert.Contains(t, remote.Err.Error(), "500")
}
