package salesapiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newTestClient(listURL, uploadURL string) Client {
	return NewClient(&config.Config{
		SalesAPI: config.SalesAPI{
			URL:            listURL,
			UploadURL:      uploadURL,
			TimeoutSeconds: 5,
		},
	})
}

func TestListSales(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vendas", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"produto":{"idProduto":"0101","nomeProduto":"Teclado","valorUnit":350.75},
			 "cliente":{"idCliente":"0201","nomeCliente":"Ana Silva"},
			 "qtdVendida":2,"dataVenda":"2025-09-29"}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL+"/vendas", "")

	resp, err := client.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)

	assert.Equal(t, "0101", resp[0].Product.ID)
	assert.Equal(t, "Teclado", resp[0].Product.Name)
	assert.Equal(t, 350.75, resp[0].Product.UnitPrice)
	assert.Equal(t, "0201", resp[0].Client.ID)
	assert.Equal(t, "Ana Silva", resp[0].Client.Name)
	assert.Equal(t, 2, resp[0].Quantity)
	assert.Equal(t, "2025-09-29", resp[0].Date)
}

func TestListSalesErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		errMsg  string
	}{
		{
			name: "Status 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			errMsg: "requisição falhou com status: 500 Internal Server Error",
		},
		{
			name: "Status 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			errMsg: "requisição falhou com status: 404 Not Found",
		},
		{
			name: "JSON inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"`))
			},
			errMsg: "erro ao decodificar a resposta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestClient(srv.URL, "").ListSales(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestListSalesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url, "").ListSales(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao executar a requisição")
}

func TestUploadSales(t *testing.T) {
	var body []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var err error
		body, err = io.ReadAll(r.Body)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := newTestClient("", srv.URL+"/vendas")

	err := client.UploadSales(context.Background(), []domain.RawSale{
		{
			ProductID:   "0101",
			ProductName: "Teclado",
			ClientID:    "0201",
			ClientName:  "Ana Silva",
			Quantity:    2,
			UnitPrice:   350.75,
			Date:        "2025-09-29",
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"idProduto":"0101","nomeProduto":"Teclado",
		"idCliente":"0201","nomeCliente":"Ana Silva",
		"qtdVendida":2,"valorUnit":350.75,"dataVenda":"2025-09-29"
	}]`, string(body))
}

func TestUploadSalesEmptySendsArray(t *testing.T) {
	var body []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	err := newTestClient("", srv.URL).UploadSales(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestUploadSalesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "banco indisponível", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestClient("", srv.URL).UploadSales(context.Background(), []domain.RawSale{{ProductID: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502 Bad Gateway")
	assert.Contains(t, err.Error(), "banco indisponível")
}
