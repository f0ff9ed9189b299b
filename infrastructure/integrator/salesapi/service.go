package salesapi

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	salesapidomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SalesAPIIntegrator interface {
	GetSales(ctx context.Context) ([]domain.Sale, error)
	UploadSales(ctx context.Context, sales []domain.RawSale) error
}

type SalesAPIService struct {
	Client salesapiclient.Client
}

func New(client salesapiclient.Client) SalesAPIIntegrator {
	return &SalesAPIService{
		Client: client,
	}
}

// GetSales busca as vendas na API remota e as normaliza
func (s *SalesAPIService) GetSales(ctx context.Context) ([]domain.Sale, error) {
	resp, err := s.Client.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	return ToSales(resp), nil
}

func (s *SalesAPIService) UploadSales(ctx context.Context, sales []domain.RawSale) error {
	return s.Client.UploadSales(ctx, sales)
}

// ToSales converte as vendas da API para o domínio. O ID é a posição (a partir
// de 1) na resposta e o total é recalculado, nunca lido da API.
func ToSales(vendas []salesapidomain.Venda) []domain.Sale {
	sales := make([]domain.Sale, 0, len(vendas))

	for i, venda := range vendas {
		product := domain.Product{
			ID:        parseID("idProduto", venda.Product.ID),
			Name:      venda.Product.Name,
			UnitPrice: venda.Product.UnitPrice,
		}
		client := domain.Client{
			ID:   parseID("idCliente", venda.Client.ID),
			Name: venda.Client.Name,
		}

		sales = append(sales, domain.NewSale(i+1, venda.Date, venda.Quantity, product, client))
	}

	return sales
}

func parseID(field, value string) int {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("ID não numérico recebido da API de vendas, usando 0")
		return 0
	}
	return id
}
