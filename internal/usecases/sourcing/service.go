package sourcing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FetchResult carrega as vendas e a origem efetiva delas. Err guarda a falha da
// API remota quando houve fallback; nunca é devolvido como erro ao chamador.
type FetchResult struct {
	Sales      []domain.Sale
	Provenance domain.Provenance
	Err        error
}

// Fallback indica se os dados mock substituíram uma leitura remota que falhou
func (r FetchResult) Fallback() bool {
	return r.Provenance == domain.FromFallback
}

// SalesSource resolve as vendas a partir do modo informado
type SalesSource interface {
	Fetch(ctx context.Context, mode domain.DataSourceMode) FetchResult
}

type Service struct {
	salesAPI salesapi.SalesAPIIntegrator
}

func NewService(salesAPI salesapi.SalesAPIIntegrator) SalesSource {
	return &Service{
		salesAPI: salesAPI,
	}
}

// Fetch retorna as vendas mock ou busca na API remota. Qualquer falha remota
// (transporte ou status fora de 2xx) é registrada e substituída pelos dados mock.
func (s *Service) Fetch(ctx context.Context, mode domain.DataSourceMode) FetchResult {
	if mode != domain.RemoteMode {
		return FetchResult{
			Sales:      domain.MockSales(),
			Provenance: domain.FromMock,
		}
	}

	sales, err := s.salesAPI.GetSales(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas da API")
		logrus.Info("Retornando dados mock como fallback")

		return FetchResult{
			Sales:      domain.MockSales(),
			Provenance: domain.FromFallback,
			Err:        err,
		}
	}

	if sales == nil {
		sales = make([]domain.Sale, 0)
	}

	logrus.WithField("sales_count", len(sales)).Debug("Vendas carregadas da API")

	return FetchResult{
		Sales:      sales,
		Provenance: domain.FromSource,
	}
}
