package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/importer/fixedwidth"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sourcing"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var (
	ErrInvalidFile  = errors.New("arquivo de vendas inválido")
	ErrNoValidSales = errors.New("nenhuma venda válida no arquivo")
	ErrUploadFailed = errors.New("falha ao enviar vendas para a API")
)

// DashboardService mantém o estado do dashboard e a fonte de dados selecionada
type DashboardService interface {
	// Reload executa um ciclo de carga completo e retorna o resultado dele. Se o contexto for
	// cancelado durante uma busca que falhou, nada é aplicado e o dashboard atual é retornado.
	Reload(ctx context.Context) *domain.Dashboard
	// Current retorna o último dashboard aplicado, carregando-o se necessário
	Current(ctx context.Context) *domain.Dashboard
	Mode() domain.DataSourceMode
	SetMode(mode domain.DataSourceMode)
	ToggleMode() domain.DataSourceMode
	// Import decodifica um arquivo .dat, envia as vendas válidas e recarrega a partir da API
	Import(ctx context.Context, fileName string, file io.Reader) (*ImportResult, error)
}

// ImportResult descreve o processamento de um arquivo importado
type ImportResult struct {
	BatchID       string            `json:"batch_id"`
	FileName      string            `json:"file_name"`
	Report        fixedwidth.Report `json:"report"`
	UploadedSales int               `json:"uploaded_sales"`
	Dashboard     *domain.Dashboard `json:"dashboard,omitempty"`
}

type Service struct {
	source   sourcing.SalesSource
	salesAPI salesapi.SalesAPIIntegrator

	// generation é incrementado a cada ciclo; só o maior resultado concluído é aplicado
	generation atomic.Uint64

	mu      sync.RWMutex
	mode    domain.DataSourceMode
	current *domain.Dashboard

	now func() time.Time
}

func NewService(
	cfg *config.Config,
	source sourcing.SalesSource,
	salesAPI salesapi.SalesAPIIntegrator,
) (*Service, error) {
	mode, err := domain.ParseDataSourceMode(cfg.DataSource.Mode)
	if err != nil {
		return nil, err
	}

	return &Service{
		source:   source,
		salesAPI: salesAPI,
		mode:     mode,
		now:      time.Now,
	}, nil
}

func (s *Service) Mode() domain.DataSourceMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Service) SetMode(mode domain.DataSourceMode) {
	s.mu.Lock()
	previous := s.mode
	s.mode = mode
	s.mu.Unlock()

	if previous != mode {
		logrus.WithFields(logrus.Fields{
			"from": previous,
			"to":   mode,
		}).Info("Fonte de dados alterada")
	}
}

func (s *Service) ToggleMode() domain.DataSourceMode {
	s.mu.Lock()
	previous := s.mode
	s.mode = s.mode.Toggle()
	mode := s.mode
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"from": previous,
		"to":   mode,
	}).Info("Fonte de dados alterada")

	return mode
}

func (s *Service) Reload(ctx context.Context) *domain.Dashboard {
	generation := s.generation.Add(1)
	mode := s.Mode()

	result := s.source.Fetch(ctx, mode)
	dashboard := s.build(generation, mode, result)

	// Cancelamento do chamador não é falha da API: o fallback não substitui o dashboard atual
	if result.Err != nil && ctx.Err() != nil {
		logrus.WithFields(logrus.Fields{
			"generation": generation,
			"error":      ctx.Err(),
		}).Debug("Carga descartada: contexto cancelado durante a busca")

		if current := s.snapshot(); current != nil {
			return current
		}
		return dashboard
	}

	if !s.apply(dashboard) {
		logrus.WithField("generation", generation).Debug("Carga descartada: um ciclo mais recente já foi aplicado")
	}

	return dashboard
}

func (s *Service) Current(ctx context.Context) *domain.Dashboard {
	if current := s.snapshot(); current != nil {
		return current
	}

	reloaded := s.Reload(ctx)

	if current := s.snapshot(); current != nil {
		return current
	}
	return reloaded
}

func (s *Service) snapshot() *domain.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) Import(ctx context.Context, fileName string, file io.Reader) (*ImportResult, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do lote: %w", err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"batch_id":  batchID,
		"file_name": fileName,
	})

	decoded, err := fixedwidth.Decode(file)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler arquivo de vendas")
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	result := &ImportResult{
		BatchID:  batchID,
		FileName: fileName,
		Report:   decoded.Report,
	}

	if decoded.Report.HasErrors() {
		logger.WithFields(logrus.Fields{
			"invalid_lines": decoded.Report.InvalidLines,
			"field_errors":  len(decoded.Report.Errors),
		}).Warn("Arquivo contém linhas com campos inválidos, que não serão enviadas")
	}

	sales := decoded.Valid()
	if len(sales) == 0 {
		return result, ErrNoValidSales
	}

	logger.WithField("sales_count", len(sales)).Info("Enviando vendas processadas para a API")

	if err := s.salesAPI.UploadSales(ctx, sales); err != nil {
		logger.WithError(err).Error("Erro ao enviar vendas para a API")
		return result, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	result.UploadedSales = len(sales)

	s.SetMode(domain.RemoteMode)
	result.Dashboard = s.Reload(ctx)

	return result, nil
}

func (s *Service) build(generation uint64, mode domain.DataSourceMode, result sourcing.FetchResult) *domain.Dashboard {
	dashboard := &domain.Dashboard{
		Generation: generation,
		Mode:       mode,
		Provenance: result.Provenance,
		LoadedAt:   s.now(),
	}
	aggregate(dashboard, result.Sales)

	return dashboard
}

// ForPeriod devolve uma cópia do dashboard restrita às vendas do período, com os agregados recalculados.
// Sem limites, o próprio dashboard é devolvido.
func ForPeriod(dashboard *domain.Dashboard, start, end *time.Time) *domain.Dashboard {
	if dashboard == nil || (start == nil && end == nil) {
		return dashboard
	}

	filtered := *dashboard
	aggregate(&filtered, aggregating.FilterByPeriod(dashboard.Sales, start, end))

	return &filtered
}

func aggregate(dashboard *domain.Dashboard, sales []domain.Sale) {
	dashboard.Sales = sales
	dashboard.Summary = aggregating.Summarize(sales)
	dashboard.ProductSales = aggregating.ProductSales(sales)
	dashboard.ClientSpending = aggregating.ClientSpending(sales)
	dashboard.DailySales = aggregating.DailySales(sales)
}

// apply troca o dashboard atual se a geração for mais nova que a aplicada
func (s *Service) apply(dashboard *domain.Dashboard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.Generation >= dashboard.Generation {
		return false
	}

	s.current = dashboard
	return true
}
