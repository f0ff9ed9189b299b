package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DashboardReloader executa um ciclo de carga do dashboard
type DashboardReloader interface {
	Reload(ctx context.Context) *domain.Dashboard
}

// DashboardRefreshConfig representa a configuração do agendador de atualização do dashboard
type DashboardRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardRefreshService recarrega o dashboard periodicamente
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	dashboard DashboardReloader
	ctx       context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastGeneration      uint64
	lastProvenance      domain.Provenance
}

// NewDashboardRefreshService cria uma nova instância do serviço de atualização do dashboard
func NewDashboardRefreshService(dashboard DashboardReloader, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		SyncEnabled:  appConfig.DashboardRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dashboard: dashboard,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização automática do dashboard desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh executa um ciclo de carga, ignorando a chamada se outro estiver em andamento
func (s *DashboardRefreshService) refresh() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	ctx := s.ctx
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	dashboard := s.dashboard.Reload(ctx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastGeneration = dashboard.Generation
	s.lastProvenance = dashboard.Provenance
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"generation":  dashboard.Generation,
		"provenance":  dashboard.Provenance,
		"sales_count": len(dashboard.Sales),
		"duration":    time.Since(startTime).String(),
	}).Info("Atualização do dashboard concluída")

	return true
}

// TriggerManualSync inicia manualmente uma atualização do dashboard
func (s *DashboardRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")
	go s.refresh()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_generation":        s.lastGeneration,
		"last_provenance":        s.lastProvenance,
	}
}
