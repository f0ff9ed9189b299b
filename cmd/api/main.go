package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sourcing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesClient := salesapiclient.NewClient(cfg)
	salesIntegrator := salesapi.New(salesClient)

	salesSource := sourcing.NewService(salesIntegrator)

	dashboardService, err := dashboard.NewService(cfg, salesSource, salesIntegrator)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o serviço de dashboard")
	}

	// Primeira carga antes de aceitar requisições
	initial := dashboardService.Reload(ctx)
	logrus.WithFields(logrus.Fields{
		"mode":        initial.Mode,
		"provenance":  initial.Provenance,
		"sales_count": len(initial.Sales),
	}).Info("Dashboard carregado")

	refreshService := scheduler.NewDashboardRefreshService(dashboardService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	}

	server, err := api.New(cfg, dashboardService, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
