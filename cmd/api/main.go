package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-funnel-api/infrastructure/datasource"
	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/api"
	"github.com/vfg2006/sales-funnel-api/internal/config"
	"github.com/vfg2006/sales-funnel-api/internal/scheduler"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/loading"
	"github.com/vfg2006/sales-funnel-api/pkg/log"
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

	source, err := datasource.New(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	datasetRepo := repository.NewDatasetRepository()
	loader := loading.NewLoader(source, datasetRepo)

	// Sem o dataset a API responde 503 até a próxima recarga bem-sucedida
	if _, err := loader.Load(ctx); err != nil {
		logrus.WithError(err).Error("Falha no carregamento inicial do dataset")
	}

	dashboardService := dashboard.NewService(datasetRepo)

	datasetReloadService := scheduler.NewDatasetReloadService(loader, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Falha ao iniciar agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		datasetRepo,
		dashboardService,
		datasetReloadService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	if log.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
}
