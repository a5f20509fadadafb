// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-funnel-api/internal/config"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/loading"
)

// ErrReloadInProgress indica que a recarga foi ignorada porque outra já está em execução
var ErrReloadInProgress = errors.New("dataset reload already in progress")

type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetReloadService recarrega o CSV periodicamente e sob demanda
type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	loader              loading.DatasetLoader
	config              DatasetReloadConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           error
	datasetVersion      string
}

func NewDatasetReloadService(loader loading.DatasetLoader, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule,
		SyncEnabled:  cfg.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		loader:    loader,
		config:    reloadConfig,
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Reload(ctx); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload executa uma recarga completa. Se outra recarga estiver em andamento retorna ErrReloadInProgress.
func (s *DatasetReloadService) Reload(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga do dataset já está em execução")
		return ErrReloadInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	dataset, err := s.loader.Load(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if err != nil {
		return err
	}
	s.datasetVersion = dataset.Version

	return nil
}

// TriggerManualSync inicia manualmente uma recarga em segundo plano
func (s *DatasetReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.Reload(context.Background()); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   formatTime(s.lastSyncStartedAt),
		"last_sync_completed_at": formatTime(s.lastSyncCompletedAt),
		"dataset_version":        s.datasetVersion,
		"last_error":             nil,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}

func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
