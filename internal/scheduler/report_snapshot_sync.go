package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outreach-crm-api/infrastructure/repository"
	"github.com/vfg2006/outreach-crm-api/internal/config"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/reporting"
)

// ErrSyncAlreadyRunning é retornado quando uma atualização manual encontra outra em andamento
var ErrSyncAlreadyRunning = errors.New("atualização de relatórios já em andamento")

// cleanupSchedule roda a limpeza de snapshots antigos uma vez por dia
const cleanupSchedule = "30 3 * * *"

// ReportSnapshotSyncConfig representa a configuração do agendador de relatórios
type ReportSnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	RetentionDays       int
}

// ReportSnapshotSyncService recalcula periodicamente os relatórios de todos os projetos ativos,
// mantendo os snapshots aquecidos para as consultas da API
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSnapshotSyncConfig
	reporter            reporting.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncProjects    int
	lastSyncFailures    int
}

// NewReportSnapshotSyncService cria uma nova instância do agendador de relatórios
func NewReportSnapshotSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	appConfig *config.Config,
) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule:        appConfig.ReportSync.CronSchedule,
		RequestDelaySeconds: appConfig.ReportSync.RequestDelaySeconds,
		MaxConcurrentJobs:   max(appConfig.ReportSync.MaxConcurrentJobs, 1),
		SyncEnabled:         appConfig.ReportSync.Enabled,
		RetentionDays:       appConfig.ReportSync.RetentionDays,
	}

	location := time.UTC
	if appConfig.Report.Location != nil {
		location = appConfig.Report.Location
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
		"retention_days":        syncConfig.RetentionDays,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSnapshotSyncService{
		scheduler:    gocron.NewScheduler(location),
		config:       syncConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		ctx:          context.Background(),
	}
}

// Start inicia o agendador
func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de relatórios desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de relatórios: %w", err)
	}

	if s.config.RetentionDays > 0 && s.snapshotRepo != nil {
		_, err = s.scheduler.Cron(cleanupSchedule).Do(func() {
			s.cleanupSnapshots()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar limpeza de snapshots: %w", err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReports recalcula os relatórios de todos os projetos ativos
func (s *ReportSnapshotSyncService) syncReports() {
	if !s.tryStart() {
		logrus.Info("Atualização de relatórios já em andamento, ignorando")
		return
	}
	s.runSync()
}

func (s *ReportSnapshotSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runSync deve ser chamado depois de tryStart
func (s *ReportSnapshotSyncService) runSync() {
	ctx := s.ctx
	startTime := time.Now()

	projects, failures := 0, 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncProjects = projects
		s.lastSyncFailures = failures
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de relatórios para todos os projetos ativos")

	activeProjects, err := s.reporter.ListProjects(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de projetos para atualização de relatórios")
		return
	}

	if len(activeProjects) == 0 {
		logrus.Info("Nenhum projeto ativo encontrado para atualização de relatórios")
		return
	}

	projects = len(activeProjects)
	failures = s.processProjects(ctx, activeProjects)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"projects": projects,
		"failures": failures,
	}).Info("Atualização de relatórios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processProjects recalcula cada projeto com no máximo MaxConcurrentJobs em paralelo e retorna as falhas
func (s *ReportSnapshotSyncService) processProjects(ctx context.Context, projects []*domain.Project) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	for _, project := range projects {
		if ctx.Err() != nil {
			logrus.Warn("Atualização de relatórios interrompida")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(p *domain.Project) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logger := logrus.WithFields(logrus.Fields{
				"project_id":   p.ID,
				"project_name": p.Name,
			})

			if err := s.reporter.RefreshProject(ctx, p.ID); err != nil {
				logger.WithError(err).Error("Erro ao atualizar relatórios do projeto")
				mu.Lock()
				failures++
				mu.Unlock()
			} else {
				logger.Info("Relatórios do projeto atualizados")
			}

			// Aguardar antes do próximo projeto para não sobrecarregar o CRM
			s.wait(ctx)
		}(project)
	}

	wg.Wait()
	return failures
}

func (s *ReportSnapshotSyncService) wait(ctx context.Context) {
	if s.config.RequestDelaySeconds <= 0 {
		return
	}

	timer := time.NewTimer(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// cleanupSnapshots remove snapshots que não são atualizados há mais de RetentionDays
func (s *ReportSnapshotSyncService) cleanupSnapshots() {
	deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		return
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
	}).Info("Snapshots antigos removidos")
}

// TriggerManualSync inicia manualmente uma atualização de relatórios
func (s *ReportSnapshotSyncService) TriggerManualSync() error {
	if !s.tryStart() {
		logrus.Info("Atualização de relatórios já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando atualização manual de relatórios")
	go s.runSync()
	return nil
}

// GetStatus retorna o status atual da atualização
func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_projects":     s.lastSyncProjects,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
