package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/outreach-crm-api/internal/scheduler"
	"github.com/vfg2006/outreach-crm-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-crm-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReports = "reports"
	CronJobTypeAll     = "all"
)

// SyncJob é uma cron job que pode ser disparada manualmente
type SyncJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportSnapshotSyncService SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := map[string]SyncJob{}
	if s.ReportSnapshotSyncService != nil {
		jobs[CronJobTypeReports] = s.ReportSnapshotSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		var selected map[string]SyncJob
		switch cronType {
		case CronJobTypeAll:
			selected = jobs
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrUnknownSyncType, "Tipo de cron job inválido. Valores aceitos: reports, all", nil)
				return
			}
			selected = map[string]SyncJob{cronType: job}
		}

		for name, job := range selected {
			if err := job.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, err.Error(), map[string]any{"type": name})
					return
				}
				log.ForContext(r.Context()).WithError(err).WithField("job", name).Error("Erro ao iniciar cron job")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
				return
			}
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
