package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/reporting"
	"github.com/vfg2006/outreach-crm-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-crm-api/pkg/log"
)

func ListProjects(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := service.ListProjects(r.Context())
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		if projects == nil {
			projects = []*domain.Project{}
		}

		writeJSON(w, r, http.StatusOK, projects)
	}
}

// GetProjectReport retorna o relatório por período. Parâmetro view: month (padrão) ou year.
func GetProjectReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, mode, ok := parseReportRequest(w, r)
		if !ok {
			return
		}

		report, err := service.GetProjectReport(r.Context(), projectID, mode)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, mode, ok := parseReportRequest(w, r)
		if !ok {
			return
		}

		periods, err := service.GetAvailablePeriods(r.Context(), projectID, mode)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	}
}

func GetColdCallFunnel(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		funnel, err := service.GetColdCallFunnel(r.Context(), projectID)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, funnel)
	}
}

// RefreshProject recalcula os relatórios do projeto na hora, sem esperar o agendador
func RefreshProject(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		if err := service.RefreshProject(r.Context(), projectID); err != nil {
			handleReportError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("project_id", projectID).Info("Relatórios do projeto recalculados")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message":    "Relatórios recalculados com sucesso",
			"project_id": projectID,
		})
	}
}

func parseReportRequest(w http.ResponseWriter, r *http.Request) (string, domain.ViewMode, bool) {
	projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if projectID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
		return "", "", false
	}

	mode, err := domain.ParseViewMode(r.URL.Query().Get("view"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro view inválido. Valores aceitos: month, year", nil)
		return "", "", false
	}

	return projectID, mode, true
}
