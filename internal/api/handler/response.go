package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/reporting"
	"github.com/vfg2006/outreach-crm-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-crm-api/pkg/log"
	"github.com/vfg2006/outreach-crm-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeBody lê o JSON da requisição; em caso de erro já responde VAL_001
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// currentUser devolve o usuário autenticado; sem claims responde AUTH_006
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return claims, ok
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleAuthError traduz os erros do serviço de autenticação para a resposta da API
func handleAuthError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// handleReportError traduz os erros do serviço de relatórios para a resposta da API
func handleReportError(w http.ResponseWriter, r *http.Request, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		var details map[string]any
		if reportErr.ProjectID != "" {
			details = map[string]any{"project_id": reportErr.ProjectID}
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Err.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao gerar relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerar relatório", nil)
}
