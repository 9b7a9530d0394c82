package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound    = errors.New("projeto não encontrado")
	ErrBackendUnavailable = errors.New("backend do CRM indisponível")
	ErrMissingProjectID   = errors.New("id do projeto é obrigatório")
)

// ReportError carrega o código da API junto com o erro de origem
type ReportError struct {
	Err       error
	Code      string
	ProjectID string
	Details   string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code, projectID, details string) *ReportError {
	return &ReportError{
		Err:       baseErr,
		Code:      code,
		ProjectID: projectID,
		Details:   details,
	}
}
