package reporting

import (
	"context"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter.go -package=mocks
type Reporter interface {
	// ListProjects lista os projetos ativos do CRM
	ListProjects(ctx context.Context) ([]*domain.Project, error)

	// GetProjectReport retorna o relatório por período de um projeto
	GetProjectReport(ctx context.Context, projectID string, mode domain.ViewMode) (*domain.ProjectReportResponse, error)

	// GetColdCallFunnel retorna o funil de cold calling e as taxas do projeto
	GetColdCallFunnel(ctx context.Context, projectID string) (*domain.ColdCallReportResponse, error)

	// GetAvailablePeriods retorna os rótulos dos períodos com dados, em ordem de calendário
	GetAvailablePeriods(ctx context.Context, projectID string, mode domain.ViewMode) (*domain.AvailablePeriods, error)

	// RefreshProject recalcula e persiste todos os relatórios do projeto, ignorando o cache
	RefreshProject(ctx context.Context, projectID string) error
}
