package crmdomain

import (
	"strings"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

const projectStatusActive = "active"

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Status      string `json:"status"`
}

func (p Project) ToDomain() *domain.Project {
	status := strings.ToLower(strings.TrimSpace(p.Status))

	return &domain.Project{
		ID:          strings.TrimSpace(p.ID),
		Name:        strings.TrimSpace(p.Name),
		CompanyName: strings.TrimSpace(p.CompanyName),
		Website:     strings.TrimSpace(p.Website),
		Active:      status == "" || status == projectStatusActive,
	}
}

// ProjectAnalytics é o resumo calculado pelo backend. Contadores negativos são tratados como zero.
type ProjectAnalytics struct {
	TotalProspects int `json:"totalProspects"`
	MeetingsBooked int `json:"meetingsBooked"`
	DealsWon       int `json:"dealsWon"`
}

func (a ProjectAnalytics) ToDomain() *domain.ProjectAnalytics {
	return &domain.ProjectAnalytics{
		TotalProspects: max(a.TotalProspects, 0),
		MeetingsBooked: max(a.MeetingsBooked, 0),
		DealsWon:       max(a.DealsWon, 0),
	}
}
