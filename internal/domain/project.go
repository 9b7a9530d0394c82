package domain

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website,omitempty"`
	Active      bool   `json:"active"`
}

// ProjectAnalytics são os totais calculados pelo backend do CRM para um projeto
type ProjectAnalytics struct {
	TotalProspects int `json:"totalProspects"`
	MeetingsBooked int `json:"meetingsBooked"`
	DealsWon       int `json:"dealsWon"`
}

// ProjectSnapshot é a fotografia completa e imutável dos dados de um projeto usada nos cálculos
type ProjectSnapshot struct {
	Project    *Project
	Analytics  *ProjectAnalytics
	Activities []*Activity
	Contacts   []*Contact
}
