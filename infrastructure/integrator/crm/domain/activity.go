package crmdomain

import (
	"strings"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

// Activity é o formato de atividade retornado pelo backend do CRM
type Activity struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	ContactID         string    `json:"contactId"`
	ProjectID         string    `json:"projectId"`
	CreatedAt         Timestamp `json:"createdAt"`
	Outcome           string    `json:"outcome"`
	ConversationNotes string    `json:"conversationNotes"`
	NextAction        string    `json:"nextAction"`
	NextActionDate    Timestamp `json:"nextActionDate"`
	CallDate          Timestamp `json:"callDate"`
	CallStatus        string    `json:"callStatus"`
	LnRequestSent     string    `json:"lnRequestSent"`
	Connected         string    `json:"connected"`
	Status            string    `json:"status"`
}

func (a Activity) ToDomain() *domain.Activity {
	return &domain.Activity{
		ID:                strings.TrimSpace(a.ID),
		Type:              domain.ActivityType(strings.ToLower(strings.TrimSpace(a.Type))),
		ContactID:         strings.TrimSpace(a.ContactID),
		ProjectID:         strings.TrimSpace(a.ProjectID),
		CreatedAt:         a.CreatedAt.Time,
		Outcome:           strings.TrimSpace(a.Outcome),
		ConversationNotes: a.ConversationNotes,
		NextAction:        strings.TrimSpace(a.NextAction),
		NextActionDate:    a.NextActionDate.Time,
		NextActionDateSet: a.NextActionDate.Present,
		CallDate:          a.CallDate.Time,
		CallDateSet:       a.CallDate.Present,
		CallStatus:        strings.TrimSpace(a.CallStatus),
		LnRequestSent:     strings.TrimSpace(a.LnRequestSent),
		Connected:         strings.TrimSpace(a.Connected),
		Status:            strings.TrimSpace(a.Status),
	}
}

func ActivitiesToDomain(activities []Activity) []*domain.Activity {
	result := make([]*domain.Activity, 0, len(activities))
	for _, activity := range activities {
		result = append(result, activity.ToDomain())
	}
	return result
}
