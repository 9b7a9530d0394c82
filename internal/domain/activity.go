package domain

import "time"

type ActivityType string

const (
	ActivityTypeCall     ActivityType = "call"
	ActivityTypeEmail    ActivityType = "email"
	ActivityTypeLinkedIn ActivityType = "linkedin"
)

// Valores conhecidos dos campos de status das atividades. Valores fora destas listas
// são aceitos e exibidos com o rótulo genérico.
const (
	LnRequestYes             = "Yes"
	LnRequestNo              = "No"
	LnRequestExistingConnect = "Existing Connect"

	ConnectedYes = "Yes"
	ConnectedNo  = "No"

	StatusCIP              = "CIP"
	StatusMeetingProposed  = "Meeting Proposed"
	StatusMeetingScheduled = "Meeting Scheduled"
	StatusMeetingCompleted = "Meeting Completed"

	CallStatusInterested    = "Interested"
	CallStatusDetailsShared = "Details Shared"
	CallStatusDemoBooked    = "Demo Booked"
	CallStatusDemoCompleted = "Demo Completed"
	CallStatusCallBack      = "Call Back"
	CallStatusFuture        = "Future"
)

// Activity representa uma atividade de prospecção (ligação, email ou LinkedIn) de um contato
type Activity struct {
	ID                string       `json:"id"`
	Type              ActivityType `json:"type"`
	ContactID         string       `json:"contactId"`
	ProjectID         string       `json:"projectId"`
	CreatedAt         *time.Time   `json:"createdAt"`
	Outcome           string       `json:"outcome,omitempty"`
	ConversationNotes string       `json:"conversationNotes,omitempty"`
	NextAction        string       `json:"nextAction,omitempty"`
	NextActionDate    *time.Time   `json:"nextActionDate,omitempty"`

	// Campos específicos de cada canal
	CallDate      *time.Time `json:"callDate,omitempty"`
	CallStatus    string     `json:"callStatus,omitempty"`
	LnRequestSent string     `json:"lnRequestSent,omitempty"`
	Connected     string     `json:"connected,omitempty"`
	Status        string     `json:"status,omitempty"`

	// Indicam que o backend enviou a data, mesmo que ela não seja reconhecida
	NextActionDateSet bool `json:"-"`
	CallDateSet       bool `json:"-"`
}

// HasCallDate indica ligação registrada, com data válida ou não
func (a *Activity) HasCallDate() bool {
	return a.CallDateSet || a.CallDate != nil
}

func (a *Activity) HasNextActionDate() bool {
	return a.NextActionDateSet || a.NextActionDate != nil
}

func (a *Activity) IsLinkedIn() bool {
	return a.Type == ActivityTypeLinkedIn
}

func (a *Activity) HasNotes() bool {
	return a.ConversationNotes != ""
}
