package domain

import "time"

// MetricRow acumula os contadores do funil de um período
type MetricRow struct {
	DataResearch            int `json:"dataResearch"`
	ConnectionRequestSent   int `json:"connectionRequestSent"`
	ExistingConnection      int `json:"existingConnection"`
	ConnectionAccepted      int `json:"connectionAccepted"`
	ConversationsInProgress int `json:"conversationsInProgress"`
	MeetingProposed         int `json:"meetingProposed"`
	MeetingScheduled        int `json:"meetingScheduled"`
	MeetingCompleted        int `json:"meetingCompleted"`
	FirstMessageSent        int `json:"firstMessageSent"`
	FollowupMessagesSent    int `json:"followupMessagesSent"`
}

// Report é o relatório por período de um projeto. Periods está em ordem de calendário.
type Report struct {
	ViewMode ViewMode              `json:"viewMode"`
	Periods  []string              `json:"periods"`
	Metrics  map[string]*MetricRow `json:"metrics"`
}

// Totals soma todos os períodos do relatório
func (r *Report) Totals() *MetricRow {
	total := &MetricRow{}
	if r == nil {
		return total
	}

	for _, row := range r.Metrics {
		total.DataResearch += row.DataResearch
		total.ConnectionRequestSent += row.ConnectionRequestSent
		total.ExistingConnection += row.ExistingConnection
		total.ConnectionAccepted += row.ConnectionAccepted
		total.ConversationsInProgress += row.ConversationsInProgress
		total.MeetingProposed += row.MeetingProposed
		total.MeetingScheduled += row.MeetingScheduled
		total.MeetingCompleted += row.MeetingCompleted
		total.FirstMessageSent += row.FirstMessageSent
		total.FollowupMessagesSent += row.FollowupMessagesSent
	}

	return total
}

// StatusCount é a contagem de um valor de status das atividades, já com o rótulo de exibição
type StatusCount struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Label string `json:"label"`
	Tone  string `json:"tone"`
	Count int    `json:"count"`
}

// ProjectReportResponse é a resposta do endpoint de relatório de um projeto
type ProjectReportResponse struct {
	Project         *Project      `json:"project,omitempty"`
	Report          *Report       `json:"report"`
	Totals          *MetricRow    `json:"totals"`
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	ComputedAt      time.Time     `json:"computedAt"`
	Cached          bool          `json:"cached"`
}

// AvailablePeriods lista os períodos com dados de um projeto
type AvailablePeriods struct {
	ViewMode ViewMode `json:"viewMode"`
	Periods  []string `json:"periods"`
}
