package domain

import "time"

type FunnelStage string

const (
	FunnelStageProspectData    FunnelStage = "prospectData"
	FunnelStageCallSent        FunnelStage = "callSent"
	FunnelStageAccepted        FunnelStage = "accepted"
	FunnelStageCIP             FunnelStage = "cip"
	FunnelStageFollowups       FunnelStage = "followups"
	FunnelStageMeetingProposed FunnelStage = "meetingProposed"
	FunnelStageScheduled       FunnelStage = "scheduled"
	FunnelStageCompleted       FunnelStage = "completed"
	FunnelStageSQL             FunnelStage = "sql"
)

type FunnelRow struct {
	Stage FunnelStage `json:"stage"`
	Label string      `json:"label"`
	Count int         `json:"count"`
}

// ColdCallCounts são os totais do funil de cold calling (contatos distintos por etapa)
type ColdCallCounts struct {
	ProspectData    int `json:"prospectData"`
	CallSent        int `json:"callSent"`
	Accepted        int `json:"accepted"`
	CIP             int `json:"cip"`
	Followups       int `json:"followups"`
	MeetingProposed int `json:"meetingProposed"`
	Scheduled       int `json:"scheduled"`
	Completed       int `json:"completed"`
	SQL             int `json:"sql"`
}

// SummaryRatios são as taxas do projeto inteiro, em porcentagem
type SummaryRatios struct {
	ConversionRate float64 `json:"conversionRate"`
	SQLRate        float64 `json:"sqlRate"`
	WinRate        float64 `json:"winRate"`
	MeetingRate    float64 `json:"meetingRate"`
}

type ColdCallFunnel struct {
	Rows   []FunnelRow    `json:"rows"`
	Counts ColdCallCounts `json:"counts"`
}

type ColdCallReportResponse struct {
	Project    *Project        `json:"project,omitempty"`
	Funnel     *ColdCallFunnel `json:"funnel"`
	Summary    SummaryRatios   `json:"summary"`
	ComputedAt time.Time       `json:"computedAt"`
	Cached     bool            `json:"cached"`
}
