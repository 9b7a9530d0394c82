package funnel

import (
	"sort"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

const (
	ToneInfo    = "info"
	ToneWarning = "warning"
	ToneSuccess = "success"
	ToneDanger  = "danger"
	ToneNeutral = "neutral"
)

const (
	fieldStatus     = "status"
	fieldCallStatus = "callStatus"
	fieldOutcome    = "outcome"
)

type StatusStyle struct {
	Label string
	Tone  string
}

var statusStyles = map[string]StatusStyle{
	domain.StatusCIP:              {Label: "Conversation in Progress", Tone: ToneInfo},
	domain.StatusMeetingProposed:  {Label: "Meeting Proposed", Tone: ToneWarning},
	domain.StatusMeetingScheduled: {Label: "Meeting Scheduled", Tone: ToneSuccess},
	domain.StatusMeetingCompleted: {Label: "Meeting Completed", Tone: ToneSuccess},
}

var callStatusStyles = map[string]StatusStyle{
	domain.CallStatusInterested:    {Label: "Interested", Tone: ToneSuccess},
	domain.CallStatusDetailsShared: {Label: "Details Shared", Tone: ToneInfo},
	domain.CallStatusDemoBooked:    {Label: "Demo Booked", Tone: ToneSuccess},
	domain.CallStatusDemoCompleted: {Label: "Demo Completed", Tone: ToneSuccess},
	domain.CallStatusCallBack:      {Label: "Call Back", Tone: ToneWarning},
	domain.CallStatusFuture:        {Label: "Future", Tone: ToneWarning},
	"Not Interested":               {Label: "Not Interested", Tone: ToneDanger},
	"No Answer":                    {Label: "No Answer", Tone: ToneNeutral},
}

var outcomeStyles = map[string]StatusStyle{
	"Positive": {Label: "Positive", Tone: ToneSuccess},
	"Neutral":  {Label: "Neutral", Tone: ToneNeutral},
	"Negative": {Label: "Negative", Tone: ToneDanger},
}

// DescribeStatus retorna o rótulo e o estilo de um valor de status. Valores desconhecidos
// recebem o estilo genérico com o próprio valor como rótulo.
func DescribeStatus(field, value string) StatusStyle {
	var styles map[string]StatusStyle
	switch field {
	case fieldStatus:
		styles = statusStyles
	case fieldCallStatus:
		styles = callStatusStyles
	case fieldOutcome:
		styles = outcomeStyles
	}

	if style, ok := styles[value]; ok {
		return style
	}

	return fallbackStyle(value)
}

func fallbackStyle(value string) StatusStyle {
	if value == "" {
		return StatusStyle{Label: "Unknown", Tone: ToneNeutral}
	}
	return StatusStyle{Label: value, Tone: ToneNeutral}
}

// StatusBreakdown conta os valores de status, callStatus e outcome das atividades
func StatusBreakdown(activities []*domain.Activity) []domain.StatusCount {
	type key struct {
		field string
		value string
	}

	counts := make(map[key]int)
	for _, activity := range activities {
		if activity == nil {
			continue
		}

		if activity.Status != "" {
			counts[key{fieldStatus, activity.Status}]++
		}
		if activity.CallStatus != "" {
			counts[key{fieldCallStatus, activity.CallStatus}]++
		}
		if activity.Outcome != "" {
			counts[key{fieldOutcome, activity.Outcome}]++
		}
	}

	breakdown := make([]domain.StatusCount, 0, len(counts))
	for k, count := range counts {
		style := DescribeStatus(k.field, k.value)
		breakdown = append(breakdown, domain.StatusCount{
			Field: k.field,
			Value: k.value,
			Label: style.Label,
			Tone:  style.Tone,
			Count: count,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Field != breakdown[j].Field {
			return breakdown[i].Field < breakdown[j].Field
		}
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Value < breakdown[j].Value
	})

	return breakdown
}
