package funnel

import (
	"sort"
	"time"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

// ComputeReport agrupa atividades e contatos por período e calcula as métricas do funil de LinkedIn.
// O resultado depende apenas das entradas: chamar duas vezes com os mesmos dados produz o mesmo relatório.
func ComputeReport(activities []*domain.Activity, contacts []*domain.Contact, mode domain.ViewMode, opts ...Option) *domain.Report {
	o := newOptions(opts)

	periods := CollectPeriods(activities, contacts, mode, o.location)

	report := &domain.Report{
		ViewMode: mode,
		Periods:  Keys(periods),
		Metrics:  make(map[string]*domain.MetricRow, len(periods)),
	}

	for _, key := range report.Periods {
		report.Metrics[key] = &domain.MetricRow{}
	}

	rowFor := func(t time.Time) *domain.MetricRow {
		return report.Metrics[PeriodOf(t, mode, o.location).Key()]
	}

	for _, contact := range contacts {
		if contact == nil || !hasTime(contact.CreatedAt) {
			continue
		}
		rowFor(*contact.CreatedAt).DataResearch++
	}

	for _, activity := range activities {
		if activity == nil || !hasTime(activity.CreatedAt) || !activity.IsLinkedIn() {
			continue
		}
		countLinkedIn(rowFor(*activity.CreatedAt), activity)
	}

	countMessages(activities, rowFor)

	return report
}

func countLinkedIn(row *domain.MetricRow, activity *domain.Activity) {
	switch activity.LnRequestSent {
	case domain.LnRequestYes:
		row.ConnectionRequestSent++
	case domain.LnRequestExistingConnect:
		row.ExistingConnection++
	}

	if activity.Connected == domain.ConnectedYes {
		row.ConnectionAccepted++
	}

	switch activity.Status {
	case domain.StatusCIP:
		row.ConversationsInProgress++
	case domain.StatusMeetingProposed:
		row.MeetingProposed++
	case domain.StatusMeetingScheduled:
		row.MeetingScheduled++
	case domain.StatusMeetingCompleted:
		row.MeetingCompleted++
	}
}

// countMessages percorre as atividades de cada contato em ordem cronológica: a primeira com
// anotações conta como primeira mensagem e as seguintes como follow-up, cada uma no seu próprio período.
func countMessages(activities []*domain.Activity, rowFor func(time.Time) *domain.MetricRow) {
	byContact := groupByContact(activities)

	for _, sequence := range byContact {
		firstSent := false
		for _, activity := range sequence {
			if !activity.HasNotes() {
				continue
			}

			row := rowFor(*activity.CreatedAt)
			if !firstSent {
				row.FirstMessageSent++
				firstSent = true
				continue
			}
			row.FollowupMessagesSent++
		}
	}
}

func groupByContact(activities []*domain.Activity) map[string][]*domain.Activity {
	byContact := make(map[string][]*domain.Activity)

	for _, activity := range activities {
		if activity == nil || activity.ContactID == "" || !hasTime(activity.CreatedAt) {
			continue
		}
		byContact[activity.ContactID] = append(byContact[activity.ContactID], activity)
	}

	for _, sequence := range byContact {
		sort.SliceStable(sequence, func(i, j int) bool {
			return sequence[i].CreatedAt.Before(*sequence[j].CreatedAt)
		})
	}

	return byContact
}
