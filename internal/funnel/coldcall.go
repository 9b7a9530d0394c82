package funnel

import (
	"strings"
	"unicode/utf16"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

// Notas com mais caracteres que isso qualificam um contato "Interested" como SQL
const sqlNotesMinLength = 50

var (
	acceptedCallStatuses = map[string]struct{}{
		domain.CallStatusInterested:    {},
		domain.CallStatusDetailsShared: {},
		domain.CallStatusDemoBooked:    {},
	}

	cipCallStatuses = map[string]struct{}{
		domain.CallStatusInterested: {},
		domain.CallStatusCallBack:   {},
		domain.CallStatusFuture:     {},
	}

	// Heurística por texto livre no próximo passo, mantida como está
	meetingKeywords = []string{"meeting", "demo", "call"}
)

var stageLabels = map[domain.FunnelStage]string{
	domain.FunnelStageProspectData:    "Prospect Data",
	domain.FunnelStageCallSent:        "Calls Made",
	domain.FunnelStageAccepted:        "Accepted",
	domain.FunnelStageCIP:             "Conversations in Progress",
	domain.FunnelStageFollowups:       "Follow-ups",
	domain.FunnelStageMeetingProposed: "Meeting Proposed",
	domain.FunnelStageScheduled:       "Meeting Scheduled",
	domain.FunnelStageCompleted:       "Meeting Completed",
	domain.FunnelStageSQL:             "SQL",
}

type contactSet map[string]struct{}

func (s contactSet) add(id string) {
	s[id] = struct{}{}
}

// ComputeColdCallFunnel calcula o funil de cold calling do projeto inteiro. Cada etapa conta
// contatos distintos, então várias atividades do mesmo contato contam uma vez só.
func ComputeColdCallFunnel(activities []*domain.Activity, contacts []*domain.Contact) *domain.ColdCallFunnel {
	var (
		callSent        = contactSet{}
		accepted        = contactSet{}
		cip             = contactSet{}
		meetingProposed = contactSet{}
		scheduled       = contactSet{}
		completed       = contactSet{}
		sql             = contactSet{}
	)

	activityCount := make(map[string]int)
	notesCount := make(map[string]int)

	for _, activity := range activities {
		if activity == nil || activity.ContactID == "" {
			continue
		}

		id := activity.ContactID
		activityCount[id]++
		if strings.TrimSpace(activity.ConversationNotes) != "" {
			notesCount[id]++
		}

		if activity.HasCallDate() {
			callSent.add(id)
		}

		if _, ok := acceptedCallStatuses[activity.CallStatus]; ok {
			accepted.add(id)
		}

		if _, ok := cipCallStatuses[activity.CallStatus]; ok {
			cip.add(id)
		}

		if mentionsMeeting(activity.NextAction) {
			meetingProposed.add(id)
		}

		if activity.CallStatus == domain.CallStatusDemoBooked || activity.HasNextActionDate() {
			scheduled.add(id)
		}

		if activity.CallStatus == domain.CallStatusDemoCompleted {
			completed.add(id)
		}

		if isSQL(activity) {
			sql.add(id)
		}
	}

	followups := 0
	for id, total := range activityCount {
		if notesCount[id] > 1 || total > 1 {
			followups++
		}
	}

	counts := domain.ColdCallCounts{
		ProspectData:    countContacts(contacts),
		CallSent:        len(callSent),
		Accepted:        len(accepted),
		CIP:             len(cip),
		Followups:       followups,
		MeetingProposed: len(meetingProposed),
		Scheduled:       len(scheduled),
		Completed:       len(completed),
		SQL:             len(sql),
	}

	return &domain.ColdCallFunnel{
		Rows:   funnelRows(counts),
		Counts: counts,
	}
}

func mentionsMeeting(nextAction string) bool {
	text := strings.ToLower(nextAction)
	for _, keyword := range meetingKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func isSQL(activity *domain.Activity) bool {
	if activity.CallStatus == domain.CallStatusDemoCompleted {
		return true
	}

	return activity.CallStatus == domain.CallStatusInterested &&
		utf16Length(activity.ConversationNotes) > sqlNotesMinLength
}

// utf16Length mede o texto em unidades UTF-16: caracteres fora do BMP, como emojis, valem 2
func utf16Length(text string) int {
	length := 0
	for _, r := range text {
		length += utf16.RuneLen(r)
	}
	return length
}

func countContacts(contacts []*domain.Contact) int {
	total := 0
	for _, contact := range contacts {
		if contact != nil {
			total++
		}
	}
	return total
}

func funnelRows(counts domain.ColdCallCounts) []domain.FunnelRow {
	ordered := []struct {
		stage domain.FunnelStage
		count int
	}{
		{domain.FunnelStageProspectData, counts.ProspectData},
		{domain.FunnelStageCallSent, counts.CallSent},
		{domain.FunnelStageAccepted, counts.Accepted},
		{domain.FunnelStageCIP, counts.CIP},
		{domain.FunnelStageFollowups, counts.Followups},
		{domain.FunnelStageMeetingProposed, counts.MeetingProposed},
		{domain.FunnelStageScheduled, counts.Scheduled},
		{domain.FunnelStageCompleted, counts.Completed},
		{domain.FunnelStageSQL, counts.SQL},
	}

	rows := make([]domain.FunnelRow, 0, len(ordered))
	for _, item := range ordered {
		rows = append(rows, domain.FunnelRow{
			Stage: item.stage,
			Label: stageLabels[item.stage],
			Count: item.count,
		})
	}

	return rows
}
