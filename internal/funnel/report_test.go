package funnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

func TestComputeReport_LinkedInStatusByMonth(t *testing.T) {
	cip := linkedin("A1", "CA", "2024-01-05")
	cip.Status = domain.StatusCIP

	scheduled := linkedin("A2", "CA", "2024-02-10")
	scheduled.Status = domain.StatusMeetingScheduled

	report := ComputeReport([]*domain.Activity{scheduled, cip}, nil, domain.ViewModeMonth)

	require.Equal(t, []string{"Jan '24", "Feb '24"}, report.Periods)
	assert.Equal(t, 1, report.Metrics["Jan '24"].ConversationsInProgress)
	assert.Equal(t, 0, report.Metrics["Jan '24"].MeetingScheduled)
	assert.Equal(t, 1, report.Metrics["Feb '24"].MeetingScheduled)
	assert.Equal(t, 0, report.Metrics["Feb '24"].ConversationsInProgress)
}

func TestComputeReport_LinkedInCounters(t *testing.T) {
	requestSent := linkedin("A1", "C1", "2024-03-01")
	requestSent.LnRequestSent = domain.LnRequestYes
	requestSent.Connected = domain.ConnectedYes

	existing := linkedin("A2", "C2", "2024-03-02")
	existing.LnRequestSent = domain.LnRequestExistingConnect
	existing.Status = domain.StatusMeetingProposed

	notSent := linkedin("A3", "C3", "2024-03-03")
	notSent.LnRequestSent = domain.LnRequestNo
	notSent.Connected = domain.ConnectedNo
	notSent.Status = domain.StatusMeetingCompleted

	unknown := linkedin("A4", "C4", "2024-03-04")
	unknown.LnRequestSent = "Pending"
	unknown.Status = "Ghosted"

	// Atividades de outros canais não entram nos contadores de LinkedIn
	email := &domain.Activity{
		ID:            "A5",
		Type:          domain.ActivityTypeEmail,
		ContactID:     "C5",
		CreatedAt:     ts("2024-03-05"),
		LnRequestSent: domain.LnRequestYes,
		Status:        domain.StatusCIP,
	}

	report := ComputeReport([]*domain.Activity{requestSent, existing, notSent, unknown, email}, nil, domain.ViewModeMonth)

	require.Equal(t, []string{"Mar '24"}, report.Periods)
	assert.Equal(t, &domain.MetricRow{
		ConnectionRequestSent: 1,
		ExistingConnection:    1,
		ConnectionAccepted:    1,
		MeetingProposed:       1,
		MeetingCompleted:      1,
	}, report.Metrics["Mar '24"])
}

func TestComputeReport_ContactsOnly(t *testing.T) {
	contacts := []*domain.Contact{
		contact("C1", "2024-05-01"),
		contact("C2", "2024-05-15"),
		contact("C3", "2024-05-31T22:00:00Z"),
	}

	report := ComputeReport(nil, contacts, domain.ViewModeMonth)

	require.Equal(t, []string{"May '24"}, report.Periods)
	assert.Equal(t, &domain.MetricRow{DataResearch: 3}, report.Metrics["May '24"])
}

func TestComputeReport_PeriodWithOnlyContactsIsKept(t *testing.T) {
	activity := linkedin("A1", "C1", "2024-02-01")
	activity.Status = domain.StatusCIP

	report := ComputeReport(
		[]*domain.Activity{activity},
		[]*domain.Contact{contact("C1", "2024-01-20")},
		domain.ViewModeMonth,
	)

	require.Equal(t, []string{"Jan '24", "Feb '24"}, report.Periods)
	assert.Equal(t, &domain.MetricRow{DataResearch: 1}, report.Metrics["Jan '24"])
	assert.Equal(t, &domain.MetricRow{ConversationsInProgress: 1}, report.Metrics["Feb '24"])
}

func TestComputeReport_FirstAndFollowupMessages(t *testing.T) {
	a1 := linkedin("A1", "CA", "2024-01-10")
	a1.ConversationNotes = "Olá, tudo bem?"
	a2 := linkedin("A2", "CA", "2024-02-01")
	a3 := linkedin("A3", "CA", "2024-03-03")
	a3.ConversationNotes = "Retomando contato"
	a4 := call("A4", "CA", "2024-03-05")
	a4.ConversationNotes = "Ligação de follow-up"

	b1 := linkedin("B1", "CB", "2024-02-20")
	b1.ConversationNotes = "Primeira mensagem"

	// Fora de ordem de propósito
	activities := []*domain.Activity{a4, b1, a3, a1, a2}

	report := ComputeReport(activities, nil, domain.ViewModeMonth)

	require.Equal(t, []string{"Jan '24", "Feb '24", "Mar '24"}, report.Periods)
	assert.Equal(t, 1, report.Metrics["Jan '24"].FirstMessageSent)
	assert.Equal(t, 0, report.Metrics["Jan '24"].FollowupMessagesSent)
	assert.Equal(t, 1, report.Metrics["Feb '24"].FirstMessageSent)
	assert.Equal(t, 0, report.Metrics["Feb '24"].FollowupMessagesSent)
	assert.Equal(t, 0, report.Metrics["Mar '24"].FirstMessageSent)
	assert.Equal(t, 2, report.Metrics["Mar '24"].FollowupMessagesSent)
}

func TestComputeReport_MessagesNeverExceedNoteBearingActivities(t *testing.T) {
	base := time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC)

	activities := make([]*domain.Activity, 0)
	noteBearing := 0
	for i := 0; i < 40; i++ {
		createdAt := base.AddDate(0, 0, i*5)
		activity := &domain.Activity{
			ID:        "A" + string(rune('a'+i%26)),
			Type:      domain.ActivityTypeLinkedIn,
			ContactID: "C" + string(rune('a'+i%3)),
			CreatedAt: &createdAt,
		}
		if i%2 == 0 {
			activity.ConversationNotes = "mensagem"
			noteBearing++
		}
		activities = append(activities, activity)
	}

	report := ComputeReport(activities, nil, domain.ViewModeMonth)
	totals := report.Totals()

	assert.Equal(t, 3, totals.FirstMessageSent)
	assert.Equal(t, noteBearing, totals.FirstMessageSent+totals.FollowupMessagesSent)
}

func TestComputeReport_SkipsRecordsWithoutCreatedAt(t *testing.T) {
	withoutDate := &domain.Activity{
		ID:                "A1",
		Type:              domain.ActivityTypeLinkedIn,
		ContactID:         "C1",
		Status:            domain.StatusCIP,
		ConversationNotes: "sem data",
	}
	zeroDate := &domain.Activity{
		ID:        "A2",
		Type:      domain.ActivityTypeLinkedIn,
		ContactID: "C1",
		CreatedAt: &time.Time{},
		Status:    domain.StatusCIP,
	}

	report := ComputeReport(
		[]*domain.Activity{withoutDate, zeroDate, nil},
		[]*domain.Contact{{ID: "C1"}, nil},
		domain.ViewModeMonth,
	)

	assert.Empty(t, report.Periods)
	assert.Empty(t, report.Metrics)
}

func TestComputeReport_EmptyInput(t *testing.T) {
	report := ComputeReport(nil, nil, domain.ViewModeYear)

	require.NotNil(t, report)
	assert.Equal(t, domain.ViewModeYear, report.ViewMode)
	assert.NotNil(t, report.Periods)
	assert.Empty(t, report.Periods)
	assert.NotNil(t, report.Metrics)
	assert.Empty(t, report.Metrics)
}

func TestComputeReport_YearView(t *testing.T) {
	a1 := linkedin("A1", "C1", "2023-12-31")
	a1.Status = domain.StatusCIP
	a2 := linkedin("A2", "C1", "2024-01-01")
	a2.Status = domain.StatusCIP
	a3 := linkedin("A3", "C2", "2024-08-01")
	a3.Connected = domain.ConnectedYes

	report := ComputeReport([]*domain.Activity{a3, a2, a1}, []*domain.Contact{contact("C1", "2023-10-10")}, domain.ViewModeYear)

	require.Equal(t, []string{"2023", "2024"}, report.Periods)
	assert.Equal(t, &domain.MetricRow{DataResearch: 1, ConversationsInProgress: 1}, report.Metrics["2023"])
	assert.Equal(t, &domain.MetricRow{ConversationsInProgress: 1, ConnectionAccepted: 1}, report.Metrics["2024"])
}

func TestComputeReport_Idempotent(t *testing.T) {
	a1 := linkedin("A1", "C1", "2024-01-05")
	a1.Status = domain.StatusCIP
	a1.ConversationNotes = "oi"
	a2 := linkedin("A2", "C1", "2023-12-05")
	a2.LnRequestSent = domain.LnRequestYes
	a2.ConversationNotes = "primeira"

	activities := []*domain.Activity{a1, a2}
	contacts := []*domain.Contact{contact("C1", "2023-11-30")}

	first := ComputeReport(activities, contacts, domain.ViewModeMonth)
	second := ComputeReport(activities, contacts, domain.ViewModeMonth)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Nov '23", "Dec '23", "Jan '24"}, first.Periods)
}

func TestComputeReport_WithLocation(t *testing.T) {
	activity := linkedin("A1", "C1", "2024-01-31T23:30:00Z")
	activity.Status = domain.StatusCIP

	report := ComputeReport([]*domain.Activity{activity}, nil, domain.ViewModeMonth, WithLocation(time.FixedZone("UTC+9", 9*3600)))

	require.Equal(t, []string{"Feb '24"}, report.Periods)
	assert.Equal(t, 1, report.Metrics["Feb '24"].ConversationsInProgress)
}
