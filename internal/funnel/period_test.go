package funnel

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name     string
		period   domain.Period
		expected string
	}{
		{name: "Mês", period: domain.Period{Year: 2024, Month: time.March}, expected: "Mar '24"},
		{name: "Mês com ano de um dígito", period: domain.Period{Year: 2005, Month: time.December}, expected: "Dec '05"},
		{name: "Ano", period: domain.Period{Year: 2024}, expected: "2024"},
		{name: "Ano com menos de quatro dígitos", period: domain.Period{Year: 999}, expected: "0999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.period.Key())
		})
	}
}

func TestCollectPeriods(t *testing.T) {
	tests := []struct {
		name       string
		activities []*domain.Activity
		contacts   []*domain.Contact
		mode       domain.ViewMode
		expected   []string
	}{
		{
			name: "Virada de ano - ordem de calendário e não alfabética",
			activities: []*domain.Activity{
				linkedin("A1", "C1", "2024-01-15"),
				linkedin("A2", "C1", "2023-12-20"),
			},
			mode:     domain.ViewModeMonth,
			expected: []string{"Dec '23", "Jan '24"},
		},
		{
			name: "União de atividades e contatos sem duplicados",
			activities: []*domain.Activity{
				linkedin("A1", "C1", "2024-03-01"),
				linkedin("A2", "C1", "2024-03-20"),
			},
			contacts: []*domain.Contact{
				contact("C1", "2024-02-10"),
				contact("C2", "2024-03-05"),
			},
			mode:     domain.ViewModeMonth,
			expected: []string{"Feb '24", "Mar '24"},
		},
		{
			name: "Modo anual ordenado numericamente",
			activities: []*domain.Activity{
				linkedin("A1", "C1", "2025-06-01"),
				linkedin("A2", "C1", "2023-01-01"),
			},
			contacts: []*domain.Contact{contact("C1", "2024-07-07")},
			mode:     domain.ViewModeYear,
			expected: []string{"2023", "2024", "2025"},
		},
		{
			name: "Registros sem data são ignorados",
			activities: []*domain.Activity{
				{ID: "A1", Type: domain.ActivityTypeLinkedIn, ContactID: "C1"},
				nil,
			},
			contacts: []*domain.Contact{{ID: "C1"}},
			mode:     domain.ViewModeMonth,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := CollectPeriods(tt.activities, tt.contacts, tt.mode, time.UTC)
			assert.Equal(t, tt.expected, Keys(periods))
		})
	}
}

func TestSortPeriods_LexicographicOrderWouldBeWrong(t *testing.T) {
	periods := []domain.Period{
		{Year: 2024, Month: time.January},
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.April},
		{Year: 2023, Month: time.August},
	}

	SortPeriods(periods)
	keys := Keys(periods)
	assert.Equal(t, []string{"Aug '23", "Dec '23", "Jan '24", "Apr '24"}, keys)

	lexicographic := append([]string(nil), keys...)
	sort.Strings(lexicographic)
	assert.NotEqual(t, keys, lexicographic)
}

func TestPeriodOf_UsesLocation(t *testing.T) {
	instant := time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "Jan '24", PeriodOf(instant, domain.ViewModeMonth, time.UTC).Key())
	assert.Equal(t, "Feb '24", PeriodOf(instant, domain.ViewModeMonth, time.FixedZone("UTC+9", 9*3600)).Key())

	newYear := time.Date(2023, time.December, 31, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024", PeriodOf(newYear, domain.ViewModeYear, time.FixedZone("UTC+3", 3*3600)).Key())
}

func TestParsePeriodKey(t *testing.T) {
	period, err := ParsePeriodKey("Mar '24", domain.ViewModeMonth)
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Year: 2024, Month: time.March}, period)

	period, err = ParsePeriodKey("2023", domain.ViewModeYear)
	require.NoError(t, err)
	assert.Equal(t, domain.Period{Year: 2023}, period)

	_, err = ParsePeriodKey("03-2024", domain.ViewModeMonth)
	assert.Error(t, err)

	_, err = ParsePeriodKey("24", domain.ViewModeYear)
	assert.Error(t, err)

	early := domain.Period{Year: 999}
	period, err = ParsePeriodKey(early.Key(), domain.ViewModeYear)
	require.NoError(t, err)
	assert.Equal(t, early, period)
}

func TestParseViewMode(t *testing.T) {
	mode, err := domain.ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewModeMonth, mode)

	mode, err = domain.ParseViewMode(" YEAR ")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewModeYear, mode)

	_, err = domain.ParseViewMode("week")
	assert.ErrorIs(t, err, domain.ErrInvalidViewMode)
}
