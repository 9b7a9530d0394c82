package funnel

import (
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/pkg/utils"
)

// ComputeSummary calcula as taxas do projeto. Denominador zero resulta em 0.
func ComputeSummary(counts domain.ColdCallCounts, analytics *domain.ProjectAnalytics) domain.SummaryRatios {
	ratios := domain.SummaryRatios{
		ConversionRate: percentage(counts.Completed, counts.ProspectData),
		SQLRate:        percentage(counts.SQL, counts.ProspectData),
	}

	if analytics != nil {
		ratios.MeetingRate = percentage(analytics.MeetingsBooked, analytics.TotalProspects)
		ratios.WinRate = percentage(analytics.DealsWon, analytics.MeetingsBooked)
	}

	return ratios
}

func percentage(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(numerator) / float64(denominator) * 100)
}
