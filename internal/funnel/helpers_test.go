package funnel

import (
	"time"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse(time.DateOnly, value)
		if err != nil {
			panic(err)
		}
	}
	return &t
}

func linkedin(id, contactID, createdAt string) *domain.Activity {
	return &domain.Activity{
		ID:        id,
		Type:      domain.ActivityTypeLinkedIn,
		ContactID: contactID,
		ProjectID: "PRJ001",
		CreatedAt: ts(createdAt),
	}
}

func call(id, contactID, createdAt string) *domain.Activity {
	return &domain.Activity{
		ID:        id,
		Type:      domain.ActivityTypeCall,
		ContactID: contactID,
		ProjectID: "PRJ001",
		CreatedAt: ts(createdAt),
	}
}

func contact(id, createdAt string) *domain.Contact {
	return &domain.Contact{
		ID:        id,
		Name:      "Contato " + id,
		CreatedAt: ts(createdAt),
	}
}
