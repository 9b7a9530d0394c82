package crmdomain

import (
	"strings"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	LinkedInURL string    `json:"linkedinUrl"`
	CreatedAt   Timestamp `json:"createdAt"`
}

func (c Contact) ToDomain() *domain.Contact {
	return &domain.Contact{
		ID:          strings.TrimSpace(c.ID),
		Name:        strings.TrimSpace(c.Name),
		Company:     strings.TrimSpace(c.Company),
		Email:       strings.TrimSpace(c.Email),
		Phone:       strings.TrimSpace(c.Phone),
		LinkedInURL: strings.TrimSpace(c.LinkedInURL),
		CreatedAt:   c.CreatedAt.Time,
	}
}

func ContactsToDomain(contacts []Contact) []*domain.Contact {
	result := make([]*domain.Contact, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, contact.ToDomain())
	}
	return result
}
