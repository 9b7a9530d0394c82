package domain

import "time"

// Contact representa um prospect de um projeto
type Contact struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Company     string     `json:"company,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	LinkedInURL string     `json:"linkedInUrl,omitempty"`
	CreatedAt   *time.Time `json:"createdAt"`
}
