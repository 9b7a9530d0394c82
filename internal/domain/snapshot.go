package domain

import "time"

type SnapshotKind string

const (
	SnapshotKindReport   SnapshotKind = "report"
	SnapshotKindColdCall SnapshotKind = "cold_call"
)

// ReportSnapshot representa um relatório calculado armazenado no banco
type ReportSnapshot struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"project_id"`
	Kind       SnapshotKind `json:"kind"`
	ViewMode   ViewMode     `json:"view_mode"` // vazio para o funil de cold calling
	Payload    []byte       `json:"payload"`
	Sequence   int64        `json:"sequence"`
	ComputedAt time.Time    `json:"computed_at"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// IsFresh indica se o snapshot ainda pode ser servido sem recalcular
func (s *ReportSnapshot) IsFresh(ttl time.Duration, now time.Time) bool {
	if s == nil || ttl <= 0 {
		return false
	}
	return now.Sub(s.ComputedAt) < ttl
}
