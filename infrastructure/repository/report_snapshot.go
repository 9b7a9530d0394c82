package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/outreach-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/pkg/utils"
)

const (
	reportSnapshotsTable = "report_snapshots"
	reportSnapshotsAlias = "report_snapshots rs"
)

//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot.go -package=mocks
type ReportSnapshotRepository interface {
	GetLatest(projectID string, kind domain.SnapshotKind, viewMode domain.ViewMode) (*domain.ReportSnapshot, error)
	SaveOrUpdate(snapshot *domain.ReportSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) GetLatest(projectID string, kind domain.SnapshotKind, viewMode domain.ViewMode) (*domain.ReportSnapshot, error) {
	query, args, err := buildGetLatestQuery(projectID, kind, viewMode)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.ReportSnapshot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.ProjectID,
		&snapshot.Kind,
		&snapshot.ViewMode,
		&snapshot.Payload,
		&snapshot.Sequence,
		&snapshot.ComputedAt,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de relatório: %w", err)
	}

	return snapshot, nil
}

// SaveOrUpdate grava o snapshot do projeto. Um snapshot com sequência mais antiga que a já
// armazenada é descartado, assim o último cálculo iniciado sempre prevalece.
func (r *reportSnapshotRepository) SaveOrUpdate(snapshot *domain.ReportSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	query, args, err := buildUpsertQuery(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.Delete(reportSnapshotsTable).
		Where(squirrel.Lt{"computed_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func buildGetLatestQuery(projectID string, kind domain.SnapshotKind, viewMode domain.ViewMode) (string, []interface{}, error) {
	return squirrel.
		Select("rs.id, rs.project_id, rs.kind, rs.view_mode, rs.payload, rs.sequence, rs.computed_at, rs.created_at, rs.updated_at").
		From(reportSnapshotsAlias).
		Where(squirrel.Eq{
			"rs.project_id": projectID,
			"rs.kind":       string(kind),
			"rs.view_mode":  string(viewMode),
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildUpsertQuery(snapshot *domain.ReportSnapshot) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(reportSnapshotsTable).
		Columns("id", "project_id", "kind", "view_mode", "payload", "sequence", "computed_at").
		Values(
			snapshot.ID,
			snapshot.ProjectID,
			string(snapshot.Kind),
			string(snapshot.ViewMode),
			snapshot.Payload,
			snapshot.Sequence,
			snapshot.ComputedAt,
		).
		Suffix(`
			ON CONFLICT (project_id, kind, view_mode) DO UPDATE SET
				payload = EXCLUDED.payload,
				sequence = EXCLUDED.sequence,
				computed_at = EXCLUDED.computed_at,
				updated_at = NOW()
			WHERE report_snapshots.sequence <= EXCLUDED.sequence
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
