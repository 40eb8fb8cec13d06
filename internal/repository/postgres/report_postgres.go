package postgres

import (
	"context"
	"database/sql"

	"atscv/internal/model"
	"atscv/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// Create inserts a report row and returns the stored record.
func (r *ReportPostgres) Create(ctx context.Context, rec *model.ReportRecord) (*model.ReportRecord, error) {
	const q = `
		INSERT INTO analysis_reports (id, file_name, target_role, total_score, storage_path, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, file_name, target_role, total_score, storage_path, payload, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.FileName,
		rec.TargetRole,
		rec.TotalScore,
		rec.StoragePath,
		[]byte(rec.Payload),
		rec.CreatedAt,
	)
	var (
		out     model.ReportRecord
		payload []byte
	)
	if err := row.Scan(
		&out.ID,
		&out.FileName,
		&out.TargetRole,
		&out.TotalScore,
		&out.StoragePath,
		&payload,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	out.Payload = payload
	return &out, nil
}
