package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"atscv/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var reportColumns = []string{"id", "file_name", "target_role", "total_score", "storage_path", "payload", "created_at"}

func TestReportPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rec := &model.ReportRecord{
		ID:          "report-uuid",
		FileName:    "Ana_Perez_CV.pdf",
		TargetRole:  "BACKEND_DEVELOPER",
		TotalScore:  72,
		StoragePath: "analisis-2024-06-01T10-00-00-000Z.json",
		Payload:     json.RawMessage(`{"id":"analysis-uuid"}`),
		CreatedAt:   now,
	}

	t.Run("inserted", func(t *testing.T) {
		rows := sqlmock.NewRows(reportColumns).
			AddRow(rec.ID, rec.FileName, rec.TargetRole, rec.TotalScore, rec.StoragePath, []byte(rec.Payload), rec.CreatedAt)

		mock.ExpectQuery("INSERT INTO analysis_reports").
			WithArgs(rec.ID, rec.FileName, rec.TargetRole, rec.TotalScore, rec.StoragePath, []byte(rec.Payload), rec.CreatedAt).
			WillReturnRows(rows)

		result, err := repo.Create(ctx, rec)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, rec.ID, result.ID)
		assert.Equal(t, 72, result.TotalScore)
		assert.JSONEq(t, `{"id":"analysis-uuid"}`, string(result.Payload))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO analysis_reports").
			WillReturnError(errors.New("connection reset"))

		result, err := repo.Create(ctx, rec)

		assert.Nil(t, result)
		assert.EqualError(t, err, "connection reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
