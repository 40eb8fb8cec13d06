package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"atscv/internal/model"
	"atscv/internal/repository"
	"atscv/internal/storage"
)

// ErrStoreRequired is returned by NewReportArchive without a store.
var ErrStoreRequired = errors.New("report store is required")

const (
	reportTimeLayout = "2006-01-02T15:04:05.000Z"
	reportIDLen      = 8
)

// ReportArchive writes analyses as JSON objects and optionally indexes them.
type ReportArchive struct {
	store storage.Storage
	repo  repository.ReportRepository
}

// NewReportArchive builds an archive over store. repo may be nil when no index is configured.
func NewReportArchive(store storage.Storage, repo repository.ReportRepository) (*ReportArchive, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &ReportArchive{store: store, repo: repo}, nil
}

// ReportKey names the artifact of an analysis created at a.CreatedAt.
// The leading characters of a.ID follow the timestamp so that analyses
// finishing within the same millisecond get distinct keys.
func ReportKey(a *model.Analysis) string {
	ts := a.CreatedAt.UTC().Format(reportTimeLayout)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	if id := strings.ReplaceAll(a.ID, "-", ""); id != "" {
		ts += "-" + id[:min(len(id), reportIDLen)]
	}
	return "analisis-" + ts + ".json"
}

// Save uploads the report, then inserts its index row.
// The uploaded object is deleted when the insert fails.
func (r *ReportArchive) Save(ctx context.Context, a *model.Analysis) (string, error) {
	payload, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	key := ReportKey(a)
	obj, err := r.store.Put(ctx, key, bytes.NewReader(payload), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"original-filename": a.DocumentInfo.FileName,
			"target-role":       a.DocumentInfo.TargetRole,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	location := obj.Location
	if location == "" {
		location = obj.Key
	}
	if r.repo == nil {
		return location, nil
	}

	_, err = r.repo.Create(ctx, &model.ReportRecord{
		ID:          a.ID,
		FileName:    a.DocumentInfo.FileName,
		TargetRole:  a.DocumentInfo.TargetRole,
		TotalScore:  a.ATSScores.Total,
		StoragePath: obj.Key,
		Payload:     payload,
		CreatedAt:   a.CreatedAt,
	})
	if err != nil {
		if delErr := r.store.Delete(ctx, obj.Key); delErr != nil {
			return "", fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return "", fmt.Errorf("db save failed: %w", err)
	}
	return location, nil
}
