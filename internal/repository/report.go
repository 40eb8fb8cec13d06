// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres).
package repository

import (
	"context"

	"atscv/internal/model"
)

// ReportRepository indexes archived analysis reports using SQL queries only.
// The index is write-only: the service never reads reports back.
type ReportRepository interface {
	// Create inserts a report record and returns it as stored.
	Create(ctx context.Context, rec *model.ReportRecord) (*model.ReportRecord, error)
}
