package model

import (
	"encoding/json"
	"time"
)

// ReportRecord indexes an archived analysis.
// Payload carries the serialized Analysis as stored in object storage.
type ReportRecord struct {
	ID          string          `json:"id"`
	FileName    string          `json:"file_name"`
	TargetRole  string          `json:"target_role"`
	TotalScore  int             `json:"total_score"`
	StoragePath string          `json:"storage_path"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}
