package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run is one archived pipeline execution.
type Run struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	RegionCount int       `db:"region_count" json:"region_count"`
	Registered  int64     `db:"registered" json:"registered"`
}

// Report is what one pipeline execution hands to the printer, the renderer
// and the viewer.
type Report struct {
	RunID       uuid.UUID      `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Results     []RegionResult `json:"results"`
}
