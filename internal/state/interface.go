package state

import (
	"io"
	"time"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// RunStore handles run history persistence.
type RunStore interface {
	SaveRun(request string, c models.Classification, items []models.TaskItem) (string, error)
	GetRun(id string) (*Run, error)
	ListRuns(limit int) ([]Run, error)
	DeleteRun(id string) error
	PurgeRuns(olderThan time.Duration) (int64, error)
	CategoryStats() ([]CategoryCount, error)
}

// Migrator handles database schema migrations.
type Migrator interface {
	// Migrate applies all pending schema migrations.
	Migrate() error
}

// HistoryStore is the full history backend used by the CLI.
type HistoryStore interface {
	io.Closer
	Migrator
	RunStore
}

// Compile-time verification that DB implements all interfaces.
var (
	_ HistoryStore = (*DB)(nil)
	_ RunStore     = (*DB)(nil)
	_ Migrator     = (*DB)(nil)
)
