package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// ErrRunNotFound is returned when a run ID has no stored record.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded decomposition.
type Run struct {
	ID             string                `json:"id" yaml:"id"`
	Request        string                `json:"request" yaml:"request"`
	Classification models.Classification `json:"classification" yaml:"classification"`
	Items          []models.TaskItem     `json:"items" yaml:"items"`
	TotalTokens    int                   `json:"total_tokens" yaml:"total_tokens"`
	CreatedAt      time.Time             `json:"created_at" yaml:"created_at"`
}

// CategoryCount is the number of recorded items in a category.
type CategoryCount struct {
	Category models.Category `json:"category" yaml:"category"`
	Items    int             `json:"items" yaml:"items"`
	Tokens   int             `json:"tokens" yaml:"tokens"`
}

// SaveRun records a decomposition and returns its generated ID.
func (db *DB) SaveRun(request string, c models.Classification, items []models.TaskItem) (string, error) {
	classification, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal classification: %w", err)
	}
	if items == nil {
		items = []models.TaskItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal items: %w", err)
	}

	total := 0
	for _, item := range items {
		total += item.EstimatedTokens
	}

	id := uuid.NewString()
	createdAt := formatTime(db.now())

	err = db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO runs (id, request, complexity, approach, classification, items, total_tokens, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, request, string(c.Complexity), c.Approach, string(classification), string(itemsJSON), total, createdAt); err != nil {
			return err
		}

		for i, item := range items {
			if _, err := tx.Exec(`
				INSERT INTO run_items (run_id, item_id, position, category, complexity, estimated_tokens)
				VALUES (?, ?, ?, ?, ?, ?)
			`, id, item.ID, i, string(item.Category), string(item.Complexity), item.EstimatedTokens); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

// GetRun retrieves a run by ID.
func (db *DB) GetRun(id string) (*Run, error) {
	row := db.QueryRow(`
		SELECT id, request, classification, items, total_tokens, created_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs first. A limit of zero or less
// returns every run.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.Query(`
		SELECT id, request, classification, items, total_tokens, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// DeleteRun deletes a run and its items.
func (db *DB) DeleteRun(id string) error {
	result, err := db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// PurgeRuns deletes runs older than the specified duration.
// Returns the number of runs deleted.
func (db *DB) PurgeRuns(olderThan time.Duration) (int64, error) {
	cutoff := formatTime(db.now().Add(-olderThan))

	result, err := db.Exec("DELETE FROM runs WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge runs: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return count, nil
}

// CategoryStats aggregates recorded items per category, busiest first.
func (db *DB) CategoryStats() ([]CategoryCount, error) {
	rows, err := db.Query(`
		SELECT category, COUNT(*), COALESCE(SUM(estimated_tokens), 0)
		FROM run_items GROUP BY category ORDER BY COUNT(*) DESC, category ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	defer rows.Close()

	var stats []CategoryCount
	for rows.Next() {
		var s CategoryCount
		var category string
		if err := rows.Scan(&category, &s.Items, &s.Tokens); err != nil {
			return nil, fmt.Errorf("scan category stats: %w", err)
		}
		s.Category = models.Category(category)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	var classification, items, createdAt string
	if err := row.Scan(&r.ID, &r.Request, &classification, &items, &r.TotalTokens, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(classification), &r.Classification); err != nil {
		return nil, fmt.Errorf("decode classification: %w", err)
	}
	if err := json.Unmarshal([]byte(items), &r.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	r.CreatedAt, _ = parseTime(createdAt)
	return &r, nil
}
