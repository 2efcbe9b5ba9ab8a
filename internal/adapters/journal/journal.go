package journal

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"shopify-sync/internal/logging"
)

// Entry is one reconciliation outcome row.
type Entry struct {
	SyncID  string
	SKU     string
	Outcome string
	Written []string
	Detail  string
}

// Service persists reconciliation outcomes. Recording is best-effort:
// a journal failure is logged and never fails the sync.
type Service interface {
	Record(ctx context.Context, entry Entry)
}

type MySQLJournal struct {
	db     *sql.DB
	logger logging.LoggerService
}

func NewMySQL(db *sql.DB, logger logging.LoggerService) *MySQLJournal {
	return &MySQLJournal{
		db:     db,
		logger: logger,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS sync_journal (
	id         BIGINT AUTO_INCREMENT PRIMARY KEY,
	sync_id    VARCHAR(36)  NOT NULL,
	sku        VARCHAR(255) NOT NULL,
	outcome    VARCHAR(32)  NOT NULL,
	written    TEXT         NOT NULL,
	detail     TEXT         NOT NULL,
	created_at DATETIME     NOT NULL,
	INDEX idx_sync_journal_sku (sku)
)`

func (j *MySQLJournal) EnsureSchema(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx, schema)
	return err
}

func (j *MySQLJournal) Record(ctx context.Context, entry Entry) {
	const insert = `
INSERT INTO sync_journal (sync_id, sku, outcome, written, detail, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

	_, err := j.db.ExecContext(ctx, insert,
		entry.SyncID,
		entry.SKU,
		entry.Outcome,
		strings.Join(entry.Written, ","),
		entry.Detail,
		time.Now().UTC(),
	)
	if err != nil && j.logger != nil {
		j.logger.LogError("journal record failed", err)
	}
}
