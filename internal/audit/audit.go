// Package audit keeps a sqlite-backed trail of admin mutations. Recording is
// best effort: a failed insert is logged and never fails the request that
// triggered it.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/meridianlaw/cms/internal/db"
	"github.com/meridianlaw/cms/internal/models"
	"github.com/meridianlaw/cms/pkg/repository"
)

type Log struct {
	conn   *db.DB
	logger *slog.Logger
}

var _ repository.AuditRepo = (*Log)(nil)

func New(conn *db.DB, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	return &Log{conn: conn, logger: logger}
}

func (l *Log) Record(ctx context.Context, actor, action, entityType, entityID string) error {
	_, err := l.conn.Exec(ctx,
		`INSERT INTO audit_log (actor, action, entity_type, entity_id, created) VALUES (?, ?, ?, ?, ?)`,
		actor, action, entityType, entityID, time.Now().UTC().UnixMilli())
	if err != nil {
		l.logger.Error("audit record failed",
			slog.String("action", action),
			slog.String("entity_type", entityType),
			slog.Any("err", err))

		return fmt.Errorf("record audit entry: %w", err)
	}

	return nil
}

// ListAudit returns entries newest first.
func (l *Log) ListAudit(ctx context.Context, limit, offset int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := l.conn.Query(ctx,
		`SELECT id, actor, action, entity_type, entity_id, created FROM audit_log ORDER BY created DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var out []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.EntityType, &e.EntityID, &e.Created); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
