package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RequestRecord captures the metadata of a single mentor service call.
// Message content is deliberately not recorded; the conversation transcript
// is never persisted.
type RequestRecord struct {
	ID           int
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// RequestLog records mentor service calls for inspection via `sysx llm list`.
type RequestLog interface {
	Append(ctx context.Context, rec RequestRecord) error
	Recent(ctx context.Context, limit int) ([]RequestRecord, error)
}

type requestLog struct {
	db *sql.DB
}

func (l *requestLog) Append(ctx context.Context, rec RequestRecord) error {
	success := 0
	if rec.Success {
		success = 1
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (session_id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, success, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append request record: %w", err)
	}
	return nil
}

func (l *requestLog) Recent(ctx context.Context, limit int) ([]RequestRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, session_id, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message, created_at
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}
	defer rows.Close()

	var out []RequestRecord
	for rows.Next() {
		var rec RequestRecord
		var success int
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success, &rec.ErrorMessage, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request record: %w", err)
		}
		rec.Success = success != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return out, nil
}
