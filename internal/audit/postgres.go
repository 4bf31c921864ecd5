package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// PostgresSink appends violations to a Postgres table.
type PostgresSink struct {
	Pool *pgxpool.Pool
}

func NewPostgresSink(ctx context.Context, connString string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("Failed to connect to database, Error: %w", err)
	}

	return &PostgresSink{Pool: pool}, nil
}

// EnsureSchema creates the violations table when it does not exist yet.
func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS guardrail_violations (
	  id BIGSERIAL PRIMARY KEY,
	  user_id TEXT NOT NULL,
	  reason TEXT NOT NULL,
	  occurred_at TIMESTAMPTZ NOT NULL
	)`

	if _, err := s.Pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("Failed to create violations table: %w", err)
	}
	return nil
}

func (s *PostgresSink) RecordViolation(ctx context.Context, userID string, violation models.Violation) error {
	query := `INSERT INTO guardrail_violations (user_id, reason, occurred_at) VALUES ($1, $2, $3)`

	if _, err := s.Pool.Exec(ctx, query, userID, violation.Reason, violation.At); err != nil {
		return fmt.Errorf("Failed to record violation for user %s: %w", userID, err)
	}
	return nil
}

func (s *PostgresSink) Close() {
	s.Pool.Close()
}
