package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveDocument stores a rendered document and returns its ID
func (db *DB) SaveDocument(ctx context.Context, input DocumentInput) (uuid.UUID, error) {
	if len(input.PDF) == 0 {
		return uuid.Nil, errors.New("document has no PDF bytes")
	}

	traceJSON, err := json.Marshal(input.Trace)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal trace: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO documents (id, name, content, pdf, trace, final_y)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, input.Name, input.Content, input.PDF, traceJSON, input.FinalY,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return id, nil
}

// GetDocument retrieves a document by ID. Returns nil if it does not exist.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	var d Document
	var traceJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, content, pdf, trace, final_y, created_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Content, &d.PDF, &traceJSON, &d.FinalY, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if len(traceJSON) > 0 {
		if err := json.Unmarshal(traceJSON, &d.Trace); err != nil {
			return nil, fmt.Errorf("failed to unmarshal trace: %w", err)
		}
	}
	return &d, nil
}

// ListDocuments retrieves the most recent documents, newest first
func (db *DB) ListDocuments(ctx context.Context, limit int) ([]DocumentSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, octet_length(pdf), created_at
		 FROM documents ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentSummary
	for rows.Next() {
		var s DocumentSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.SizeBytes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument deletes a document by ID. It reports false when no such document exists.
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
