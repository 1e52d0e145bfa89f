package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"smartcv/internal/types"
)

// ParsedCV is a stored extraction result
type ParsedCV struct {
	ID             uuid.UUID       `json:"id"`
	UserID         *uuid.UUID      `json:"user_id,omitempty"`
	SourceFilename string          `json:"source_filename"`
	Language       string          `json:"language"`
	Record         json.RawMessage `json:"record"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SaveParsedCV stores an extracted record and returns its ID
func (db *DB) SaveParsedCV(ctx context.Context, userID *uuid.UUID, sourceFilename string, rec *types.CVRecord) (uuid.UUID, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO parsed_cvs (user_id, source_filename, language, record)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, sourceFilename, string(rec.Language), payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save parsed cv: %w", err)
	}
	return id, nil
}

// GetParsedCV retrieves a stored record by ID, returns nil if not found
func (db *DB) GetParsedCV(ctx context.Context, id uuid.UUID) (*ParsedCV, error) {
	var p ParsedCV
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, source_filename, language, record, created_at
		 FROM parsed_cvs WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.UserID, &p.SourceFilename, &p.Language, &p.Record, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parsed cv: %w", err)
	}
	return &p, nil
}

// ListParsedCVs retrieves recent extractions for a user
func (db *DB) ListParsedCVs(ctx context.Context, userID uuid.UUID, limit int) ([]ParsedCV, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, source_filename, language, record, created_at
		 FROM parsed_cvs WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list parsed cvs: %w", err)
	}
	defer rows.Close()

	var cvs []ParsedCV
	for rows.Next() {
		var p ParsedCV
		if err := rows.Scan(&p.ID, &p.UserID, &p.SourceFilename, &p.Language, &p.Record, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan parsed cv: %w", err)
		}
		cvs = append(cvs, p)
	}
	return cvs, nil
}

// Render is a record of a produced DOCX artifact
type Render struct {
	ID         uuid.UUID  `json:"id"`
	ParsedCVID *uuid.UUID `json:"parsed_cv_id,omitempty"`
	Filename   string     `json:"filename"`
	SizeBytes  int        `json:"size_bytes"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SaveRender records a produced artifact and returns its ID
func (db *DB) SaveRender(ctx context.Context, parsedCVID *uuid.UUID, filename string, sizeBytes int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO renders (parsed_cv_id, filename, size_bytes)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		parsedCVID, filename, sizeBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save render: %w", err)
	}
	return id, nil
}

// ListRenders retrieves recent renders
func (db *DB) ListRenders(ctx context.Context, limit int) ([]Render, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, parsed_cv_id, filename, size_bytes, created_at
		 FROM renders ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.ParsedCVID, &r.Filename, &r.SizeBytes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		renders = append(renders, r)
	}
	return renders, nil
}
