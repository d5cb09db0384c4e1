package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Resume is one stored document with its ownership metadata.
type Resume struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Document  *types.Document
}

// ResumeSummary is one dashboard row.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateResume stores a new document seeded from one section payload
// and returns the stored row, canonical form included.
func (c *Client) CreateResume(ctx context.Context, userID uuid.UUID, payload types.SectionPayload) (*Resume, error) {
	doc := storedDocument()
	payload.ApplyTo(doc)
	Canonicalize(doc)

	id := uuid.New()
	title := Title(doc)
	encoded, err := encodeSections(doc)
	if err != nil {
		return nil, err
	}

	var createdAt, updatedAt time.Time
	err = c.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, user_id, title, sections)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		id, userID, title, encoded,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	doc.ID = id
	doc.CreatedAt = &createdAt
	return &Resume{
		ID:        id,
		UserID:    userID,
		Title:     title,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Document:  doc,
	}, nil
}

// GetResume fetches one document owned by the given user.
func (c *Client) GetResume(ctx context.Context, userID, id uuid.UUID) (*Resume, error) {
	row := c.pool.QueryRow(ctx,
		`SELECT title, sections, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return c.scanResume(row, id, userID)
}

// UpdateSection overwrites one section of a stored document and returns
// the canonical form of that section.
func (c *Client) UpdateSection(ctx context.Context, userID, id uuid.UUID, payload types.SectionPayload) (*types.SectionPayload, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var encoded []byte
	err = tx.QueryRow(ctx,
		`SELECT sections FROM resumes
		 WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, userID,
	).Scan(&encoded)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "resume", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume %s: %w", id, err)
	}

	doc := storedDocument()
	if err := json.Unmarshal(encoded, doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", id, err)
	}

	payload.ApplyTo(doc)
	Canonicalize(doc)

	updated, err := encodeSections(doc)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET sections = $1, title = $2, updated_at = now()
		 WHERE id = $3 AND user_id = $4`,
		updated, Title(doc), id, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to update resume %s: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resume update: %w", err)
	}

	canonical := types.PayloadFrom(doc, payload.Section)
	return &canonical, nil
}

// DeleteResume removes one document owned by the given user.
func (c *Client) DeleteResume(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := c.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "resume", ID: id.String()}
	}
	return nil
}

// ListResumes returns the user's documents, newest first.
func (c *Client) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT id, title, created_at FROM resumes
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	summaries := []ResumeSummary{}
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resume rows: %w", err)
	}
	return summaries, nil
}

func (c *Client) scanResume(row pgx.Row, id, userID uuid.UUID) (*Resume, error) {
	var (
		title     string
		encoded   []byte
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&title, &encoded, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "resume", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume %s: %w", id, err)
	}

	doc := storedDocument()
	if err := json.Unmarshal(encoded, doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", id, err)
	}
	doc.ID = id
	doc.CreatedAt = &createdAt

	return &Resume{
		ID:        id,
		UserID:    userID,
		Title:     title,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Document:  doc,
	}, nil
}

// encodeSections marshals a canonical document and checks it against
// the document schema before it is written. A schema failure here means
// a canonicalization bug, not bad user input.
func encodeSections(doc *types.Document) ([]byte, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume sections: %w", err)
	}
	if err := schemas.ValidateDocumentJSON(encoded); err != nil {
		return nil, fmt.Errorf("canonical document failed schema check: %w", err)
	}
	return encoded, nil
}

// storedDocument is the persistence-side shape: every list present and
// empty, no editable placeholders.
func storedDocument() *types.Document {
	return &types.Document{
		Education:      []types.Education{},
		Experience:     []types.Experience{},
		Skills:         []string{},
		Projects:       []types.Project{},
		Certifications: []types.Certification{},
		Interests:      []string{},
		Languages:      []types.Language{},
	}
}
