package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvforge/pkg/document"
)

// DocumentRepository хранит резюме в одной таблице:
// точечные чтения и записи по первичному ключу, без вторичных индексов.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) (*DocumentRepository, error) {
	r := &DocumentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DocumentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resume_documents (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	data JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *DocumentRepository) Create(ctx context.Context, d document.Document) error {
	raw, err := json.Marshal(document.Normalize(d.Data))
	if err != nil {
		return fmt.Errorf("marshal document data: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resume_documents (id, owner_id, data, updated_at)
VALUES ($1, $2, $3, $4)
`, d.ID, d.OwnerID, raw, d.UpdatedAt)
	return err
}

func (r *DocumentRepository) Get(ctx context.Context, id uuid.UUID) (document.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, data, updated_at FROM resume_documents WHERE id = $1
`, id)
	return scanDocument(row)
}

// Save пишет data, только если ownerID совпадает с владельцем строки.
// Проверка владельца — предусловие: при её провале запись не меняется.
func (r *DocumentRepository) Save(ctx context.Context, id, ownerID uuid.UUID, data document.Data) (document.Document, error) {
	raw, err := json.Marshal(document.Normalize(data))
	if err != nil {
		return document.Document{}, fmt.Errorf("marshal document data: %w", err)
	}
	now := time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
UPDATE resume_documents SET data = $3, updated_at = $4
WHERE id = $1 AND owner_id = $2
`, id, ownerID, raw, now)
	if err != nil {
		return document.Document{}, err
	}
	if tag.RowsAffected() == 0 {
		// Различаем отсутствующий документ и чужого владельца.
		var storedOwner uuid.UUID
		err := r.pool.QueryRow(ctx, `
SELECT owner_id FROM resume_documents WHERE id = $1
`, id).Scan(&storedOwner)
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrNotFound
		}
		if err != nil {
			return document.Document{}, err
		}
		return document.Document{}, document.ErrForbidden
	}
	return document.Document{ID: id, OwnerID: ownerID, Data: document.Normalize(data), UpdatedAt: now}, nil
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]document.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, data, updated_at
FROM resume_documents WHERE owner_id = $3
ORDER BY updated_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

func (r *DocumentRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM resume_documents WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	var raw []byte
	var updated time.Time
	if err := row.Scan(&d.ID, &d.OwnerID, &raw, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrNotFound
		}
		return document.Document{}, err
	}
	if err := json.Unmarshal(raw, &d.Data); err != nil {
		return document.Document{}, fmt.Errorf("unmarshal document data: %w", err)
	}
	// Неизвестные или отсутствующие секции из старых записей не должны
	// ломать рендер: содержимое всегда нормализуется при чтении.
	d.Data = document.Normalize(d.Data)
	d.UpdatedAt = updated.UTC()
	return d, nil
}
