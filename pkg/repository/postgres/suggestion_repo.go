package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rperrot/recruteo/pkg/suggestion"
)

// SuggestionRepository — очередь заявок на ручную классификацию.
// Частичный уникальный индекс по (lower(original_title)) WHERE status='pending'
// делает FindOrCreatePending атомарным: дубликат невозможен даже под гонкой.
type SuggestionRepository struct {
	pool *pgxpool.Pool
}

func NewSuggestionRepository(pool *pgxpool.Pool) (*SuggestionRepository, error) {
	r := &SuggestionRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SuggestionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS pending_classifications (
	id UUID PRIMARY KEY,
	original_title TEXT NOT NULL,
	suggested_category TEXT NOT NULL,
	suggested_sub_category TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	created_by UUID,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS pending_classifications_open_title_uq
	ON pending_classifications (lower(original_title)) WHERE status = 'pending';
`)
	return err
}

const pendingColumns = `id, original_title, suggested_category, suggested_sub_category, status, created_by, created_at, updated_at`

func scanPending(row pgx.Row) (suggestion.Pending, error) {
	var p suggestion.Pending
	var status string
	err := row.Scan(&p.ID, &p.OriginalTitle, &p.SuggestedCategory, &p.SuggestedSubCategory,
		&status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return suggestion.Pending{}, err
	}
	p.Status = suggestion.Status(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *SuggestionRepository) FindOrCreatePending(ctx context.Context, p suggestion.Pending) (suggestion.Pending, bool, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, `
INSERT INTO pending_classifications
	(id, original_title, suggested_category, suggested_sub_category, status, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (lower(original_title)) WHERE status = 'pending' DO NOTHING
RETURNING `+pendingColumns+`
`, p.ID, p.OriginalTitle, p.SuggestedCategory, p.SuggestedSubCategory, string(suggestion.StatusPending), p.CreatedBy, now)

	created, err := scanPending(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return suggestion.Pending{}, false, err
	}

	// Конфликт: pending-строка с этим заголовком уже есть, возвращаем её.
	row = r.pool.QueryRow(ctx, `
SELECT `+pendingColumns+`
FROM pending_classifications
WHERE lower(original_title) = lower($1) AND status = 'pending'
`, p.OriginalTitle)
	existing, err := scanPending(row)
	if err != nil {
		return suggestion.Pending{}, false, err
	}
	return existing, false, nil
}

func (r *SuggestionRepository) GetByID(ctx context.Context, id uuid.UUID) (suggestion.Pending, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+pendingColumns+`
FROM pending_classifications WHERE id = $1
`, id)
	p, err := scanPending(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return suggestion.Pending{}, suggestion.ErrNotFound
		}
		return suggestion.Pending{}, err
	}
	return p, nil
}

func (r *SuggestionRepository) List(ctx context.Context, status suggestion.Status, limit, offset int) ([]suggestion.Pending, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+pendingColumns+`
FROM pending_classifications
WHERE ($1 = '' OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, string(status), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []suggestion.Pending
	for rows.Next() {
		p, err := scanPending(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// SetStatus переводит pending-заявку в терминальный статус. Условие
// status='pending' в UPDATE защищает от гонки двух ревьюеров: проигравший
// получает ErrConflict, а не молчаливую перезапись.
func (r *SuggestionRepository) SetStatus(ctx context.Context, id uuid.UUID, status suggestion.Status) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE pending_classifications
SET status = $2, updated_at = $3
WHERE id = $1 AND status = 'pending'
`, id, string(status), time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return suggestion.ErrConflict
}
