package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rperrot/recruteo/pkg/suggestion"
	"github.com/rperrot/recruteo/pkg/taxonomy"
)

// TaxonomyRepository хранит категории, подкатегории и их ключевые слова.
// Уникальные индексы по именам дают атомарность find-or-create, на которую
// рассчитывает review workflow.
type TaxonomyRepository struct {
	pool *pgxpool.Pool
}

func NewTaxonomyRepository(pool *pgxpool.Pool) (*TaxonomyRepository, error) {
	r := &TaxonomyRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TaxonomyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS categories (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS sub_categories (
	id UUID PRIMARY KEY,
	category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	name TEXT NOT NULL UNIQUE,
	keywords TEXT[] NOT NULL DEFAULT '{}'
);
`)
	if err != nil {
		return err
	}
	return r.seedPlaceholder(ctx)
}

// seedPlaceholder гарантирует существование пары "À classifier", на которую
// указывают результаты с is_suggested=true.
func (r *TaxonomyRepository) seedPlaceholder(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `
INSERT INTO categories (id, name) VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING
`, uuid.New(), suggestion.DefaultBucket); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO sub_categories (id, category_id, name)
SELECT $1, c.id, $2 FROM categories c WHERE c.name = $2
ON CONFLICT (name) DO NOTHING
`, uuid.New(), suggestion.DefaultBucket)
	return err
}

func (r *TaxonomyRepository) ListSubCategoriesWithKeywords(ctx context.Context) ([]taxonomy.SubCategory, error) {
	rows, err := r.pool.Query(ctx, `
SELECT s.id, s.category_id, c.name, s.name, s.keywords
FROM sub_categories s
JOIN categories c ON c.id = s.category_id
ORDER BY c.name, s.name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []taxonomy.SubCategory
	for rows.Next() {
		var s taxonomy.SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.CategoryName, &s.Name, &s.Keywords); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *TaxonomyRepository) FindCategoryByName(ctx context.Context, name string) (taxonomy.Category, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name FROM categories WHERE name = $1
`, name)
	var c taxonomy.Category
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taxonomy.Category{}, taxonomy.ErrNotFound
		}
		return taxonomy.Category{}, err
	}
	return c, nil
}

func (r *TaxonomyRepository) FindSubCategoryByName(ctx context.Context, name string) (taxonomy.SubCategory, error) {
	row := r.pool.QueryRow(ctx, `
SELECT s.id, s.category_id, c.name, s.name, s.keywords
FROM sub_categories s
JOIN categories c ON c.id = s.category_id
WHERE s.name = $1
`, name)
	var s taxonomy.SubCategory
	if err := row.Scan(&s.ID, &s.CategoryID, &s.CategoryName, &s.Name, &s.Keywords); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taxonomy.SubCategory{}, taxonomy.ErrNotFound
		}
		return taxonomy.SubCategory{}, err
	}
	return s, nil
}

// CreateCategory — атомарный find-or-create по точному имени.
func (r *TaxonomyRepository) CreateCategory(ctx context.Context, name string) (taxonomy.Category, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO categories (id, name) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name
`, uuid.New(), name)
	var c taxonomy.Category
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return taxonomy.Category{}, err
	}
	return c, nil
}

// CreateSubCategory — атомарный find-or-create; при конфликте имени
// существующая подкатегория переиспользуется вместе со своим родителем.
func (r *TaxonomyRepository) CreateSubCategory(ctx context.Context, name string, categoryID uuid.UUID) (taxonomy.SubCategory, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO sub_categories (id, category_id, name)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, category_id, name, keywords
`, uuid.New(), categoryID, name)
	var s taxonomy.SubCategory
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Keywords); err != nil {
		return taxonomy.SubCategory{}, err
	}
	return s, nil
}
