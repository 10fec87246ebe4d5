package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rperrot/recruteo/pkg/skill"
)

// SkillRepository — справочник навыков поверх Postgres.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) (*SkillRepository, error) {
	r := &SkillRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SkillRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS skills_name_uq ON skills (lower(name));
`)
	return err
}

func (r *SkillRepository) ListAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name FROM skills ORDER BY name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []skill.Skill
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// FindOrCreate — атомарный upsert по lower(name); существующая запись
// сохраняет своё исходное написание.
func (r *SkillRepository) FindOrCreate(ctx context.Context, name string) (skill.Skill, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO skills (id, name) VALUES ($1, $2)
ON CONFLICT (lower(name)) DO UPDATE SET name = skills.name
RETURNING id, name
`, uuid.New(), name)
	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}
