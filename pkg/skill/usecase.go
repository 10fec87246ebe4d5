package skill

import (
	"context"
	"fmt"
	"strings"
)

// UseCase — операции над справочником навыков.
type UseCase interface {
	List(ctx context.Context) ([]Skill, error)
	// Materialize превращает навык isNew из извлечённого профиля в запись
	// справочника. Явный шаг на стороне вызывающего: экстракция сама
	// ничего не создаёт.
	Materialize(ctx context.Context, name string) (Skill, error)
}

type service struct {
	dir Directory
}

func NewService(dir Directory) UseCase { return &service{dir: dir} }

func (s *service) List(ctx context.Context) ([]Skill, error) {
	return s.dir.ListAll(ctx)
}

func (s *service) Materialize(ctx context.Context, name string) (Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skill{}, fmt.Errorf("skill: name is required")
	}
	return s.dir.FindOrCreate(ctx, name)
}
