package skill

import (
	"context"

	"github.com/google/uuid"
)

// Skill — запись справочника навыков.
type Skill struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Directory — порт справочника навыков. ListAll возвращает записи в
// стабильном порядке (по имени), экстракторы на него полагаются при
// разрешении конфликтов «первый выигрывает».
type Directory interface {
	ListAll(ctx context.Context) ([]Skill, error)
	// FindOrCreate атомарно материализует навык по имени
	// (уникальный индекс + upsert на уровне хранилища).
	FindOrCreate(ctx context.Context, name string) (Skill, error)
}
