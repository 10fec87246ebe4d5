package taxonomy

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound сигнализирует об отсутствии категории или подкатегории.
var ErrNotFound = errors.New("taxonomy: not found")

// Category — корневой уровень таксономии должностей.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// SubCategory принадлежит ровно одной категории и несёт набор ключевых слов
// для матчинга названий должностей. Имена подкатегорий уникальны во всей
// таксономии, не только внутри родителя.
type SubCategory struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Name         string    `json:"name"`
	Keywords     []string  `json:"keywords"`
}

// Store — порт доступа к таксономии.
// Create* должны быть атомарным find-or-create на уровне хранилища
// (уникальный индекс по имени), иначе конкурентные approve создают дубли.
type Store interface {
	ListSubCategoriesWithKeywords(ctx context.Context) ([]SubCategory, error)
	FindCategoryByName(ctx context.Context, name string) (Category, error)
	FindSubCategoryByName(ctx context.Context, name string) (SubCategory, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
	CreateSubCategory(ctx context.Context, name string, categoryID uuid.UUID) (SubCategory, error)
}
