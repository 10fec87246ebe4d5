package suggestion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — заявка с таким id не существует.
	ErrNotFound = errors.New("suggestion: not found")
	// ErrConflict — заявка уже в терминальном статусе (approved/rejected)
	// либо конкурентный запрос успел её разрешить первым.
	ErrConflict = errors.New("suggestion: already resolved")
)

// Status — жизненный цикл заявки: pending -> approved | rejected.
// Оба конечных статуса терминальны.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Pending — заявка на ручную классификацию неизвестного названия должности.
// OriginalTitle хранится дословно, как его прислал пользователь.
type Pending struct {
	ID                   uuid.UUID  `json:"id"`
	OriginalTitle        string     `json:"originalTitle"`
	SuggestedCategory    string     `json:"suggestedCategory"`
	SuggestedSubCategory string     `json:"suggestedSubCategory"`
	Status               Status     `json:"status"`
	CreatedBy            *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// Queue — порт очереди заявок.
// FindOrCreatePending обязан быть атомарным на уровне хранилища: максимум
// одна строка (original_title, status=pending) даже под конкурентной нагрузкой.
// SetStatus возвращает ErrConflict при попытке перевести терминальную заявку.
type Queue interface {
	FindOrCreatePending(ctx context.Context, p Pending) (Pending, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Pending, error)
	List(ctx context.Context, status Status, limit, offset int) ([]Pending, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
}
