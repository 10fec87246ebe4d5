package suggestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rperrot/recruteo/pkg/taxonomy"
)

// UseCase — сценарии постановки и разбора заявок на классификацию.
type UseCase interface {
	// QueueFor идемпотентно ставит заявку на нераспознанное название должности.
	QueueFor(ctx context.Context, title string, createdBy *uuid.UUID) (Pending, error)
	List(ctx context.Context, status Status, limit, offset int) ([]Pending, error)
	// Approve закрывает заявку: find-or-create категории и подкатегории
	// по (возможно отредактированным) именам, затем статус approved.
	Approve(ctx context.Context, id uuid.UUID, categoryName, subCategoryName string) (Pending, error)
	// Reject закрывает заявку без изменения таксономии.
	Reject(ctx context.Context, id uuid.UUID) (Pending, error)
}

type service struct {
	queue Queue
	store taxonomy.Store
	log   *zap.Logger
}

func NewService(queue Queue, store taxonomy.Store, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{queue: queue, store: store, log: log}
}

func (s *service) QueueFor(ctx context.Context, title string, createdBy *uuid.UUID) (Pending, error) {
	bucket := GuessBucket(title)
	p, created, err := s.queue.FindOrCreatePending(ctx, Pending{
		OriginalTitle:        title,
		SuggestedCategory:    bucket,
		SuggestedSubCategory: title,
		Status:               StatusPending,
		CreatedBy:            createdBy,
	})
	if err != nil {
		return Pending{}, fmt.Errorf("queue pending classification: %w", err)
	}
	if created {
		s.log.Info("queued title for manual classification",
			zap.String("title", title),
			zap.String("suggested_category", bucket),
		)
	}
	return p, nil
}

func (s *service) List(ctx context.Context, status Status, limit, offset int) ([]Pending, error) {
	return s.queue.List(ctx, status, limit, offset)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID, categoryName, subCategoryName string) (Pending, error) {
	categoryName = strings.TrimSpace(categoryName)
	subCategoryName = strings.TrimSpace(subCategoryName)
	if categoryName == "" || subCategoryName == "" {
		return Pending{}, fmt.Errorf("suggestion: category and sub-category names are required")
	}

	p, err := s.queue.GetByID(ctx, id)
	if err != nil {
		return Pending{}, err
	}
	if p.Status != StatusPending {
		return Pending{}, ErrConflict
	}

	cat, err := s.store.CreateCategory(ctx, categoryName)
	if err != nil {
		return Pending{}, fmt.Errorf("ensure category %q: %w", categoryName, err)
	}
	sub, err := s.store.CreateSubCategory(ctx, subCategoryName, cat.ID)
	if err != nil {
		return Pending{}, fmt.Errorf("ensure sub-category %q: %w", subCategoryName, err)
	}

	// SetStatus сам отвергает гонку: терминальная строка не перезаписывается.
	if err := s.queue.SetStatus(ctx, id, StatusApproved); err != nil {
		return Pending{}, err
	}
	s.log.Info("suggestion approved",
		zap.String("title", p.OriginalTitle),
		zap.String("category", cat.Name),
		zap.String("sub_category", sub.Name),
	)
	p.Status = StatusApproved
	return p, nil
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) (Pending, error) {
	p, err := s.queue.GetByID(ctx, id)
	if err != nil {
		return Pending{}, err
	}
	if p.Status != StatusPending {
		return Pending{}, ErrConflict
	}
	if err := s.queue.SetStatus(ctx, id, StatusRejected); err != nil {
		return Pending{}, err
	}
	p.Status = StatusRejected
	return p, nil
}
