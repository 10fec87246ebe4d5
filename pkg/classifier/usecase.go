package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rperrot/recruteo/pkg/suggestion"
	"github.com/rperrot/recruteo/pkg/taxonomy"
)

// Result — итог классификации одного названия должности. Не персистится.
// При Suggested=true идентификаторы указывают на плейсхолдер "À classifier"
// (nil, если его ещё нет в таксономии), а Suggested* несут догадку движка.
type Result struct {
	CategoryID           *uuid.UUID `json:"categoryId"`
	SubCategoryID        *uuid.UUID `json:"subCategoryId"`
	CategoryName         string     `json:"categoryName"`
	SubCategoryName      string     `json:"subCategoryName"`
	Suggested            bool       `json:"isSuggested"`
	SuggestedCategory    string     `json:"suggestedCategory,omitempty"`
	SuggestedSubCategory string     `json:"suggestedSubCategory,omitempty"`
}

// UseCase — сценарий classifyTitle. Никогда не «не может классифицировать»:
// худший случай — плейсхолдер с Suggested=true. Ошибки только от хранилища.
type UseCase interface {
	Classify(ctx context.Context, title string, createdBy *uuid.UUID) (Result, error)
}

type service struct {
	store       taxonomy.Store
	suggestions suggestion.UseCase
	log         *zap.Logger
}

func NewService(store taxonomy.Store, suggestions suggestion.UseCase, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{store: store, suggestions: suggestions, log: log}
}

func (s *service) Classify(ctx context.Context, title string, createdBy *uuid.UUID) (Result, error) {
	title = strings.TrimSpace(title)

	subs, err := s.store.ListSubCategoriesWithKeywords(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load taxonomy: %w", err)
	}
	if m := taxonomy.BestMatch(title, subs); m != nil {
		catID := m.SubCategory.CategoryID
		subID := m.SubCategory.ID
		return Result{
			CategoryID:      &catID,
			SubCategoryID:   &subID,
			CategoryName:    m.SubCategory.CategoryName,
			SubCategoryName: m.SubCategory.Name,
		}, nil
	}

	// Ни одна подкатегория не подошла: ставим заявку и возвращаем плейсхолдер.
	p, err := s.suggestions.QueueFor(ctx, title, createdBy)
	if err != nil {
		return Result{}, err
	}
	s.log.Debug("title had no taxonomy match",
		zap.String("title", title),
		zap.String("suggested_category", p.SuggestedCategory),
	)

	res := Result{
		Suggested:            true,
		SuggestedCategory:    p.SuggestedCategory,
		SuggestedSubCategory: p.SuggestedSubCategory,
	}
	if cat, err := s.store.FindCategoryByName(ctx, suggestion.DefaultBucket); err == nil {
		id := cat.ID
		res.CategoryID = &id
		res.CategoryName = cat.Name
	} else if !errors.Is(err, taxonomy.ErrNotFound) {
		return Result{}, fmt.Errorf("find placeholder category: %w", err)
	}
	if sub, err := s.store.FindSubCategoryByName(ctx, suggestion.DefaultBucket); err == nil {
		id := sub.ID
		res.SubCategoryID = &id
		res.SubCategoryName = sub.Name
	} else if !errors.Is(err, taxonomy.ErrNotFound) {
		return Result{}, fmt.Errorf("find placeholder sub-category: %w", err)
	}
	return res, nil
}
