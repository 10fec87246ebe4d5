package classifier

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rperrot/recruteo/pkg/suggestion"
	"github.com/rperrot/recruteo/pkg/taxonomy"
)

type memStore struct {
	categories    []taxonomy.Category
	subCategories []taxonomy.SubCategory
}

func (s *memStore) addCategory(name string) taxonomy.Category {
	c := taxonomy.Category{ID: uuid.New(), Name: name}
	s.categories = append(s.categories, c)
	return c
}

func (s *memStore) addSubCategory(cat taxonomy.Category, name string, keywords ...string) taxonomy.SubCategory {
	sc := taxonomy.SubCategory{
		ID:           uuid.New(),
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		Name:         name,
		Keywords:     keywords,
	}
	s.subCategories = append(s.subCategories, sc)
	return sc
}

func (s *memStore) ListSubCategoriesWithKeywords(context.Context) ([]taxonomy.SubCategory, error) {
	return s.subCategories, nil
}

func (s *memStore) FindCategoryByName(_ context.Context, name string) (taxonomy.Category, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return taxonomy.Category{}, taxonomy.ErrNotFound
}

func (s *memStore) FindSubCategoryByName(_ context.Context, name string) (taxonomy.SubCategory, error) {
	for _, sc := range s.subCategories {
		if sc.Name == name {
			return sc, nil
		}
	}
	return taxonomy.SubCategory{}, taxonomy.ErrNotFound
}

func (s *memStore) CreateCategory(_ context.Context, name string) (taxonomy.Category, error) {
	if c, err := s.FindCategoryByName(context.Background(), name); err == nil {
		return c, nil
	}
	return s.addCategory(name), nil
}

func (s *memStore) CreateSubCategory(_ context.Context, name string, categoryID uuid.UUID) (taxonomy.SubCategory, error) {
	if sc, err := s.FindSubCategoryByName(context.Background(), name); err == nil {
		return sc, nil
	}
	sc := taxonomy.SubCategory{ID: uuid.New(), CategoryID: categoryID, Name: name}
	s.subCategories = append(s.subCategories, sc)
	return sc, nil
}

type memQueue struct {
	items []suggestion.Pending
}

func (q *memQueue) FindOrCreatePending(_ context.Context, p suggestion.Pending) (suggestion.Pending, bool, error) {
	for _, existing := range q.items {
		if existing.Status == suggestion.StatusPending &&
			strings.EqualFold(existing.OriginalTitle, p.OriginalTitle) {
			return existing, false, nil
		}
	}
	p.ID = uuid.New()
	p.Status = suggestion.StatusPending
	q.items = append(q.items, p)
	return p, true, nil
}

func (q *memQueue) GetByID(_ context.Context, id uuid.UUID) (suggestion.Pending, error) {
	for _, p := range q.items {
		if p.ID == id {
			return p, nil
		}
	}
	return suggestion.Pending{}, suggestion.ErrNotFound
}

func (q *memQueue) List(context.Context, suggestion.Status, int, int) ([]suggestion.Pending, error) {
	return q.items, nil
}

func (q *memQueue) SetStatus(_ context.Context, id uuid.UUID, status suggestion.Status) error {
	for i, p := range q.items {
		if p.ID == id {
			if p.Status != suggestion.StatusPending {
				return suggestion.ErrConflict
			}
			q.items[i].Status = status
			return nil
		}
	}
	return suggestion.ErrNotFound
}

func newClassifier(store *memStore, queue *memQueue) UseCase {
	return NewService(store, suggestion.NewService(queue, store, nil), nil)
}

func TestClassifyMatchesSubCategory(t *testing.T) {
	store := &memStore{}
	marketing := store.addCategory("Marketing & Communication")
	store.addSubCategory(marketing, "Marketing", "marketing")
	digital := store.addSubCategory(marketing, "Marketing Digital", "marketing digital")
	queue := &memQueue{}

	res, err := newClassifier(store, queue).Classify(context.Background(), "Responsable Marketing Digital", nil)
	require.NoError(t, err)

	assert.False(t, res.Suggested)
	require.NotNil(t, res.CategoryID)
	require.NotNil(t, res.SubCategoryID)
	assert.Equal(t, marketing.ID, *res.CategoryID)
	assert.Equal(t, digital.ID, *res.SubCategoryID)
	assert.Equal(t, "Marketing & Communication", res.CategoryName)
	assert.Equal(t, "Marketing Digital", res.SubCategoryName)
	assert.Empty(t, queue.items)
}

func TestClassifyUnknownTitleQueuesSuggestion(t *testing.T) {
	store := &memStore{}
	placeholder := store.addCategory(suggestion.DefaultBucket)
	placeholderSub := store.addSubCategory(placeholder, suggestion.DefaultBucket)
	queue := &memQueue{}

	res, err := newClassifier(store, queue).Classify(context.Background(), "Barista Chef Cuisine", nil)
	require.NoError(t, err)

	assert.True(t, res.Suggested)
	assert.Equal(t, suggestion.DefaultBucket, res.SuggestedCategory)
	assert.Equal(t, "Barista Chef Cuisine", res.SuggestedSubCategory)
	require.NotNil(t, res.CategoryID)
	assert.Equal(t, placeholder.ID, *res.CategoryID)
	require.NotNil(t, res.SubCategoryID)
	assert.Equal(t, placeholderSub.ID, *res.SubCategoryID)

	require.Len(t, queue.items, 1)
	assert.Equal(t, "Barista Chef Cuisine", queue.items[0].OriginalTitle)
	assert.Equal(t, suggestion.StatusPending, queue.items[0].Status)
}

func TestClassifyUnknownTitleWithoutPlaceholder(t *testing.T) {
	store := &memStore{}
	queue := &memQueue{}

	res, err := newClassifier(store, queue).Classify(context.Background(), "Apiculteur", nil)
	require.NoError(t, err)

	assert.True(t, res.Suggested)
	assert.Nil(t, res.CategoryID)
	assert.Nil(t, res.SubCategoryID)
	assert.Empty(t, res.CategoryName)
}

func TestClassifyNeverDuplicatesPending(t *testing.T) {
	store := &memStore{}
	queue := &memQueue{}
	svc := newClassifier(store, queue)

	_, err := svc.Classify(context.Background(), "Apiculteur", nil)
	require.NoError(t, err)
	_, err = svc.Classify(context.Background(), "Apiculteur", nil)
	require.NoError(t, err)

	assert.Len(t, queue.items, 1)
}

func TestClassifyEmptyKeywordSubCategoryNeverWins(t *testing.T) {
	store := &memStore{}
	divers := store.addCategory("Divers")
	store.addSubCategory(divers, "Sans mots-clés")
	queue := &memQueue{}

	res, err := newClassifier(store, queue).Classify(context.Background(), "Sans mots-clés", nil)
	require.NoError(t, err)
	assert.True(t, res.Suggested)
}
