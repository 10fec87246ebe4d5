package skill

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDirectory struct {
	skills []Skill
}

func (d *memDirectory) ListAll(_ context.Context) ([]Skill, error) {
	return d.skills, nil
}

func (d *memDirectory) FindOrCreate(_ context.Context, name string) (Skill, error) {
	for _, s := range d.skills {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	s := Skill{ID: uuid.New(), Name: name}
	d.skills = append(d.skills, s)
	return s, nil
}

func TestMaterialize(t *testing.T) {
	svc := NewService(&memDirectory{})
	ctx := context.Background()

	created, err := svc.Materialize(ctx, "  Terraform ")
	require.NoError(t, err)
	assert.Equal(t, "Terraform", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)

	// повторная материализация возвращает ту же запись
	again, err := svc.Materialize(ctx, "terraform")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMaterializeEmptyName(t *testing.T) {
	svc := NewService(&memDirectory{})
	_, err := svc.Materialize(context.Background(), "   ")
	assert.Error(t, err)
}
