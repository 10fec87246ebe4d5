package cvparse

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rperrot/recruteo/pkg/skill"
)

// SkillMatch — навык из текста резюме: либо ссылка на запись справочника,
// либо новое имя с IsNew=true, пока не подтверждённое администратором.
type SkillMatch struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Name  string     `json:"name"`
	IsNew bool       `json:"isNew,omitempty"`
}

// Profile — результат извлечения полей из одного документа. Не персистится
// этим кодом и не меняется после сборки; каждое поле может отсутствовать.
type Profile struct {
	FirstName  string       `json:"firstName,omitempty"`
	LastName   string       `json:"lastName,omitempty"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Position   string       `json:"position,omitempty"`
	Skills     []SkillMatch `json:"skills"`
	RawExcerpt string       `json:"rawExcerpt,omitempty"`
}

// Empty — ни одно поле не извлечено: сигнал вызывающему предложить ручной ввод.
func (p Profile) Empty() bool {
	return p.FirstName == "" && p.LastName == "" && p.Email == "" &&
		p.Phone == "" && p.Position == "" && len(p.Skills) == 0
}

const excerptRunes = 280

// UseCase — сценарий извлечения профиля из документа.
type UseCase interface {
	Extract(ctx context.Context, document []byte) (Profile, error)
}

type service struct {
	skills skill.Directory
	log    *zap.Logger
}

func NewService(skills skill.Directory, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{skills: skills, log: log}
}

// Extract возвращает ошибку только если документ не открывается или
// недоступен справочник навыков. Пустой текст и ненайденные поля ошибками
// не являются: частичный профиль — нормальный результат.
func (s *service) Extract(ctx context.Context, document []byte) (Profile, error) {
	text, err := ExtractText(document)
	if err != nil {
		return Profile{}, err
	}
	if text == "" {
		s.log.Debug("document yielded no text after all fallbacks")
		return Profile{Skills: []SkillMatch{}}, nil
	}
	dir, err := s.skills.ListAll(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("list skill directory: %w", err)
	}
	p := assembleProfile(text, dir)
	s.log.Debug("profile extracted",
		zap.Int("text_len", len(text)),
		zap.Int("skills", len(p.Skills)),
		zap.Bool("empty", p.Empty()),
	)
	return p, nil
}

func assembleProfile(text string, dir []skill.Skill) Profile {
	clean := CleanText(text)
	lines := Lines(text)
	first, last := ExtractName(lines)

	skills := ExtractSkills(clean, lines, dir)
	if skills == nil {
		skills = []SkillMatch{}
	}
	return Profile{
		FirstName:  first,
		LastName:   last,
		Email:      ExtractEmail(clean),
		Phone:      ExtractPhone(clean),
		Position:   ExtractPosition(lines),
		Skills:     skills,
		RawExcerpt: excerpt(clean),
	}
}

func excerpt(clean string) string {
	r := []rune(clean)
	if len(r) <= excerptRunes {
		return clean
	}
	return string(r[:excerptRunes])
}
