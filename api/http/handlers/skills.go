package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rperrot/recruteo/api/http/presenter"
	"github.com/rperrot/recruteo/pkg/skill"
)

// SkillsHandler — справочник навыков.
type SkillsHandler struct {
	svc skill.UseCase
}

func NewSkillsHandler(svc skill.UseCase) *SkillsHandler {
	return &SkillsHandler{svc: svc}
}

// List возвращает все навыки справочника.
// @Summary Справочник навыков
// @Tags    skills
// @Produce json
// @Success 200 {array} skill.Skill
// @Router  /skills [get]
func (h *SkillsHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list skills")
	}
	if items == nil {
		items = []skill.Skill{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type materializeRequest struct {
	Name string `json:"name"`
}

// Materialize создаёт запись справочника для навыка isNew из извлечённого
// профиля. Явный шаг: экстракция сама справочник не меняет.
// @Summary Материализация нового навыка
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   request body materializeRequest true "Имя навыка"
// @Success 200 {object} skill.Skill
// @Router  /skills [post]
func (h *SkillsHandler) Materialize(c *fiber.Ctx) error {
	var req materializeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid json body")
	}
	s, err := h.svc.Materialize(c.Context(), req.Name)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, s)
}
