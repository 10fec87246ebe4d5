package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rperrot/recruteo/api/http/presenter"
	"github.com/rperrot/recruteo/pkg/classifier"
)

// ClassifyHandler относит название должности к категории/подкатегории таксономии.
type ClassifyHandler struct {
	svc classifier.UseCase
}

func NewClassifyHandler(svc classifier.UseCase) *ClassifyHandler {
	return &ClassifyHandler{svc: svc}
}

type classifyRequest struct {
	Title     string `json:"title"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// Classify подбирает подкатегорию по ключевым словам; без совпадений
// возвращает плейсхолдер "À classifier" и идемпотентно ставит заявку на
// ручную классификацию.
// @Summary Классификация названия должности
// @Tags    classification
// @Accept  json
// @Produce json
// @Param   request body classifyRequest true "Название должности"
// @Success 200 {object} classifier.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /classify [post]
func (h *ClassifyHandler) Classify(c *fiber.Ctx) error {
	var req classifyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid json body")
	}
	if strings.TrimSpace(req.Title) == "" {
		return presenter.Error(c, http.StatusBadRequest, "title is required")
	}
	var createdBy *uuid.UUID
	if req.CreatedBy != "" {
		id, err := uuid.Parse(req.CreatedBy)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "createdBy must be a uuid")
		}
		createdBy = &id
	}

	res, err := h.svc.Classify(c.Context(), req.Title, createdBy)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "classification failed")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
