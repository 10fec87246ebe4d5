package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rperrot/recruteo/api/http/presenter"
	"github.com/rperrot/recruteo/pkg/suggestion"
)

// SuggestionsHandler — админский разбор очереди заявок на классификацию.
type SuggestionsHandler struct {
	svc suggestion.UseCase
}

func NewSuggestionsHandler(svc suggestion.UseCase) *SuggestionsHandler {
	return &SuggestionsHandler{svc: svc}
}

// List возвращает заявки, по умолчанию только pending.
// @Summary Список заявок на классификацию
// @Tags    suggestions
// @Produce json
// @Param   status query string false "pending|approved|rejected (пусто — все)"
// @Success 200 {array} suggestion.Pending
// @Router  /suggestions [get]
func (h *SuggestionsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	status := suggestion.Status(strings.TrimSpace(c.Query("status", string(suggestion.StatusPending))))
	items, err := h.svc.List(c.Context(), status, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list suggestions")
	}
	if items == nil {
		items = []suggestion.Pending{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type approveRequest struct {
	CategoryName    string `json:"categoryName"`
	SubCategoryName string `json:"subCategoryName"`
}

// Approve закрывает заявку: find-or-create категории и подкатегории по
// (возможно отредактированным) именам, затем статус approved.
// @Summary Подтверждение заявки
// @Tags    suggestions
// @Accept  json
// @Produce json
// @Param   id path string true "ID заявки"
// @Param   request body approveRequest true "Имена категории и подкатегории"
// @Success 200 {object} suggestion.Pending
// @Failure 409 {object} presenter.ErrorResponse "Заявка уже разрешена"
// @Router  /suggestions/{id}/approve [post]
func (h *SuggestionsHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid suggestion id")
	}
	var req approveRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid json body")
	}
	p, err := h.svc.Approve(c.Context(), id, req.CategoryName, req.SubCategoryName)
	if err != nil {
		return suggestionError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Reject закрывает заявку без изменения таксономии.
// @Summary Отклонение заявки
// @Tags    suggestions
// @Produce json
// @Param   id path string true "ID заявки"
// @Success 200 {object} suggestion.Pending
// @Failure 409 {object} presenter.ErrorResponse "Заявка уже разрешена"
// @Router  /suggestions/{id}/reject [post]
func (h *SuggestionsHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid suggestion id")
	}
	p, err := h.svc.Reject(c.Context(), id)
	if err != nil {
		return suggestionError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

func suggestionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, suggestion.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "suggestion not found")
	case errors.Is(err, suggestion.ErrConflict):
		return presenter.Error(c, http.StatusConflict, "suggestion already resolved")
	default:
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
}
