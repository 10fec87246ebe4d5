package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rperrot/recruteo/api/http/presenter"
	"github.com/rperrot/recruteo/pkg/cvparse"
)

// ProfileHandler принимает файл резюме и возвращает извлечённый профиль.
type ProfileHandler struct {
	svc cvparse.UseCase
	log *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewProfileHandler(svc cvparse.UseCase, log *zap.Logger, maxUploadMB int) *ProfileHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 15
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileHandler{svc: svc, log: log, maxBytes: int64(maxUploadMB) << 20}
}

// Extract обрабатывает загруженное резюме (PDF/DOCX) и извлекает поля
// профиля: контакты, должность, навыки.
// @Summary Извлечение профиля кандидата из резюме
// @Tags    profile
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse "Документ не читается"
// @Router  /profiles/extract [post]
func (h *ProfileHandler) Extract(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	profile, err := h.svc.Extract(c.Context(), data)
	if err != nil {
		if errors.Is(err, cvparse.ErrUnreadableDocument) {
			return presenter.Error(c, http.StatusUnprocessableEntity, "document cannot be read")
		}
		h.log.Error("profile extraction failed", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "extraction failed")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"filename": fh.Filename,
		"sizeB":    len(data),
		"profile":  profile,
		// полностью пустой профиль — сигнал фронту предложить ручной ввод
		"empty": profile.Empty(),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
