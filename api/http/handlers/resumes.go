package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvforge/api/http/presenter"
	"github.com/artem13815/cvforge/pkg/document"
	"github.com/artem13815/cvforge/pkg/security/identity"
)

type ResumesHandler struct {
	docs document.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumesHandler(docs document.UseCase) *ResumesHandler {
	return &ResumesHandler{docs: docs, maxBytes: 15 << 20} // 15MB
}

func requesterID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(identity.SessionUserKey).(string)
	return uuid.Parse(s)
}

// Create создаёт пустое резюме: все секции присутствуют, но пусты.
// @Summary Create blank resume
// @Tags    resumes
// @Produce json
// @Security BearerAuth
// @Success 201 {object} document.Document
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [post]
func (h *ResumesHandler) Create(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
	d, err := h.docs.Create(c.Context(), ownerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create resume")
	}
	return presenter.JSON(c, http.StatusCreated, d)
}

// Import создаёт резюме, предзаполненное текстом из файла PDF/DOCX.
// @Summary Import resume from file
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Security BearerAuth
// @Success 201 {object} document.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/import [post]
func (h *ResumesHandler) Import(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
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
	d, err := h.docs.Import(c.Context(), ownerID, fh.Filename, data)
	if err != nil {
		var ve document.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to import resume")
	}
	return presenter.JSON(c, http.StatusCreated, d)
}

// List возвращает резюме текущего пользователя.
// @Summary List own resumes
// @Tags    resumes
// @Produce json
// @Param   limit  query int false "page size (max 200)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} document.Document
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
	limit, offset := parseLimitOffset(c, 50)
	docs, err := h.docs.List(c.Context(), ownerID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	if docs == nil {
		docs = []document.Document{}
	}
	return presenter.JSON(c, http.StatusOK, docs)
}

// Get возвращает резюме по id.
// @Summary Get resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 200 {object} document.Document
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	d, err := h.docs.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Save заменяет содержимое резюме целиком.
// @Summary Save resume data
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   id path string true "resume id"
// @Param   input body document.Data true "resume data payload"
// @Security BearerAuth
// @Success 200 {object} document.Document
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [put]
func (h *ResumesHandler) Save(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	d, err := h.docs.Save(c.Context(), id, ownerID, c.Body())
	if err != nil {
		return saveError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Delete удаляет резюме текущего пользователя.
// @Summary Delete resume
// @Tags    resumes
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	if err := h.docs.Delete(c.Context(), ownerID, id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete resume")
	}
	return c.SendStatus(http.StatusNoContent)
}

func saveError(c *fiber.Ctx, err error) error {
	var ve document.ErrValidation
	switch {
	case errors.Is(err, document.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	case errors.Is(err, document.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "resume belongs to another user")
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusUnprocessableEntity, ve.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to save resume")
	}
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read file")
	}
	if int64(len(b)) > max {
		return nil, errors.New("file too large")
	}
	return b, nil
}
