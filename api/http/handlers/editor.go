package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvforge/api/http/presenter"
	"github.com/artem13815/cvforge/pkg/document"
	"github.com/artem13815/cvforge/pkg/editor"
)

// EditorHandler обслуживает сессии редактора: гидратация из хранилища,
// правки отдельных полей, сброс и сохранение снапшота.
type EditorHandler struct {
	store *editor.Store
	docs  document.UseCase
}

func NewEditorHandler(store *editor.Store, docs document.UseCase) *EditorHandler {
	return &EditorHandler{store: store, docs: docs}
}

type editorStateResponse struct {
	SessionID  string        `json:"sessionId"`
	DocumentID string        `json:"documentId"`
	Data       document.Data `json:"data"`
	Dirty      bool          `json:"dirty"`
}

func stateResponse(s *editor.Session) editorStateResponse {
	return editorStateResponse{
		SessionID:  s.ID.String(),
		DocumentID: s.DocumentID.String(),
		Data:       s.Snapshot(),
		Dirty:      s.Dirty(),
	}
}

// Open открывает сессию редактора, гидратированную документом.
// @Summary Open editor session
// @Tags    editor
// @Produce json
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 201 {object} editorStateResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/editor [post]
func (h *EditorHandler) Open(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
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
	s := h.store.Open(d.ID, ownerID, d.Data)
	return presenter.JSON(c, http.StatusCreated, stateResponse(s))
}

// State возвращает снапшот и флаг dirty.
// @Summary Editor session state
// @Tags    editor
// @Produce json
// @Param   sid path string true "editor session id"
// @Security BearerAuth
// @Success 200 {object} editorStateResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /editor/{sid} [get]
func (h *EditorHandler) State(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "editor session not found")
	}
	return presenter.JSON(c, http.StatusOK, stateResponse(s))
}

type setFieldRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// SetField заменяет ровно одно поле по адресу вида "experience[0].title".
// @Summary Edit a single field
// @Tags    editor
// @Accept  json
// @Produce json
// @Param   sid path string true "editor session id"
// @Param   input body setFieldRequest true "field path and new value"
// @Security BearerAuth
// @Success 200 {object} editorStateResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /editor/{sid} [patch]
func (h *EditorHandler) SetField(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "editor session not found")
	}
	var req setFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := s.Set(req.Path, req.Value); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, stateResponse(s))
}

// Reset заменяет содержимое сессии: телом запроса, а при пустом теле —
// сохранённой версией документа. Несохранённые правки отбрасываются.
// @Summary Reset editor session
// @Tags    editor
// @Accept  json
// @Produce json
// @Param   sid path string true "editor session id"
// @Security BearerAuth
// @Success 200 {object} editorStateResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /editor/{sid}/reset [post]
func (h *EditorHandler) Reset(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "editor session not found")
	}
	body := c.Body()
	if len(body) > 0 {
		if err := document.ValidateJSON(body); err != nil {
			return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
		}
		var data document.Data
		if err := json.Unmarshal(body, &data); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
		s.Reset(data)
		return presenter.JSON(c, http.StatusOK, stateResponse(s))
	}
	d, err := h.docs.Get(c.Context(), s.DocumentID)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	s.Reset(d.Data)
	return presenter.JSON(c, http.StatusOK, stateResponse(s))
}

type saveResponse struct {
	Document document.Document `json:"document"`
	// Applied=false — ответ пришёл к уже изменённой сессии (правка или
	// Reset во время полёта) и был отброшен; сохранённая версия при
	// этом записана.
	Applied bool `json:"applied"`
}

// Save отправляет снапшот сессии в хранилище. Передаётся снапшот,
// снятый в момент вызова, а не ссылка на изменяемое состояние.
// @Summary Save editor snapshot
// @Tags    editor
// @Produce json
// @Param   sid path string true "editor session id"
// @Security BearerAuth
// @Success 200 {object} saveResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /editor/{sid}/save [post]
func (h *EditorHandler) Save(c *fiber.Ctx) error {
	ownerID, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
	s, err := h.session(c)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "editor session not found")
	}
	snapshot, gen := s.BeginSave()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to encode snapshot")
	}
	d, err := h.docs.Save(c.Context(), s.DocumentID, ownerID, raw)
	if err != nil {
		// Неудачное сохранение не трогает состояние сессии.
		return saveError(c, err)
	}
	applied := s.CompleteSave(gen)
	return presenter.JSON(c, http.StatusOK, saveResponse{Document: d, Applied: applied})
}

// Close закрывает сессию; несохранённые правки отбрасываются.
// @Summary Close editor session
// @Tags    editor
// @Param   sid path string true "editor session id"
// @Security BearerAuth
// @Success 204
// @Router  /editor/{sid} [delete]
func (h *EditorHandler) Close(c *fiber.Ctx) error {
	requester, err := requesterID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid principal")
	}
	sid, err := uuid.Parse(c.Params("sid"))
	if err == nil {
		h.store.Close(sid, requester)
	}
	return c.SendStatus(http.StatusNoContent)
}

// session резолвит сессию для текущего principal-а; чужая сессия
// неотличима от несуществующей.
func (h *EditorHandler) session(c *fiber.Ctx) (*editor.Session, error) {
	requester, err := requesterID(c)
	if err != nil {
		return nil, editor.ErrSessionNotFound
	}
	sid, err := uuid.Parse(c.Params("sid"))
	if err != nil {
		return nil, editor.ErrSessionNotFound
	}
	return h.store.Get(sid, requester)
}
