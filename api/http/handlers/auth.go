package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/artem13815/cvforge/api/http/presenter"
	"github.com/artem13815/cvforge/pkg/auth"
	"github.com/artem13815/cvforge/pkg/security/identity"
)

// AuthHandler обслуживает парольные аккаунты. Помимо JWT для
// API-клиентов, вход устанавливает cookie-сессию, так что браузер
// получает ту же поверхность, что и после OAuth.
type AuthHandler struct {
	useCase  auth.AuthUseCase
	sessions *session.Store
}

func NewAuthHandler(useCase auth.AuthUseCase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{useCase: useCase, sessions: sessions}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r credentialsRequest) validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type tokenResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (h *AuthHandler) establishSession(c *fiber.Ctx, userID string) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return
	}
	sess.Set(identity.SessionUserKey, userID)
	_ = sess.Save()
}

// Register создаёт парольный аккаунт и сразу выполняет вход.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} tokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserAlreadyExists) {
			return presenter.Error(c, http.StatusConflict, "user already exists")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
	}

	h.establishSession(c, result.User.ID.String())
	return presenter.JSON(c, http.StatusCreated, tokenResponse{
		ID:    result.User.ID.String(),
		Email: result.User.Email,
		Token: result.Token,
	})
}

// Login выполняет вход по email и паролю.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	h.establishSession(c, result.User.ID.String())
	return presenter.JSON(c, http.StatusOK, tokenResponse{
		ID:    result.User.ID.String(),
		Email: result.User.Email,
		Token: result.Token,
	})
}
