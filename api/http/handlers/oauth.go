package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/artem13815/cvforge/api/http/presenter"
	"github.com/artem13815/cvforge/pkg/auth"
	"github.com/artem13815/cvforge/pkg/security/identity"
	"github.com/artem13815/cvforge/pkg/security/oauth"
)

// OAuthHandler ведёт authorization-code поток провайдера и превращает
// его результат в cookie-сессию пользователя.
type OAuthHandler struct {
	provider *oauth.GoogleProvider
	useCase  auth.AuthUseCase
	sessions *session.Store
}

func NewOAuthHandler(provider *oauth.GoogleProvider, useCase auth.AuthUseCase, sessions *session.Store) *OAuthHandler {
	return &OAuthHandler{provider: provider, useCase: useCase, sessions: sessions}
}

// Login начинает OAuth-поток. Исходный маршрут из query-параметра
// redirect сохраняется в сессии и используется после callback.
// @Summary Start Google sign-in
// @Tags    auth
// @Param   redirect query string false "route to return to after sign-in"
// @Success 307
// @Router  /auth/google/login [get]
func (h *OAuthHandler) Login(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to open session")
	}
	state := uuid.NewString()
	sess.Set("oauthState", state)
	if redirect := c.Query("redirect"); redirect != "" && redirect[0] == '/' {
		sess.Set("oauthRedirect", redirect)
	}
	if err := sess.Save(); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save session")
	}
	return c.Redirect(h.provider.AuthURL(state), fiber.StatusTemporaryRedirect)
}

// Callback завершает OAuth-поток: проверяет state, меняет code на
// subject id и кладёт id пользователя в сессию.
// @Summary Google sign-in callback
// @Tags    auth
// @Param   state query string true "anti-forgery state"
// @Param   code  query string true "authorization code"
// @Success 307
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/google/callback [get]
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to open session")
	}
	wantState, _ := sess.Get("oauthState").(string)
	if wantState == "" || c.Query("state") != wantState {
		return presenter.Error(c, http.StatusUnauthorized, "invalid oauth state")
	}
	id, err := h.provider.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		log.Printf("oauth exchange failed: %v", err)
		return presenter.Error(c, http.StatusUnauthorized, "sign-in failed")
	}

	result, err := h.useCase.LoginOAuth(c.Context(), h.provider.Name(), id.Subject, id.Email)
	if err != nil {
		log.Printf("oauth principal resolution failed: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to sign in")
	}

	redirect, _ := sess.Get("oauthRedirect").(string)
	if redirect == "" {
		redirect = "/"
	}
	sess.Delete("oauthState")
	sess.Delete("oauthRedirect")
	sess.Set(identity.SessionUserKey, result.User.ID.String())
	if err := sess.Save(); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save session")
	}
	return c.Redirect(redirect, fiber.StatusTemporaryRedirect)
}

// Logout destroys the browser session.
// @Summary Logout
// @Tags    auth
// @Success 204
// @Router  /auth/logout [post]
func (h *OAuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.SendStatus(http.StatusNoContent)
}
