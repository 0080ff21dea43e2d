// Package identity резолвит текущего principal запроса: либо подписанная
// cookie-сессия браузера, либо Bearer JWT для API-клиентов. Анонимные
// запросы к закрытым маршрутам никогда не получают частичный доступ.
package identity

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/artem13815/cvforge/pkg/security/jwt"
)

// SessionUserKey — ключ, под которым id пользователя лежит в сессии.
const SessionUserKey = "userId"

// SignInPath — начало OAuth-потока; исходный маршрут передаётся
// обратным адресом в query-параметре redirect.
const SignInPath = "/api/v1/auth/google/login"

type Gate struct {
	sessions  *session.Store
	jwtSecret string
	jwtIssuer string
}

func NewGate(sessions *session.Store, jwtSecret, jwtIssuer string) *Gate {
	return &Gate{sessions: sessions, jwtSecret: jwtSecret, jwtIssuer: jwtIssuer}
}

// resolve возвращает id пользователя или пустую строку для анонима.
func (g *Gate) resolve(c *fiber.Ctx) string {
	if sess, err := g.sessions.Get(c); err == nil {
		if v, ok := sess.Get(SessionUserKey).(string); ok && v != "" {
			return v
		}
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenStr := strings.TrimSpace(authHeader)
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	if tokenStr == "" {
		return ""
	}
	subject, err := jwt.ParseSubject(tokenStr, g.jwtSecret, g.jwtIssuer)
	if err != nil {
		return ""
	}
	return subject
}

// RequireAPI закрывает JSON-маршруты: аноним получает 401 с адресом
// входа, из которого клиент может продолжить OAuth-поток.
func (g *Gate) RequireAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := g.resolve(c)
		if userID == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"message": "authentication required",
				"signIn":  signInURL(c),
			})
		}
		c.Locals(SessionUserKey, userID)
		return c.Next()
	}
}

// RequirePage закрывает браузерные маршруты: аноним перенаправляется
// на вход с callback URL обратно на исходный маршрут.
func (g *Gate) RequirePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := g.resolve(c)
		if userID == "" {
			return c.Redirect(signInURL(c), fiber.StatusTemporaryRedirect)
		}
		c.Locals(SessionUserKey, userID)
		return c.Next()
	}
}

func signInURL(c *fiber.Ctx) string {
	return SignInPath + "?redirect=" + url.QueryEscape(c.OriginalURL())
}
