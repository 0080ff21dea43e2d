// Package oauth оборачивает обмен authorization code у внешнего
// провайдера. Протокол провайдера не реализуется заново: ядро
// потребляет только стабильный subject id проверенного токена.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Identity — всё, что ядро берёт из токена провайдера.
type Identity struct {
	Subject string
	Email   string
}

type GoogleProvider struct {
	cfg *oauth2.Config
}

func NewGoogle(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{cfg: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}}
}

func (p *GoogleProvider) Name() string { return "google" }

// AuthURL возвращает адрес страницы согласия провайдера.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.cfg.AuthCodeURL(state)
}

// Exchange меняет code на токен и читает userinfo.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (Identity, error) {
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("exchange code: %w", err)
	}
	resp, err := p.cfg.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Identity{}, err
	}
	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return Identity{}, fmt.Errorf("parse userinfo: %w", err)
	}
	if info.ID == "" {
		return Identity{}, errors.New("userinfo has no subject id")
	}
	return Identity{Subject: info.ID, Email: info.Email}, nil
}
