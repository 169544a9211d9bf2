package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/userModel"
)

var (
	ErrNoToken      = errors.New("not authenticated")
	ErrTokenFormat  = errors.New("invalid token format")
	ErrTokenInvalid = errors.New("invalid token")
)

type ctxKey struct{}

// EncodeToken renders the cookie value. Cookie values cannot carry quotes,
// so the JSON is url escaped.
func EncodeToken(token userModel.AuthToken) (string, error) {
	data, err := json.Marshal(token)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(data)), nil
}

// DecodeToken accepts the escaped form and raw JSON. Only shape is checked.
func DecodeToken(raw string) (userModel.AuthToken, error) {
	var token userModel.AuthToken
	if raw == "" {
		return token, ErrNoToken
	}
	if unescaped, err := url.QueryUnescape(raw); err == nil {
		raw = unescaped
	}
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return token, ErrTokenFormat
	}
	if token.UserId == "" || token.Email == "" {
		return token, ErrTokenInvalid
	}
	return token, nil
}

// FromRequest reads and decodes the auth cookie.
func FromRequest(r *http.Request) (userModel.AuthToken, error) {
	cookie, err := r.Cookie(config.AuthCookieName)
	if err != nil {
		return userModel.AuthToken{}, ErrNoToken
	}
	return DecodeToken(cookie.Value)
}

// HasCookie only checks presence, which is all the page gate looks at.
func HasCookie(r *http.Request) bool {
	cookie, err := r.Cookie(config.AuthCookieName)
	return err == nil && cookie.Value != ""
}

func SetCookie(w http.ResponseWriter, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(config.AuthCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func WithToken(ctx context.Context, token userModel.AuthToken) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

func TokenFromContext(ctx context.Context) (userModel.AuthToken, bool) {
	token, ok := ctx.Value(ctxKey{}).(userModel.AuthToken)
	return token, ok
}
