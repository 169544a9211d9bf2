// Package auth holds the login, signup and session cookie logic.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/userModel"
	"github.com/akolanti/lexgate/internal/metrics"
	"github.com/akolanti/lexgate/pkg/logger_i"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingFields      = errors.New("missing fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type StaticUser struct {
	Id       int64
	Name     string
	Email    string
	Password string
}

type Service struct {
	static StaticUser
	users  userModel.UserStore
	logger *logger_i.Logger
}

func NewService(static StaticUser, users userModel.UserStore) *Service {
	return &Service{
		static: static,
		users:  users,
		logger: logger_i.NewLogger("Auth"),
	}
}

// Login checks the static pair first, then the user store.
func (s *Service) Login(ctx context.Context, email string, password string) (userModel.User, error) {
	log := s.logger.Trace(ctx)
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.CountAuthAttempt("login", "invalid")
		return userModel.User{}, ErrMissingCredentials
	}

	if s.matchesStatic(email, password) {
		metrics.CountAuthAttempt("login", "ok")
		return userModel.User{Id: s.static.Id, Name: s.static.Name, Email: s.static.Email}, nil
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, userModel.ErrUserNotFound) {
		metrics.CountAuthAttempt("login", "denied")
		return userModel.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return userModel.User{}, fmt.Errorf("login lookup: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Info("Wrong password", "email", email)
		metrics.CountAuthAttempt("login", "denied")
		return userModel.User{}, ErrInvalidCredentials
	}

	metrics.CountAuthAttempt("login", "ok")
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Signup(ctx context.Context, name string, email string, password string) (userModel.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		metrics.CountAuthAttempt("signup", "invalid")
		return userModel.User{}, ErrMissingFields
	}
	if strings.EqualFold(email, s.static.Email) {
		metrics.CountAuthAttempt("signup", "duplicate")
		return userModel.User{}, userModel.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.BcryptCost)
	if err != nil {
		return userModel.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, userModel.User{Name: name, Email: email, PasswordHash: string(hash)})
	if errors.Is(err, userModel.ErrUserExists) {
		metrics.CountAuthAttempt("signup", "duplicate")
		return userModel.User{}, err
	}
	if err != nil {
		return userModel.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Trace(ctx).Info("User signed up", "userId", user.Id)
	metrics.CountAuthAttempt("signup", "ok")
	user.PasswordHash = ""
	return user, nil
}

// Profile resolves the display user behind a token. Unknown emails still
// authenticate, the cookie is not verified beyond its shape.
func (s *Service) Profile(ctx context.Context, token userModel.AuthToken) userModel.User {
	if strings.EqualFold(token.Email, s.static.Email) {
		return userModel.User{Id: s.static.Id, Name: s.static.Name, Email: s.static.Email}
	}
	if user, err := s.users.GetUserByEmail(ctx, token.Email); err == nil {
		user.PasswordHash = ""
		return user
	}
	return userModel.User{Id: token.UserId.Int64(), Email: token.Email}
}

func (s *Service) matchesStatic(email string, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.static.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.static.Password)) == 1
	return emailOK && passOK
}

// Message is the text the auth routes answer with.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return "Email and password are required"
	case errors.Is(err, ErrMissingFields):
		return "Missing Fields"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, userModel.ErrUserExists):
		return "Email already exists"
	case errors.Is(err, ErrNoToken):
		return "Not authenticated"
	case errors.Is(err, ErrTokenFormat):
		return "Invalid token format"
	case errors.Is(err, ErrTokenInvalid):
		return "Invalid token"
	default:
		return "Internal server error"
	}
}
