package handlers

import (
	"errors"
	"net/http"

	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/auth"
	"github.com/akolanti/lexgate/internal/domain/userModel"
)

func writeAuthError(w http.ResponseWriter, code int, err error) {
	writeJsonResponse(w, code, api.AuthError{Error: auth.Message(err)})
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Checks the credentials and sets the auth-token cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      api.LoginRequest  true  "Email and password"
// @Success      200      {object}  api.AuthResponse
// @Failure      400      {object}  api.AuthError  "Missing email or password"
// @Failure      401      {object}  api.AuthError  "Invalid credentials"
// @Router       /api/auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAuthError(w, http.StatusBadRequest, auth.ErrMissingCredentials)
		return
	}

	user, err := handlerInstance.Auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeAuthError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeAuthError(w, http.StatusUnauthorized, err)
		return
	case err != nil:
		logRH.Trace(r.Context()).Error("Login failed", "err", err)
		writeAuthError(w, http.StatusInternalServerError, err)
		return
	}

	value, err := auth.EncodeToken(userModel.AuthToken{UserId: userModel.RefFromID(user.Id), Email: user.Email})
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, err)
		return
	}
	auth.SetCookie(w, value, handlerInstance.SecureCookies)
	writeJsonResponse(w, http.StatusOK, api.AuthResponse{Message: "Login successful", User: user})
}

// SignupHandler godoc
// @Summary      Create an account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      api.SignupRequest  true  "Name, email and password"
// @Success      201      {object}  api.SignupResponse
// @Failure      400      {object}  api.AuthError  "Missing Fields"
// @Failure      409      {object}  api.AuthError  "Email already exists"
// @Router       /api/auth/signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req api.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAuthError(w, http.StatusBadRequest, auth.ErrMissingFields)
		return
	}

	user, err := handlerInstance.Auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		writeAuthError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, userModel.ErrUserExists):
		writeAuthError(w, http.StatusConflict, err)
		return
	case err != nil:
		logRH.Trace(r.Context()).Error("Signup failed", "err", err)
		writeAuthError(w, http.StatusInternalServerError, err)
		return
	}
	writeJsonResponse(w, http.StatusCreated, api.SignupResponse{Message: "User created successfully", UserId: user.Id})
}

// LogoutHandler godoc
// @Summary      Log out
// @Description  Deletes the auth-token cookie.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /api/auth/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w, handlerInstance.SecureCookies)
	writeJsonResponse(w, http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
}

// CheckHandler godoc
// @Summary      Check the session
// @Description  Reports whether the auth-token cookie parses to a user.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  api.CheckResponse
// @Failure      401  {object}  api.AuthError
// @Router       /api/auth/check [get]
func CheckHandler(w http.ResponseWriter, r *http.Request) {
	token, err := auth.FromRequest(r)
	if err != nil {
		writeAuthError(w, http.StatusUnauthorized, err)
		return
	}
	user := handlerInstance.Auth.Profile(r.Context(), token)
	writeJsonResponse(w, http.StatusOK, api.CheckResponse{Authenticated: true, User: user})
}
