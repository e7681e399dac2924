package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ray-remotestate/orderdesk/config"
	"github.com/ray-remotestate/orderdesk/middlewares"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/utils"
)

type AuthHandler struct {
	svc *services.UserService
}

func NewAuthHandler(svc *services.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	user, err := h.svc.Register(in)
	if err != nil {
		respondError(w, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	setRefreshCookie(w, refreshToken)

	respond(w, http.StatusCreated, "Successfully registered", map[string]any{
		"user_id":      user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"access_token": accessToken,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	user, err := h.svc.Authenticate(in)
	if err != nil {
		respondError(w, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	setRefreshCookie(w, refreshToken)

	respond(w, http.StatusOK, "Successfully logged in", map[string]any{
		"user_id":      user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"access_token": accessToken,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, Envelope{Status: false, Message: "Refresh token missing"})
		return
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return config.SecretKey, nil
	})
	if err != nil || !token.Valid {
		writeJSON(w, http.StatusUnauthorized, Envelope{Status: false, Message: "Invalid or expired refresh token"})
		return
	}

	userID, err := parseSubject(claims.Subject)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, Envelope{Status: false, Message: "Invalid refresh token subject"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	setRefreshCookie(w, refreshToken)

	respond(w, http.StatusOK, "", map[string]any{
		"access_token": accessToken,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	respond(w, http.StatusOK, "Successfully logged out", nil)
}

// Me returns the authenticated user's id from the access token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, Envelope{Status: false, Message: "unauthorized"})
		return
	}
	respond(w, http.StatusOK, "", map[string]any{"user_id": claims.UserID})
}

func parseSubject(sub string) (uuid.UUID, error) {
	return uuid.Parse(sub)
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}
