package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workpulse/timeclock-backend-go/internal/domain/auth"
	"github.com/workpulse/timeclock-backend-go/internal/handler/http/response"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *authHandlerImpl) setTokenCookies(w http.ResponseWriter, pair auth.TokenPair) {
	http.SetCookie(w, h.jwtService.AccessTokenCookie(pair.AccessToken, pair.AccessTokenExpiresAt))
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshTokenExpiresAt))
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setTokenCookies(w, pair)
	response.SuccessWithMessage(w, "Logged in", map[string]interface{}{
		"expiresAt": pair.AccessTokenExpiresAt,
	})
}

// Refresh implements AuthHandler.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrRefreshTokenMissing)
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setTokenCookies(w, pair)
	response.SuccessWithMessage(w, "Token refreshed", map[string]interface{}{
		"expiresAt": pair.AccessTokenExpiresAt,
	})
}

// Logout implements AuthHandler. Both cookies are expired client-side;
// tokens are stateless so nothing is revoked server-side.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	expired := time.Now().Add(-time.Hour).Unix()
	http.SetCookie(w, h.jwtService.AccessTokenCookie("", expired))
	http.SetCookie(w, h.jwtService.RefreshTokenCookie("", expired))

	response.SuccessWithMessage(w, "Logged out", nil)
}
