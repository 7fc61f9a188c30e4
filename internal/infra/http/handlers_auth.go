package http

import (
	"net/http"

	"eventos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(c *gin.Context) {
	if !s.allowRate(c, "login") {
		return
	}
	if s.auth == nil {
		writeErrorCode(c, http.StatusServiceUnavailable, "NO_STORE", "identity store unavailable")
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	token, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token})
}

func (s *Server) handleRegister(c *gin.Context) {
	if !s.allowRate(c, "register") {
		return
	}
	if s.auth == nil {
		writeErrorCode(c, http.StatusServiceUnavailable, "NO_STORE", "identity store unavailable")
		return
	}
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	token, err := s.auth.Register(c.Request.Context(), usecase.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Correo:   req.Correo,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token})
}

// allowRate throttles credential endpoints per client address. Limiter
// failures fail open; throttling is a brake, not a gate.
func (s *Server) allowRate(c *gin.Context, scope string) bool {
	if s.rateLimiter == nil || s.rateLimitRequests <= 0 {
		return true
	}
	key := scope + ":" + c.ClientIP()
	decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.rateLimitRequests, s.rateLimitWindow)
	if err != nil {
		return true
	}
	if !decision.Allowed {
		writeErrorCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
		return false
	}
	return true
}
