package http

import (
	"strings"

	"eventos/internal/domain"
	"eventos/internal/infra/auth/rbac"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// authenticate derives the request's authorization context from the bearer
// token, if any. A missing, malformed, tampered or expired token yields the
// anonymous context rather than a rejection; guarded endpoints reject
// anonymous callers separately. One decode attempt per request, and the
// resulting principal lives only in this request's context.
func (s *Server) authenticate(c *gin.Context) {
	principal := domain.Principal{}
	if bearer := extractBearerToken(c.GetHeader("Authorization")); bearer != "" && s.codec != nil {
		if claims, err := s.codec.Decode(bearer); err == nil {
			// Permissions come from the role claim alone; an embedded
			// authorities list is never trusted at verification time.
			principal = domain.Principal{
				Subject:     claims.Subject,
				Role:        claims.Role,
				Permissions: rbac.PermissionsForRole(claims.Role),
			}
		}
	}
	c.Set(principalContextKey, principal)
	c.Next()
}

func currentPrincipal(c *gin.Context) domain.Principal {
	raw, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}
	}
	principal, ok := raw.(domain.Principal)
	if !ok {
		return domain.Principal{}
	}
	return principal
}

// requireAny enforces an any-of permission expression before the handler does
// any work. Returns the principal and false after writing the 403 when the
// requirement is not met.
func (s *Server) requireAny(c *gin.Context, anyOf ...string) (domain.Principal, bool) {
	principal := currentPrincipal(c)
	if err := s.authorizer.Require(principal, anyOf...); err != nil {
		writeAuthzError(c, err)
		return domain.Principal{}, false
	}
	return principal, true
}

// requireAuthenticated admits any principal holding a role tag, which is
// every successfully authenticated user.
func (s *Server) requireAuthenticated(c *gin.Context) (domain.Principal, bool) {
	return s.requireAny(c, rbac.TagUsuario, rbac.TagOrganizador, rbac.TagAdmin)
}

func extractBearerToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(value), "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[len("bearer "):])
}
