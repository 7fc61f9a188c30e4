package rbac

import (
	"errors"

	"eventos/internal/domain"
)

// Role-tag authorities. Carried alongside resource permissions so endpoint
// guards can name either.
const (
	TagAdmin       = "ROLE_ADMIN"
	TagOrganizador = "ROLE_ORGANIZADOR"
	TagUsuario     = "ROLE_USUARIO"
)

var rolePermissions = map[domain.Role][]string{
	domain.RoleAdmin: {
		"admin:read", "admin:write", "admin:update", "admin:delete",
		TagAdmin,
	},
	domain.RoleOrganizador: {
		"organizador:read", "organizador:write", "organizador:update", "organizador:delete",
		TagOrganizador,
	},
	domain.RoleUsuario: {
		TagUsuario,
	},
}

// PermissionsForRole is a pure function of role. It is the single source of
// permission derivation, consumed both when tokens are issued and when
// requests are verified, so the two can never drift.
func PermissionsForRole(role domain.Role) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

type AuthzError struct {
	Code string
	Err  error
}

func (e *AuthzError) Error() string {
	if e == nil {
		return ""
	}
	return e.Code
}

func (e *AuthzError) Unwrap() error {
	return e.Err
}

type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Require passes when anyOf is empty, or when the principal holds at least
// one of the named permissions or role tags. It runs before any guarded
// operation; a denial means the operation never executes.
func (a *Authorizer) Require(principal domain.Principal, anyOf ...string) error {
	if len(anyOf) == 0 {
		return nil
	}
	if principal.Anonymous() {
		return &AuthzError{Code: "ANONYMOUS", Err: domain.ErrForbidden}
	}
	for _, want := range anyOf {
		if principal.HasPermission(want) {
			return nil
		}
	}
	return &AuthzError{Code: "MISSING_PERMISSION", Err: domain.ErrForbidden}
}

func IsAuthzError(err error) (*AuthzError, bool) {
	var authz *AuthzError
	if errors.As(err, &authz) {
		return authz, true
	}
	return nil, false
}
