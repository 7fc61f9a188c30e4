package domain

import (
	"context"
	"strings"
	"time"
)

// Role is the coarse identity classification. Exactly one per user.
type Role string

const (
	RoleUsuario     Role = "usuario"
	RoleOrganizador Role = "organizador"
	RoleAdmin       Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUsuario:
		return RoleUsuario, nil
	case RoleOrganizador:
		return RoleOrganizador, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Principal is the request-scoped authorization context. A zero Principal is
// the anonymous context; it exists only for the duration of one request.
type Principal struct {
	Subject     string
	Role        Role
	Permissions []string
}

func (p Principal) Anonymous() bool {
	return p.Subject == ""
}

func (p Principal) HasPermission(perm string) bool {
	for _, have := range p.Permissions {
		if have == perm {
			return true
		}
	}
	return false
}

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	Subject     string
	Role        Role
	Authorities []string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// TokenCodec issues and verifies self-contained session tokens. Issue embeds
// the role-derived permission list; Decode verifies signature and structure
// but consumers must re-derive permissions from the role claim.
type TokenCodec interface {
	Issue(subject string, role Role) (string, error)
	Decode(token string) (TokenClaims, error)
	SubjectOf(token string) (string, error)
}

// Authorizer evaluates whether a principal satisfies a permission
// requirement. An empty requirement passes for anyone, anonymous included.
type Authorizer interface {
	Require(principal Principal, anyOf ...string) error
}

// IdentityStore is the persistence collaborator consumed by credential
// verification. Role checks at request time never hit the store; the token's
// role claim is the single source of truth after issuance.
type IdentityStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) error
}
