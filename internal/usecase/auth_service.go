package usecase

import (
	"context"
	"errors"
	"strings"

	"eventos/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the bcrypt comparison on the unknown-username path so both
// failure modes cost the same and neither is distinguishable to the caller.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type RegisterRequest struct {
	Username string
	Password string
	Nombre   string
	Apellido string
	Correo   string
}

// AuthService verifies credentials and creates identities. Tokens are issued
// here once per login or registration; nothing about the session is persisted.
type AuthService struct {
	Users domain.IdentityStore
	Codec domain.TokenCodec
}

func NewAuthService(users domain.IdentityStore, codec domain.TokenCodec) *AuthService {
	return &AuthService{Users: users, Codec: codec}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Equalize work with the known-user path.
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", domain.ErrAuthenticationFailed
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrAuthenticationFailed
	}
	return s.Codec.Issue(user.Username, user.Role)
}

// Register creates a new identity at the lowest privilege level and returns a
// session token for it. Duplicate usernames are rejected both here and by the
// store's uniqueness constraint.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", domain.ErrValidation
	}
	if _, err := s.Users.FindByUsername(ctx, username); err == nil {
		return "", domain.ErrDuplicateIdentity
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Correo:       req.Correo,
		Role:         domain.RoleUsuario,
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return "", err
	}
	return s.Codec.Issue(user.Username, user.Role)
}
