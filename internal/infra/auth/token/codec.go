package token

import (
	"errors"
	"strings"
	"time"

	"eventos/internal/config"
	"eventos/internal/domain"
	"eventos/internal/infra/auth/rbac"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the wire shape of a session token. The authorities list is
// informational for clients; the server re-derives permissions from the role
// claim on every request.
type Claims struct {
	Role        string   `json:"role"`
	Authorities []string `json:"authorities"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens. The signing key is
// loaded once at construction and never mutated, so concurrent use needs no
// synchronization.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(cfg config.Config) (*Codec, error) {
	secret := strings.TrimSpace(cfg.TokenSecret)
	if secret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    cfg.TokenTTL(),
		now:    time.Now,
	}, nil
}

// NewCodecWithClock is for tests that need to control token timestamps.
func NewCodecWithClock(cfg config.Config, now func() time.Time) (*Codec, error) {
	codec, err := NewCodec(cfg)
	if err != nil {
		return nil, err
	}
	if now != nil {
		codec.now = now
	}
	return codec, nil
}

func (c *Codec) Issue(subject string, role domain.Role) (string, error) {
	if subject == "" {
		return "", domain.ErrInvalidToken
	}
	now := c.now()
	claims := Claims{
		Role:        strings.ToLower(string(role)),
		Authorities: rbac.PermissionsForRole(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature and structural validity of a token. Expired
// tokens fail here; callers treat that identically to a malformed token.
func (c *Codec) Decode(tokenString string) (domain.TokenClaims, error) {
	claims, err := c.parse(tokenString, true)
	if err != nil {
		return domain.TokenClaims{}, err
	}
	return claims.toDomain()
}

func (c *Codec) SubjectOf(tokenString string) (string, error) {
	claims, err := c.parse(tokenString, true)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsExpired inspects the embedded expiry without requiring the rest of the
// claims to validate. An unreadable token counts as expired.
func (c *Codec) IsExpired(tokenString string) bool {
	claims, err := c.parse(tokenString, false)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}
	return c.now().After(claims.ExpiresAt.Time)
}

func (c *Codec) parse(tokenString string, validate bool) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if !validate {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func (cl *Claims) toDomain() (domain.TokenClaims, error) {
	if cl.Subject == "" || cl.Role == "" || cl.ExpiresAt == nil {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	role, err := domain.ParseRole(cl.Role)
	if err != nil {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	out := domain.TokenClaims{
		Subject:     cl.Subject,
		Role:        role,
		Authorities: cl.Authorities,
		ExpiresAt:   cl.ExpiresAt.Time,
	}
	if cl.IssuedAt != nil {
		out.IssuedAt = cl.IssuedAt.Time
	}
	return out, nil
}
