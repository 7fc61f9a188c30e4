package usecase

import (
	"context"

	"eventos/internal/domain"
)

type UserService struct {
	Users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) ProfileOf(ctx context.Context, username string) (domain.Profile, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

// UpdateProfile applies the editable subset of profile fields. Username,
// password and role cannot change through this path.
func (s *UserService) UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) (domain.Profile, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}
	if update.Nombre != nil {
		user.Nombre = *update.Nombre
	}
	if update.Apellido != nil {
		user.Apellido = *update.Apellido
	}
	if update.Correo != nil {
		user.Correo = *update.Correo
	}
	if err := s.Users.Update(ctx, user); err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

func (s *UserService) DeleteAccount(ctx context.Context, username string) error {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.Users.Delete(ctx, user.ID)
}

// ListOthers returns every user except the caller, for the admin user list.
func (s *UserService) ListOthers(ctx context.Context, callerUsername string) ([]domain.Profile, error) {
	users, err := s.Users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.Profile, 0, len(users))
	for _, u := range users {
		if u.Username == callerUsername {
			continue
		}
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

// ChangeRole assigns a new role to a user. Role changes take effect on the
// user's next token issuance; outstanding tokens keep their embedded role
// until they expire.
func (s *UserService) ChangeRole(ctx context.Context, userID int64, newRole string) (domain.Profile, error) {
	role, err := domain.ParseRole(newRole)
	if err != nil {
		return domain.Profile{}, err
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	user.Role = role
	if err := s.Users.Update(ctx, user); err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}
