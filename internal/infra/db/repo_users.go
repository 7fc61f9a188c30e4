package db

import (
	"context"
	"errors"
	"time"

	"eventos/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userToDomain(model), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userToDomain(model), nil
}

// Save inserts a new identity. The unique index on username backstops the
// pre-insert duplicate check in the registration path.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Nombre:       user.Nombre,
		Apellido:     user.Apellido,
		Correo:       user.Correo,
		Role:         string(user.Role),
		CreatedAt:    time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}
	user.ID = model.ID
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	if r.db == nil {
		return errDBUnavailable
	}
	updates := map[string]any{
		"nombre":   user.Nombre,
		"apellido": user.Apellido,
		"correo":   user.Correo,
		"role":     string(user.Role),
	}
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", user.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	res := r.db.WithContext(ctx).Delete(&UserModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *userToDomain(m))
	}
	return out, nil
}

func userToDomain(m UserModel) *domain.User {
	role, err := domain.ParseRole(m.Role)
	if err != nil {
		role = domain.RoleUsuario
	}
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Nombre:       m.Nombre,
		Apellido:     m.Apellido,
		Correo:       m.Correo,
		Role:         role,
	}
}
