package repository

import (
	"context"
	"errors"

	"fragrance_finder/internal/domain"

	"gorm.io/gorm"
)

// UserRepository is the credential store
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository over an already opened pool
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. The unique email index turns a concurrent or repeated registration into a Conflict.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.Conflict("user with this email already exists")
		}
		return infra("create user", err)
	}
	return nil
}

// FindByEmail looks a user up by normalized email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, userLookupError(err)
	}
	return &user, nil
}

// FindByID looks a user up by primary key
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, userLookupError(err)
	}
	return &user, nil
}

// UpdateRole changes the role of an existing user and returns the updated record
func (r *UserRepository) UpdateRole(ctx context.Context, id uint, role domain.Role) (*domain.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}
	if err := r.db.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return nil, infra("update role", err)
	}
	user.Role = role
	return user, nil
}

// List returns one page of users ordered by ID together with the total count
func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, infra("count users", err)
	}
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, infra("list users", err)
	}
	return users, total, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound("user not found")
	}
	return infra("find user", err)
}
