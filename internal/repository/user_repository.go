package repository

import (
	"context"

	"gorm.io/gorm"

	"wittycar/internal/model"
)

// UserRepository defines profile-document persistence operations.
type UserRepository interface {
	// CreateNew inserts a profile document and fails if one already exists
	// for the same uid. Existing documents are never silently overwritten.
	CreateNew(ctx context.Context, user *model.User) error
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	// UpdateFields applies a partial update to the given columns.
	UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error
	// TouchUpdatedAt stamps updatedAt only. Used for best-effort login
	// bookkeeping.
	TouchUpdatedAt(ctx context.Context, uid string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateNew(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("uid = ?", uid).Updates(fields).Error
}

func (r *userRepository) TouchUpdatedAt(ctx context.Context, uid string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("uid = ?", uid).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
