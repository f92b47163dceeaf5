package repository

import (
	"context"

	"gorm.io/gorm"
)

// Owned is implemented by every model carrying an owning user id.
type Owned interface {
	OwnerID() string
}

// findOwned fetches an entity by id and enforces ownership. A row owned by
// another user is reported as gorm.ErrRecordNotFound, identical to true
// absence, so callers cannot probe for the existence of foreign data.
func findOwned[T Owned](ctx context.Context, db *gorm.DB, id, userID string) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	if entity.OwnerID() != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity, nil
}

// listOwned fetches all entities of the acting user in the given order.
func listOwned[T Owned](ctx context.Context, db *gorm.DB, userID, order string) ([]T, error) {
	var entities []T
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order(order).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// deleteByID removes a single row by primary key. Ownership must already
// have been established through findOwned.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	var entity T
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity).Error
}
