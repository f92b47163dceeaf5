package repository

import (
	"context"

	"gorm.io/gorm"

	"wittycar/internal/model"
)

// VehicleRepository defines vehicle persistence operations, all scoped to
// the acting user.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Save(ctx context.Context, vehicle *model.Vehicle) error
	// FindOwned fetches a vehicle by id; a vehicle owned by another user is
	// indistinguishable from a missing one.
	FindOwned(ctx context.Context, id, userID string) (*model.Vehicle, error)
	ListByUser(ctx context.Context, userID string) ([]model.Vehicle, error)
	// FindByPlate looks up a vehicle of the user by normalized plate.
	FindByPlate(ctx context.Context, userID, plate string) (*model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository builds a GORM-backed repository.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *vehicleRepository) Save(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *vehicleRepository) FindOwned(ctx context.Context, id, userID string) (*model.Vehicle, error) {
	return findOwned[model.Vehicle](ctx, r.db, id, userID)
}

func (r *vehicleRepository) ListByUser(ctx context.Context, userID string) ([]model.Vehicle, error) {
	return listOwned[model.Vehicle](ctx, r.db, userID, "created_at DESC")
}

func (r *vehicleRepository) FindByPlate(ctx context.Context, userID, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND plate = ?", userID, plate).
		First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[model.Vehicle](ctx, r.db, id)
}
