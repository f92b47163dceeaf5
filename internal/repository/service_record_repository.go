package repository

import (
	"context"

	"gorm.io/gorm"

	"wittycar/internal/model"
)

// ServiceRecordRepository defines service-record persistence operations.
// Records are append-only in this scope: no update or delete.
type ServiceRecordRepository interface {
	Create(ctx context.Context, record *model.ServiceRecord) error
	// ListByVehicle returns the records of one vehicle owned by the user,
	// newest service date first.
	ListByVehicle(ctx context.Context, vehicleID, userID string) ([]model.ServiceRecord, error)
}

type serviceRecordRepository struct {
	db *gorm.DB
}

// NewServiceRecordRepository builds a GORM-backed repository.
func NewServiceRecordRepository(db *gorm.DB) ServiceRecordRepository {
	return &serviceRecordRepository{db: db}
}

func (r *serviceRecordRepository) Create(ctx context.Context, record *model.ServiceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *serviceRecordRepository) ListByVehicle(ctx context.Context, vehicleID, userID string) ([]model.ServiceRecord, error) {
	var records []model.ServiceRecord
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
