package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"wittycar/internal/cache"
	"wittycar/internal/errors"
	"wittycar/internal/model"
	"wittycar/internal/repository"
)

const (
	vehicleCacheTTL = 5 * time.Minute
	minVehicleYear  = 1900
)

// VehicleInput carries a full vehicle creation payload.
type VehicleInput struct {
	Plate   string
	Brand   string
	Model   string
	Year    int
	Mileage int
}

// VehicleUpdate carries a partial vehicle update. Nil fields are left
// untouched.
type VehicleUpdate struct {
	Plate   *string
	Brand   *string
	Model   *string
	Year    *int
	Mileage *int
}

// VehicleService handles vehicle operations for their owning user.
type VehicleService interface {
	ListVehicles(ctx context.Context, userID string) ([]model.Vehicle, error)
	GetVehicle(ctx context.Context, id, userID string) (*model.Vehicle, error)
	CreateVehicle(ctx context.Context, userID string, in VehicleInput) (*model.Vehicle, error)
	UpdateVehicle(ctx context.Context, id, userID string, in VehicleUpdate) (*model.Vehicle, error)
	DeleteVehicle(ctx context.Context, id, userID string) error
}

type vehicleService struct {
	repo  repository.VehicleRepository
	cache *cache.Client
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(repo repository.VehicleRepository, cache *cache.Client) VehicleService {
	return &vehicleService{repo: repo, cache: cache}
}

func vehicleCacheKey(id string) string {
	return fmt.Sprintf("vehicle:%s", id)
}

// normalizePlate canonicalizes a plate for storage and comparison.
func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func validYear(year int) bool {
	return year >= minVehicleYear && year <= time.Now().Year()+1
}

func (s *vehicleService) ListVehicles(ctx context.Context, userID string) ([]model.Vehicle, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id, userID string) (*model.Vehicle, error) {
	if data, _ := s.cache.Get(ctx, vehicleCacheKey(id)); data != nil {
		var cached model.Vehicle
		if err := json.Unmarshal(data, &cached); err == nil {
			if cached.UserID != userID {
				return nil, errors.NotFound("vehicle not found")
			}
			return &cached, nil
		}
	}

	vehicle, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("vehicle not found")
		}
		return nil, err
	}

	if payload, err := json.Marshal(vehicle); err == nil {
		_ = s.cache.Set(ctx, vehicleCacheKey(id), payload, vehicleCacheTTL)
	}
	return vehicle, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, userID string, in VehicleInput) (*model.Vehicle, error) {
	plate := normalizePlate(in.Plate)
	brand := strings.TrimSpace(in.Brand)
	modelName := strings.TrimSpace(in.Model)

	var fields []errors.FieldError
	if plate == "" {
		fields = append(fields, errors.FieldError{Field: "plate", Message: "plate is required"})
	}
	if brand == "" {
		fields = append(fields, errors.FieldError{Field: "brand", Message: "brand is required"})
	}
	if modelName == "" {
		fields = append(fields, errors.FieldError{Field: "model", Message: "model is required"})
	}
	if len(fields) > 0 {
		return nil, errors.Validation("plate, brand, and model are required", fields...)
	}
	if !validYear(in.Year) {
		return nil, errors.Validation("invalid year")
	}
	if in.Mileage < 0 {
		return nil, errors.Validation("mileage cannot be negative")
	}

	if err := s.checkPlateFree(ctx, userID, plate); err != nil {
		return nil, err
	}

	vehicle := &model.Vehicle{
		UserID:  userID,
		Plate:   plate,
		Brand:   brand,
		Model:   modelName,
		Year:    in.Year,
		Mileage: in.Mileage,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.Conflict("a vehicle with this plate already exists")
		}
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id, userID string, in VehicleUpdate) (*model.Vehicle, error) {
	vehicle, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("vehicle not found")
		}
		return nil, err
	}

	if in.Year != nil && !validYear(*in.Year) {
		return nil, errors.Validation("invalid year")
	}
	if in.Mileage != nil && *in.Mileage < 0 {
		return nil, errors.Validation("mileage cannot be negative")
	}

	if in.Plate != nil {
		plate := normalizePlate(*in.Plate)
		if plate == "" {
			return nil, errors.Validation("plate is required",
				errors.FieldError{Field: "plate", Message: "plate is required"})
		}
		if plate != vehicle.Plate {
			if err := s.checkPlateFree(ctx, userID, plate); err != nil {
				return nil, err
			}
		}
		vehicle.Plate = plate
	}
	if in.Brand != nil {
		brand := strings.TrimSpace(*in.Brand)
		if brand == "" {
			return nil, errors.Validation("brand is required",
				errors.FieldError{Field: "brand", Message: "brand is required"})
		}
		vehicle.Brand = brand
	}
	if in.Model != nil {
		modelName := strings.TrimSpace(*in.Model)
		if modelName == "" {
			return nil, errors.Validation("model is required",
				errors.FieldError{Field: "model", Message: "model is required"})
		}
		vehicle.Model = modelName
	}
	if in.Year != nil {
		vehicle.Year = *in.Year
	}
	if in.Mileage != nil {
		vehicle.Mileage = *in.Mileage
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, vehicle); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.Conflict("a vehicle with this plate already exists")
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	_ = s.cache.Delete(ctx, vehicleCacheKey(id))
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id, userID string) error {
	if _, err := s.repo.FindOwned(ctx, id, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("vehicle not found")
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	_ = s.cache.Delete(ctx, vehicleCacheKey(id))
	return nil
}

// checkPlateFree rejects a plate already registered by the same user. Plates
// may repeat across different users.
func (s *vehicleService) checkPlateFree(ctx context.Context, userID, plate string) error {
	existing, err := s.repo.FindByPlate(ctx, userID, plate)
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check plate: %w", err)
	}
	if existing != nil {
		return errors.Conflict("a vehicle with this plate already exists")
	}
	return nil
}
