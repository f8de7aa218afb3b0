package repositories

import (
	"context"
	"fmt"
	"rentall/internal/database"
	. "rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const VEHICLE_CLASS_CACHE_PREFIX = "vehicleClass:"

type VehicleClassRepository interface {
	GetByID(ctx context.Context, id int) (*VehicleClass, error)
}

type vehicleClassRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVehicleClassRepository(db database.DB) VehicleClassRepository {
	return &vehicleClassRepository{
		db:  db,
		log: logger.New("vehicleClassRepository"),
	}
}

func (r *vehicleClassRepository) GetByID(ctx context.Context, id int) (*VehicleClass, error) {
	log := r.log.Function("GetByID")

	cacheKey := fmt.Sprintf("%s%d", VEHICLE_CLASS_CACHE_PREFIX, id)
	var class VehicleClass
	found, err := database.NewCacheBuilder(r.db.Cache.Reference, cacheKey).
		WithContext(ctx).
		Get(&class)
	if err == nil && found {
		return &class, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&class, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get vehicle class", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Reference, cacheKey).
		WithStruct(&class).
		WithTTL(REFERENCE_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache vehicle class", "id", id, "error", err)
	}

	return &class, nil
}
