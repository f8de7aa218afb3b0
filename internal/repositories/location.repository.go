package repositories

import (
	"context"
	"rentall/internal/database"
	. "rentall/internal/models"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	REFERENCE_CACHE_EXPIRY = 12 * time.Hour
	LOCATION_CACHE_PREFIX  = "location:"
)

type LocationRepository interface {
	GetByCode(ctx context.Context, code string) (*Location, error)
}

type locationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewLocationRepository(db database.DB) LocationRepository {
	return &locationRepository{
		db:  db,
		log: logger.New("locationRepository"),
	}
}

func (r *locationRepository) GetByCode(ctx context.Context, code string) (*Location, error) {
	log := r.log.Function("GetByCode")

	cacheKey := LOCATION_CACHE_PREFIX + code
	var location Location
	found, err := database.NewCacheBuilder(r.db.Cache.Reference, cacheKey).
		WithContext(ctx).
		Get(&location)
	if err == nil && found {
		return &location, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&location, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get location by code", err, "code", code)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Reference, cacheKey).
		WithStruct(&location).
		WithTTL(REFERENCE_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache location", "code", code, "error", err)
	}

	return &location, nil
}
