package repositories

import (
	"context"
	"rentall/internal/database"
	. "rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const RATE_CACHE_PREFIX = "rate:"

type RateHeadRepository interface {
	GetByCode(ctx context.Context, code string) (*RateHead, error)
}

type rateHeadRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRateHeadRepository(db database.DB) RateHeadRepository {
	return &rateHeadRepository{
		db:  db,
		log: logger.New("rateHeadRepository"),
	}
}

func (r *rateHeadRepository) GetByCode(ctx context.Context, code string) (*RateHead, error) {
	log := r.log.Function("GetByCode")

	cacheKey := RATE_CACHE_PREFIX + code
	var rate RateHead
	found, err := database.NewCacheBuilder(r.db.Cache.Reference, cacheKey).
		WithContext(ctx).
		Get(&rate)
	if err == nil && found {
		return &rate, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&rate, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get rate head by code", err, "code", code)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Reference, cacheKey).
		WithStruct(&rate).
		WithTTL(REFERENCE_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache rate head", "code", code, "error", err)
	}

	return &rate, nil
}
