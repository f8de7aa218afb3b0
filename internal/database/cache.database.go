package database

import (
	"context"
	"fmt"
	"rentall/config"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/valkey-io/valkey-go"
)

// Valkey database index organization. Each index provides logical separation
// for a cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - miscellaneous cache operations
	GENERAL_CACHE_INDEX = iota

	// REFERENCE_CACHE_INDEX (DB 1) - reference/lookup entities that change
	// rarely: locations, rate heads, vehicle classes
	REFERENCE_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.Errorf("failed to initialize cache database", "address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.General, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    GENERAL_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	cacheDB.Reference, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    REFERENCE_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create reference valkey client", err)
	}

	s.Cache = cacheDB

	if config.DatabaseCacheReset != -1 {
		go clearCacheDB(config.DatabaseCacheReset, cacheDB)
	}

	return nil
}

// FlushAllCaches empties every cache database. Used before reseeding so
// stale reference data never survives a fresh seed.
func (s *DB) FlushAllCaches() error {
	log := s.log.Function("FlushAllCaches")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, client := range map[string]CacheClient{
		"general":   s.Cache.General,
		"reference": s.Cache.Reference,
	} {
		if client == nil {
			continue
		}
		if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
			return log.Err("failed to flush cache database", err, "database", name)
		}
	}

	log.Info("Flushed all cache databases")

	return nil
}

func clearCacheDB(index int, cacheDB Cache) {
	log := logger.New("database").File("cache.database").Function("clearCacheDB")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client CacheClient
	var dbName string

	switch index {
	case GENERAL_CACHE_INDEX:
		client = cacheDB.General
		dbName = "general"
	case REFERENCE_CACHE_INDEX:
		client = cacheDB.Reference
		dbName = "reference"
	default:
		log.Warn("unknown cache database index, skipping reset", "index", index)
		return
	}

	if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
		log.Er("failed to flush cache database", err, "database", dbName)
		return
	}

	log.Info("Flushed cache database", "database", dbName)
}
