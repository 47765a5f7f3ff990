package repository

import (
	"github.com/antarkita/dispatch/internal/pkg/database"
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// DispatchRepository implements the dispatch repository interface over
// Postgres (jobs, helpers, driver profiles) and Redis (availability
// pool, locations, outstanding offers).
type DispatchRepository struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DispatchRepository {
	return &DispatchRepository{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
