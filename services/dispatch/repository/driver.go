package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/constants"
	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/internal/pkg/observability"
	"github.com/antarkita/dispatch/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
)

const (
	// locationTTL bounds how long a stale beacon keeps a driver findable
	locationTTL = 24 * time.Hour
	// offerTTL is a safety bound on the outstanding-offer marker; the
	// decline and cancel paths clear it much earlier
	offerTTL = 1 * time.Hour
)

// UpdateDriverLocation stores a driver's last known position and, when
// the driver is online, re-buckets their geohash cell membership.
func (r *DispatchRepository) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error {
	cell := utils.EncodeCell(location, r.cfg.Dispatch.CellPrecision)
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	previousCell, err := r.redisClient.HGet(ctx, locationKey, constants.FieldCell)
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read previous driver cell: %w", err)
	}

	ts := location.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldCell:      cell,
		constants.FieldTimestamp: strconv.FormatInt(ts.Unix(), 10),
	}
	if err := r.redisClient.HSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	online, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID)
	if err != nil {
		return fmt.Errorf("failed to check pool membership: %w", err)
	}
	if online && previousCell != cell {
		if previousCell != "" {
			if err := r.redisClient.SRem(ctx, fmt.Sprintf(constants.KeyDriverCell, previousCell), driverID); err != nil {
				return fmt.Errorf("failed to leave previous cell: %w", err)
			}
		}
		if err := r.redisClient.SAdd(ctx, fmt.Sprintf(constants.KeyDriverCell, cell), driverID); err != nil {
			return fmt.Errorf("failed to join cell: %w", err)
		}
	}

	return nil
}

// SetDriverOnline adds or removes a driver from the availability pool
// and their geohash cell set. Going online requires a known location.
func (r *DispatchRepository) SetDriverOnline(ctx context.Context, driverID string, online bool) error {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	cell, err := r.redisClient.HGet(ctx, locationKey, constants.FieldCell)
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read driver cell: %w", err)
	}

	if online {
		if cell == "" {
			return fmt.Errorf("driver %s has no known location", driverID)
		}

		wasOnline, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID)
		if err != nil {
			return fmt.Errorf("failed to check pool membership: %w", err)
		}

		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
			return fmt.Errorf("failed to add driver to pool: %w", err)
		}
		if err := r.redisClient.SAdd(ctx, fmt.Sprintf(constants.KeyDriverCell, cell), driverID); err != nil {
			return fmt.Errorf("failed to add driver to cell: %w", err)
		}
		if !wasOnline {
			observability.DriversOnline.Inc()
		}
		return nil
	}

	wasOnline, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID)
	if err != nil {
		return fmt.Errorf("failed to check pool membership: %w", err)
	}

	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from pool: %w", err)
	}
	if cell != "" {
		if err := r.redisClient.SRem(ctx, fmt.Sprintf(constants.KeyDriverCell, cell), driverID); err != nil {
			return fmt.Errorf("failed to remove driver from cell: %w", err)
		}
	}
	if wasOnline {
		observability.DriversOnline.Dec()
	}
	return nil
}

// SetDriverOffer records the job a driver currently holds an
// unanswered offer for.
func (r *DispatchRepository) SetDriverOffer(ctx context.Context, driverID, jobID string) error {
	return r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyDriverOffer, driverID), jobID, offerTTL)
}

// GetDriverOffer returns the job id of the driver's outstanding offer,
// or "" when there is none.
func (r *DispatchRepository) GetDriverOffer(ctx context.Context, driverID string) (string, error) {
	jobID, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyDriverOffer, driverID))
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get outstanding offer: %w", err)
	}
	return jobID, nil
}

// ClearDriverOffer removes the outstanding-offer marker.
func (r *DispatchRepository) ClearDriverOffer(ctx context.Context, driverID string) error {
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverOffer, driverID))
}

// FindNearbyDrivers returns up to limit eligible drivers around a
// pickup point, nearest first by planar distance. Candidates come from
// the pickup's geohash cell and its neighbors, so the search is coarse
// on purpose; the search radius bounds stragglers near cell edges.
func (r *DispatchRepository) FindNearbyDrivers(ctx context.Context, pickup models.Location, limit int) ([]*models.NearbyDriver, error) {
	cells := utils.SearchCells(pickup, r.cfg.Dispatch.CellPrecision)

	seen := make(map[string]bool)
	var candidateIDs []string
	for _, cell := range cells {
		members, err := r.redisClient.SMembers(ctx, fmt.Sprintf(constants.KeyDriverCell, cell))
		if err != nil {
			return nil, fmt.Errorf("failed to read cell members: %w", err)
		}
		for _, id := range members {
			if !seen[id] {
				seen[id] = true
				candidateIDs = append(candidateIDs, id)
			}
		}
	}

	if len(candidateIDs) == 0 {
		return nil, nil
	}

	eligible, err := r.filterEligibleDrivers(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	var nearby []*models.NearbyDriver
	for _, id := range eligible {
		location, err := r.getDriverLocation(ctx, id)
		if err != nil {
			logger.Debug("Skipping driver without readable location",
				logger.String("driver_id", id),
				logger.Err(err))
			continue
		}

		if radius := r.cfg.Dispatch.SearchRadiusKm; radius > 0 && utils.HaversineKm(pickup, *location) > radius {
			continue
		}

		nearby = append(nearby, &models.NearbyDriver{
			ID:       id,
			Location: *location,
			Distance: utils.PlanarDistance(pickup, *location),
		})
	}

	sort.Slice(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })

	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

// filterEligibleDrivers keeps only verified, active driver profiles.
func (r *DispatchRepository) filterEligibleDrivers(ctx context.Context, driverIDs []string) ([]string, error) {
	query, args, err := sqlx.In(`
		SELECT id FROM drivers
		WHERE id IN (?)
		  AND role = ?
		  AND is_verified = true
		  AND is_active = true
	`, driverIDs, models.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to build eligibility query: %w", err)
	}

	query = r.db.Rebind(query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter eligible drivers: %w", err)
	}
	defer rows.Close()

	var eligible []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan eligible driver: %w", err)
		}
		eligible = append(eligible, id)
	}

	return eligible, rows.Err()
}

// getDriverLocation reads a driver's last known position from Redis.
func (r *DispatchRepository) getDriverLocation(ctx context.Context, driverID string) (*models.Location, error) {
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID))
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no location data for driver %s", driverID)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	location := &models.Location{Latitude: lat, Longitude: lng}
	if ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64); err == nil {
		location.Timestamp = time.Unix(ts, 0)
	}

	return location, nil
}
