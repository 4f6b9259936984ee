package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database"
)

var _ database.LocationRepository = (*LocationRepo)(nil)

type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// Upsert writes the latest position and status for a tourist, last-write-wins
// keyed by tourist_id.
func (r *LocationRepo) Upsert(ctx context.Context, loc *domain.TouristLocation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tourist_locations (tourist_id, lat, lng, status, last_updated)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (tourist_id) DO UPDATE
		 SET lat = EXCLUDED.lat, lng = EXCLUDED.lng, status = EXCLUDED.status, last_updated = EXCLUDED.last_updated`,
		loc.TouristID, loc.Lat, loc.Lng, loc.Status, loc.LastUpdated,
	)
	return err
}

func (r *LocationRepo) UpdateStatus(ctx context.Context, touristID string, status domain.Status, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tourist_locations SET status = $2, last_updated = $3 WHERE tourist_id = $1`,
		touristID, status, updatedAt,
	)
	return err
}

func (r *LocationRepo) GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT tourist_id, lat, lng, status, last_updated FROM tourist_locations WHERE tourist_id = $1`,
		touristID,
	)

	var loc domain.TouristLocation
	if err := row.Scan(&loc.TouristID, &loc.Lat, &loc.Lng, &loc.Status, &loc.LastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTouristNotFound
		}
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepo) GetAll(ctx context.Context) ([]domain.DashboardLocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.tourist_id, t.full_name, l.lat, l.lng, l.status
		 FROM tourists t
		 JOIN tourist_locations l ON t.tourist_id = l.tourist_id
		 ORDER BY t.tourist_id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.DashboardLocation
	for rows.Next() {
		var dl domain.DashboardLocation
		if err := rows.Scan(&dl.TouristID, &dl.FullName, &dl.Lat, &dl.Lng, &dl.Status); err != nil {
			return nil, err
		}
		results = append(results, dl)
	}
	return results, rows.Err()
}
