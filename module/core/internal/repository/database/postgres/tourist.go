package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database"
)

var _ database.TouristRepository = (*TouristRepo)(nil)

type TouristRepo struct {
	db *sql.DB
}

func NewTouristRepo(db *sql.DB) *TouristRepo {
	return &TouristRepo{db: db}
}

func (r *TouristRepo) GetByID(ctx context.Context, touristID string) (*domain.Tourist, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT tourist_id, full_name, nationality, destination, accommodation, itinerary
		 FROM tourists WHERE tourist_id = $1`,
		touristID,
	)

	var t domain.Tourist
	var itinerary []byte
	if err := row.Scan(&t.TouristID, &t.FullName, &t.Nationality, &t.Destination, &t.Accommodation, &itinerary); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTouristNotFound
		}
		return nil, err
	}

	if len(itinerary) > 0 {
		if err := json.Unmarshal(itinerary, &t.Itinerary); err != nil {
			return nil, fmt.Errorf("decode itinerary: %w", err)
		}
	}
	return &t, nil
}
