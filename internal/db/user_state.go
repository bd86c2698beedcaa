package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/ashsha/internal/models"
)

const defaultUserStateID = "default"

// GetUserState retrieves the user state row.
func (db *DB) GetUserState() (*models.UserState, error) {
	var state models.UserState
	if err := db.Where("id = ?", defaultUserStateID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// GetOrCreateTrackingID returns the persistent anonymous tracking ID, creating
// one if it doesn't exist. On any error it falls back to a per-session ID.
func (db *DB) GetOrCreateTrackingID() string {
	state, err := db.GetUserState()
	if err != nil {
		return generateSessionID()
	}

	if state.TrackingID != "" {
		return state.TrackingID
	}

	state.TrackingID = generateSessionID()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tracking_id", "updated_at"}),
	}).Create(state).Error
	if err != nil {
		// Even if save fails, return the generated ID for this session
		return state.TrackingID
	}

	return state.TrackingID
}

func generateSessionID() string {
	return uuid.New().String()
}
