package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/ashsha/internal/models"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

// SaveCurrentState stores res as the current-state snapshot, replacing any
// previous one.
func (db *DB) SaveCurrentState(res *colorhash.Result) error {
	if res == nil {
		return errors.New("save current state: nil result")
	}

	snapshot, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	state := models.CurrentState{
		ID:               models.CurrentStateID,
		Text:             res.Input,
		HexColor:         res.HexColor,
		AlgorithmVersion: colorhash.AlgorithmVersion,
		Snapshot:         string(snapshot),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "hex_color", "algorithm_version", "snapshot", "updated_at"}),
	}).Create(&state).Error
}

// GetCurrentState returns the stored snapshot row, or nil if none was saved.
func (db *DB) GetCurrentState() (*models.CurrentState, error) {
	var state models.CurrentState
	err := db.Where("id = ?", models.CurrentStateID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// ClearCurrentState removes the snapshot.
func (db *DB) ClearCurrentState() error {
	return db.Delete(&models.CurrentState{}, "id = ?", models.CurrentStateID).Error
}

// DecodeSnapshot parses the JSON snapshot stored in state.
func DecodeSnapshot(state *models.CurrentState) (*colorhash.Result, error) {
	var res colorhash.Result
	if err := json.Unmarshal([]byte(state.Snapshot), &res); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &res, nil
}
