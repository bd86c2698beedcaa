package models

import "time"

// CurrentStateID is the primary key of the single current-state row.
const CurrentStateID = "default"

// CurrentState is a snapshot of the most recent derivation, restored on
// startup so the last result can be shown without recomputing it.
type CurrentState struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	Text             string    `gorm:"type:text" json:"text"`
	HexColor         string    `gorm:"size:7" json:"hex_color"`
	AlgorithmVersion string    `gorm:"size:32" json:"algorithm_version"`
	Snapshot         string    `gorm:"type:text" json:"snapshot"` // JSON-encoded colorhash.Result
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CurrentState) TableName() string {
	return "current_state"
}
