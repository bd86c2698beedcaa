// Package models defines the records persisted by ashsha.
package models

import "time"

// HistoryEntry is one derived color remembered for the user.
// Entries are unique by Text; re-deriving a text moves it to the front.
type HistoryEntry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Fingerprint string    `gorm:"size:16;index" json:"fingerprint"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	HexColor    string    `gorm:"size:7;not null" json:"hex_color"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (HistoryEntry) TableName() string {
	return "history"
}
