package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/asteroid-belt/ashsha/internal/hash"
	"github.com/asteroid-belt/ashsha/internal/models"
)

// SaveHistory records text and its color as the most recent history entry.
// An existing entry for the same text is replaced, and only the newest limit
// entries are kept. limit < 1 keeps everything.
func (db *DB) SaveHistory(text, hexColor string, limit int) (*models.HistoryEntry, error) {
	text = strings.TrimSpace(text)
	entry := &models.HistoryEntry{
		Fingerprint: hash.Fingerprint(text),
		Text:        text,
		HexColor:    strings.ToUpper(hexColor),
	}

	err := db.Transaction(func(tx *DB) error {
		if err := tx.Where("fingerprint = ? AND text = ?", entry.Fingerprint, text).
			Delete(&models.HistoryEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if limit < 1 {
			return nil
		}
		keep := tx.Model(&models.HistoryEntry{}).Select("id").Order("id DESC").Limit(limit)
		return tx.Where("id NOT IN (?)", keep).Delete(&models.HistoryEntry{}).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListHistory returns up to limit entries, most recent first.
// limit < 1 returns all entries.
func (db *DB) ListHistory(limit int) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	q := db.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}

// GetHistoryByText returns the history entry for text, or nil if absent.
func (db *DB) GetHistoryByText(text string) (*models.HistoryEntry, error) {
	text = strings.TrimSpace(text)
	var entry models.HistoryEntry
	err := db.Where("fingerprint = ? AND text = ?", hash.Fingerprint(text), text).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// CountHistory returns the number of stored history entries.
func (db *DB) CountHistory() (int64, error) {
	var count int64
	err := db.Model(&models.HistoryEntry{}).Count(&count).Error
	return count, err
}

// ClearHistory deletes every history entry and returns how many were removed.
func (db *DB) ClearHistory() (int64, error) {
	result := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.HistoryEntry{})
	return result.RowsAffected, result.Error
}
