package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/remedywhisper/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository stores whole serialized aggregates in app_state, one row
// per key.
type StateRepository struct {
	database *gorm.DB
	now      func() time.Time
}

func NewStateRepository(database *gorm.DB) *StateRepository {
	return &StateRepository{database: database, now: time.Now}
}

func (repo *StateRepository) Read(key string) ([]byte, bool, error) {
	var row models.StoredState
	err := repo.database.Where("state_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read state %s: %w", key, err)
	}
	return []byte(row.Payload), true, nil
}

// Write replaces the payload for key in a single upsert statement.
func (repo *StateRepository) Write(key string, payload []byte) error {
	row := models.StoredState{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: repo.now().UTC(),
	}
	err := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write state %s: %w", key, err)
	}
	return nil
}

func (repo *StateRepository) Remove(key string) error {
	if err := repo.database.Where("state_key = ?", key).Delete(&models.StoredState{}).Error; err != nil {
		return fmt.Errorf("remove state %s: %w", key, err)
	}
	return nil
}

// ListKeys returns the stored keys starting with prefix in ascending order.
func (repo *StateRepository) ListKeys(prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := repo.database.Model(&models.StoredState{}).
		Where(`state_key LIKE ? ESCAPE '\'`, escapeLikePattern(prefix)+"%").
		Order("state_key ASC").
		Pluck("state_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("list state keys: %w", err)
	}
	return keys, nil
}

func escapeLikePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
