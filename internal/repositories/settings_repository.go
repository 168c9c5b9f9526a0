package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripweaver/internal/models/db_models"
	"tripweaver/pkg/utils"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) KVStore {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var setting db_models.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get setting %s: %v", utils.ErrDatabaseError, key, err)
	}
	return setting.Value, true, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	setting := db_models.Setting{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("%w: set setting %s: %v", utils.ErrDatabaseError, key, err)
	}
	return nil
}

// Delete removes the row for good so the key can be inserted again.
func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).Unscoped().Where("key = ?", key).Delete(&db_models.Setting{}).Error
	if err != nil {
		return fmt.Errorf("%w: delete setting %s: %v", utils.ErrDatabaseError, key, err)
	}
	return nil
}
