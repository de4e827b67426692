package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
)

type SettingsRepository struct {
	db *gorm.DB
}

// SettingsPatch holds the columns to overwrite. Nil fields keep the stored value.
type SettingsPatch struct {
	Name   *string
	Bio    *string
	Avatar *string
	Cover  *string
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := r.db.WithContext(ctx).First(&settings, model.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr("get settings", err)
	}
	return &settings, nil
}

// EnsureDefaults inserts the singleton row unless it already exists.
// Concurrent callers race on the primary key and the losers are no-ops.
func (r *SettingsRepository) EnsureDefaults(ctx context.Context, name, bio string) error {
	row := model.Settings{
		ID:   model.SettingsID,
		Name: &name,
		Bio:  &bio,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&row).Error
	return storeErr("ensure settings", err)
}

func (r *SettingsRepository) Coalesce(ctx context.Context, patch SettingsPatch) error {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.Avatar != nil {
		updates["avatar"] = *patch.Avatar
	}
	if patch.Cover != nil {
		updates["cover"] = *patch.Cover
	}
	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&model.Settings{}).
		Where("id = ?", model.SettingsID).
		Updates(updates).Error
	return storeErr("update settings", err)
}
