package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.ContentEvent) error {
	return storeErr("create content event", r.db.WithContext(ctx).Create(event).Error)
}

// ListRecent returns the newest events first.
func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]model.ContentEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var events []model.ContentEvent
	err := r.db.WithContext(ctx).Order("occurred_at DESC").Order("id DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, storeErr("list content events", err)
	}
	return events, nil
}
